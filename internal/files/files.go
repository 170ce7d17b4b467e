// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package files stores attachment payloads on local disk. Only the opaque
// ref it hands out is persisted; callers never see the directory layout.
package files

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/canonical/task-service/internal/logging"
	"github.com/canonical/task-service/internal/monitoring"
	"github.com/canonical/task-service/internal/tracing"
)

type FileStore struct {
	baseDir string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewFileStore(
	baseDir string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create attachments directory: %w", err)
	}

	return &FileStore{
		baseDir: baseDir,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}, nil
}

// Save writes the payload under a generated name and returns the ref to
// persist. The original name only contributes its extension, so a hostile
// filename cannot escape the base directory.
func (s *FileStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	_, span := s.tracer.Start(ctx, "files.FileStore.Save")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate file ref: %w", err)
	}
	ref := id.String() + filepath.Ext(filepath.Base(name))

	f, err := os.OpenFile(filepath.Join(s.baseDir, ref), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", fmt.Errorf("failed to create attachment file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write attachment file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to close attachment file: %w", err)
	}

	return ref, nil
}

func (s *FileStore) Remove(ctx context.Context, ref string) error {
	_, span := s.tracer.Start(ctx, "files.FileStore.Remove")
	defer span.End()

	// Refs are generated by Save; anything with path separators is not ours.
	if filepath.Base(ref) != ref {
		return fmt.Errorf("invalid file ref %q", ref)
	}

	if err := os.Remove(filepath.Join(s.baseDir, ref)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to remove attachment file: %w", err)
	}
	return nil
}
