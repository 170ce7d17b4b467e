// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package files

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/canonical/task-service/internal/logging"
	"github.com/canonical/task-service/internal/monitoring"
	"github.com/canonical/task-service/internal/tracing"
)

func newStore(t *testing.T) *FileStore {
	t.Helper()

	store, err := NewFileStore(
		t.TempDir(),
		tracing.NewTracer(tracing.NewNoopConfig()),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestFileStore_SaveAndRemove(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	ref, err := store.Save(ctx, "report.pdf", strings.NewReader("file contents"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasSuffix(ref, ".pdf") {
		t.Errorf("expected ref to keep the extension, got %q", ref)
	}

	data, err := os.ReadFile(filepath.Join(store.baseDir, ref))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "file contents" {
		t.Errorf("unexpected stored content %q", data)
	}

	if err := store.Remove(ctx, ref); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.baseDir, ref)); !os.IsNotExist(err) {
		t.Error("file still present after remove")
	}
}

func TestFileStore_SaveIgnoresHostileFilename(t *testing.T) {
	store := newStore(t)

	ref, err := store.Save(context.Background(), "../../etc/passwd", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if strings.ContainsAny(ref, "/\\") {
		t.Errorf("ref contains path separators: %q", ref)
	}
}

func TestFileStore_RemoveMissingIsNoop(t *testing.T) {
	store := newStore(t)

	if err := store.Remove(context.Background(), "does-not-exist.bin"); err != nil {
		t.Fatalf("expected nil for missing ref, got %v", err)
	}
}

func TestFileStore_RemoveRejectsPathRef(t *testing.T) {
	store := newStore(t)

	if err := store.Remove(context.Background(), "../outside.bin"); err == nil {
		t.Fatal("expected error for ref with path separators")
	}
}
