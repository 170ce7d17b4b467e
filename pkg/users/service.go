// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package users serves the caller profile and the tenant member list used by
// assignment pickers.
package users

import (
	"context"
	"fmt"

	"github.com/canonical/task-service/internal/logging"
	"github.com/canonical/task-service/internal/monitoring"
	"github.com/canonical/task-service/internal/tracing"
	"github.com/canonical/task-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

// Me bundles a user with the roles granted to them in their tenant.
type Me struct {
	User  *types.User
	Roles []types.Role
}

type Service struct {
	storage   StorageInterface
	directory DirectoryInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	directory DirectoryInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:   storage,
		directory: directory,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

func (s *Service) GetMe(ctx context.Context, userID, tenantID string) (*Me, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.GetMe")
	defer span.End()

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	granted, err := s.directory.GrantedRoles(ctx, userID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve grants: %w", err)
	}

	return &Me{User: user, Roles: granted.Roles()}, nil
}

func (s *Service) ListUsers(ctx context.Context, tenantID string) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.ListUsers")
	defer span.End()

	members, err := s.storage.ListUsersByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenant users: %w", err)
	}

	return members, nil
}
