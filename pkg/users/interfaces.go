// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"

	"github.com/canonical/task-service/internal/directory"
	"github.com/canonical/task-service/internal/types"
)

type ServiceInterface interface {
	GetMe(ctx context.Context, userID, tenantID string) (*Me, error)
	ListUsers(ctx context.Context, tenantID string) ([]*types.User, error)
}

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	ListUsersByTenantID(ctx context.Context, tenantID string) ([]*types.User, error)
}

type DirectoryInterface interface {
	GrantedRoles(ctx context.Context, userID, tenantID string) (directory.RoleSet, error)
}
