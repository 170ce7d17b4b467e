// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"context"

	"github.com/canonical/task-service/internal/types"
)

type DirectoryInterface interface {
	// GrantedRoles resolves the set of roles granted to the user within the
	// tenant. An empty set is a valid answer, not an error.
	GrantedRoles(ctx context.Context, userID, tenantID string) (RoleSet, error)
}

type StorageInterface interface {
	ListRoleGrants(ctx context.Context, userID, tenantID string) ([]*types.RoleGrant, error)
}
