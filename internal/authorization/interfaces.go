// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/task-service/internal/storage"
	"github.com/canonical/task-service/internal/types"
)

type AuthorizerInterface interface {
	// Authorize decides whether the caller, acting under their declared
	// active role, may perform action. For update and delete the target task
	// must be supplied so ownership can be checked.
	Authorize(ctx context.Context, userID, tenantID string, activeRole types.Role, action Action, task *types.Task) (Decision, error)
	// ScopeFilter narrows task listings to what the active role may see.
	ScopeFilter(userID string, activeRole types.Role) storage.TaskFilter
	// CanView reports whether a single task falls inside the active role's
	// read scope.
	CanView(userID string, activeRole types.Role, task *types.Task) bool
}
