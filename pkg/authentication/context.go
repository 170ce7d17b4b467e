// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/task-service/internal/types"
)

// Define private custom types to avoid collisions
type userContextKeyType struct{}
type tenantContextKeyType struct{}
type activeRoleContextKeyType struct{}

var (
	userContextKey       = userContextKeyType{}
	tenantContextKey     = tenantContextKeyType{}
	activeRoleContextKey = activeRoleContextKeyType{}
)

// WithUserID returns a new context with the given user ID derived from the parent context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userContextKey, userID)
}

// GetUserID retrieves the user ID from the context.
// Returns an empty string and false if the user ID is not present.
func GetUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userContextKey).(string)
	return id, ok
}

// WithTenantID returns a new context carrying the tenant the caller belongs to.
func WithTenantID(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantContextKey, tenantID)
}

func GetTenantID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(tenantContextKey).(string)
	return id, ok
}

// WithActiveRole returns a new context carrying the role the caller declared
// for this request. The declared role is validated against actual grants by
// the authorization engine, never here.
func WithActiveRole(ctx context.Context, role types.Role) context.Context {
	return context.WithValue(ctx, activeRoleContextKey, role)
}

func GetActiveRole(ctx context.Context) (types.Role, bool) {
	role, ok := ctx.Value(activeRoleContextKey).(types.Role)
	return role, ok
}
