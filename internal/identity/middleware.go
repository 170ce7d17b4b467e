// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/task-service/internal/logging"
	"github.com/canonical/task-service/internal/monitoring"
	"github.com/canonical/task-service/internal/storage"
	"github.com/canonical/task-service/internal/tracing"
	"github.com/canonical/task-service/internal/types"
	"github.com/canonical/task-service/pkg/authentication"
)

const (
	// UserHeaderName carries the authenticated user ID, set by the identity
	// collaborator in front of this service.
	UserHeaderName = "X-Authenticated-User-Id"
	// RoleHeaderName carries the role the caller declares for this request.
	// It is never trusted: the authorization engine checks it against the
	// caller's actual grants.
	RoleHeaderName = "X-Active-Role"
)

type Middleware struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
}

func NewMiddleware(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HTTPMiddleware resolves the caller's user record and tenant from the
// identity header, rejects members of suspended tenants, and stashes user,
// tenant and declared active role in the request context.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		userID := r.Header.Get(UserHeaderName)
		if userID == "" {
			writeError(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		user, err := m.storage.GetUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusUnauthorized, "unknown user")
				return
			}
			m.logger.Errorf("failed to resolve user %s: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		tenant, err := m.storage.GetTenantByID(ctx, user.TenantID)
		if err != nil {
			m.logger.Errorf("failed to resolve tenant %s: %v", user.TenantID, err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if tenant.Status == types.TenantSuspended {
			writeError(w, http.StatusForbidden, "tenant suspended")
			return
		}

		ctx = authentication.WithUserID(ctx, user.ID)
		ctx = authentication.WithTenantID(ctx, user.TenantID)
		ctx = authentication.WithActiveRole(ctx, types.Role(r.Header.Get(RoleHeaderName)))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
