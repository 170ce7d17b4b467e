// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package authorization decides, for every mutating operation, whether the
// caller's declared active role may perform it. The declared role is never
// trusted: it is checked for membership against the caller's actual grants.
package authorization

import (
	"context"
	"fmt"

	"github.com/canonical/task-service/internal/directory"
	"github.com/canonical/task-service/internal/logging"
	"github.com/canonical/task-service/internal/monitoring"
	"github.com/canonical/task-service/internal/storage"
	"github.com/canonical/task-service/internal/tracing"
	"github.com/canonical/task-service/internal/types"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Denial reasons surfaced to callers. These strings are part of the API
// contract.
const (
	ReasonInvalidActiveRole    = "invalid active role"
	ReasonRoleCannotCreate     = "role cannot create tasks"
	ReasonReceiverCannotDelete = "receivers cannot delete tasks"
	ReasonNotYourTask          = "not your task"
)

// Decision is the sum-typed outcome of an authorization check: Allow, or
// Deny with a reason.
type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Reason: reason}
}

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	directory directory.DirectoryInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAuthorizer(dir directory.DirectoryInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	a := new(Authorizer)

	a.directory = dir

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

func (a *Authorizer) Authorize(ctx context.Context, userID, tenantID string, activeRole types.Role, action Action, task *types.Task) (Decision, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Authorize")
	defer span.End()

	granted, err := a.directory.GrantedRoles(ctx, userID, tenantID)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to resolve grants: %w", err)
	}

	decision := a.decide(userID, activeRole, granted, action, task)
	if !decision.Allowed {
		a.logger.Security().AuthorizationDenied(userID, tenantID, string(action), decision.Reason)
	}

	return decision, nil
}

// decide is the pure core of the engine: no storage access, no side effects.
func (a *Authorizer) decide(userID string, activeRole types.Role, granted directory.RoleSet, action Action, task *types.Task) Decision {
	// The declared role must be one the caller actually holds. This covers
	// spoofed role headers.
	if !granted.Has(activeRole) {
		return Deny(ReasonInvalidActiveRole)
	}

	// Admins bypass ownership and resource checks, not tenant boundaries;
	// callers scope lookups by tenant before we get here.
	if activeRole == types.RoleAdmin {
		return Allow()
	}

	switch action {
	case ActionCreate:
		if activeRole == types.RoleTaskCreator {
			return Allow()
		}
		return Deny(ReasonRoleCannotCreate)

	case ActionRead:
		return Allow()

	case ActionUpdate, ActionDelete:
		switch activeRole {
		case types.RoleTaskReceiver:
			if action == ActionDelete {
				return Deny(ReasonReceiverCannotDelete)
			}
			if task == nil || task.AssignedTo != userID {
				return Deny(ReasonNotYourTask)
			}
			return Allow()
		case types.RoleTaskCreator:
			if task == nil || task.CreatedBy != userID {
				return Deny(ReasonNotYourTask)
			}
			return Allow()
		}
	}

	return Deny(ReasonNotYourTask)
}

// ScopeFilter narrows listings before pagination: admins see the whole
// tenant, creators what they created, receivers what is assigned to them.
func (a *Authorizer) ScopeFilter(userID string, activeRole types.Role) storage.TaskFilter {
	switch activeRole {
	case types.RoleTaskCreator:
		return storage.TaskFilter{CreatedBy: userID}
	case types.RoleTaskReceiver:
		return storage.TaskFilter{AssignedTo: userID}
	default:
		return storage.TaskFilter{}
	}
}

func (a *Authorizer) CanView(userID string, activeRole types.Role, task *types.Task) bool {
	switch activeRole {
	case types.RoleAdmin:
		return true
	case types.RoleTaskCreator:
		return task.CreatedBy == userID
	case types.RoleTaskReceiver:
		return task.AssignedTo == userID
	default:
		return false
	}
}
