// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/task-service/internal/types"
)

// TaskFilter narrows task listings. Zero-valued fields are not applied.
// Soft-deleted tasks are always excluded.
type TaskFilter struct {
	CreatedBy  string
	AssignedTo string
	Status     types.TaskStatus

	Page int64
	Size int64
}

type StorageInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	ListUsersByTenantID(ctx context.Context, tenantID string) ([]*types.User, error)
	ListRoleGrants(ctx context.Context, userID, tenantID string) ([]*types.RoleGrant, error)

	CreateTask(ctx context.Context, t *types.Task) (*types.Task, error)
	GetTaskByID(ctx context.Context, tenantID, id string) (*types.Task, error)
	ListTasks(ctx context.Context, tenantID string, filter TaskFilter) ([]*types.Task, error)
	// UpdateTask persists t conditioned on the stored version still being
	// expectedVersion, incrementing the version by one. It returns
	// ErrVersionConflict when a concurrent writer got there first.
	UpdateTask(ctx context.Context, t *types.Task, expectedVersion int64) (*types.Task, error)
	SoftDeleteTask(ctx context.Context, tenantID, id, deletedBy string) (*types.Task, error)

	// TaskHistory is append-only: no update or delete exists for it.
	AppendTaskHistory(ctx context.Context, h *types.TaskHistory) (*types.TaskHistory, error)
	ListTaskHistory(ctx context.Context, tenantID, taskID string) ([]*types.TaskHistory, error)

	CreateAttachment(ctx context.Context, a *types.TaskAttachment) (*types.TaskAttachment, error)
	ListAttachmentsByTaskID(ctx context.Context, tenantID, taskID string) ([]*types.TaskAttachment, error)
	GetAttachmentByID(ctx context.Context, tenantID, id string) (*types.TaskAttachment, error)
	DeleteAttachment(ctx context.Context, tenantID, id string) error
}
