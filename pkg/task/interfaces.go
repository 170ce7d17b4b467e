// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package task

import (
	"context"
	"io"

	"github.com/canonical/task-service/internal/authorization"
	"github.com/canonical/task-service/internal/storage"
	"github.com/canonical/task-service/internal/types"
)

type ServiceInterface interface {
	CreateTask(ctx context.Context, caller Caller, req *CreateTaskRequest) (*types.Task, error)
	GetTask(ctx context.Context, caller Caller, id string) (*types.Task, error)
	ListTasks(ctx context.Context, caller Caller, req *ListTasksRequest) ([]*types.Task, error)
	UpdateTask(ctx context.Context, caller Caller, id string, req *UpdateTaskRequest) (*types.Task, error)
	DeleteTask(ctx context.Context, caller Caller, id string) error
	GetHistory(ctx context.Context, caller Caller, taskID string) ([]*types.TaskHistory, error)
	AddAttachment(ctx context.Context, caller Caller, taskID string, upload *AttachmentUpload) (*types.TaskAttachment, error)
	ListAttachments(ctx context.Context, caller Caller, taskID string) ([]*types.TaskAttachment, error)
	DeleteAttachment(ctx context.Context, caller Caller, taskID, attachmentID string) error
}

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)

	CreateTask(ctx context.Context, t *types.Task) (*types.Task, error)
	GetTaskByID(ctx context.Context, tenantID, id string) (*types.Task, error)
	ListTasks(ctx context.Context, tenantID string, filter storage.TaskFilter) ([]*types.Task, error)
	UpdateTask(ctx context.Context, t *types.Task, expectedVersion int64) (*types.Task, error)
	SoftDeleteTask(ctx context.Context, tenantID, id, deletedBy string) (*types.Task, error)

	AppendTaskHistory(ctx context.Context, h *types.TaskHistory) (*types.TaskHistory, error)
	ListTaskHistory(ctx context.Context, tenantID, taskID string) ([]*types.TaskHistory, error)

	CreateAttachment(ctx context.Context, a *types.TaskAttachment) (*types.TaskAttachment, error)
	ListAttachmentsByTaskID(ctx context.Context, tenantID, taskID string) ([]*types.TaskAttachment, error)
	GetAttachmentByID(ctx context.Context, tenantID, id string) (*types.TaskAttachment, error)
	DeleteAttachment(ctx context.Context, tenantID, id string) error
}

type AuthorizerInterface interface {
	Authorize(ctx context.Context, userID, tenantID string, activeRole types.Role, action authorization.Action, task *types.Task) (authorization.Decision, error)
	ScopeFilter(userID string, activeRole types.Role) storage.TaskFilter
	CanView(userID string, activeRole types.Role, task *types.Task) bool
}

// FileStoreInterface is the file storage collaborator: it owns attachment
// bytes, we only keep metadata.
type FileStoreInterface interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	Remove(ctx context.Context, ref string) error
}
