// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package task

import (
	"context"
	"io"
	"time"

	"github.com/canonical/task-service/internal/types"
	"github.com/canonical/task-service/pkg/authentication"
)

// Caller identifies the authenticated user, their tenant, and the single
// role they declared active for this request.
type Caller struct {
	UserID     string
	TenantID   string
	ActiveRole types.Role
}

// CallerFromContext assembles the caller from what the identity middleware
// stored. The second return is false when the request is unauthenticated.
func CallerFromContext(ctx context.Context) (Caller, bool) {
	userID, ok := authentication.GetUserID(ctx)
	if !ok || userID == "" {
		return Caller{}, false
	}
	tenantID, ok := authentication.GetTenantID(ctx)
	if !ok || tenantID == "" {
		return Caller{}, false
	}
	role, _ := authentication.GetActiveRole(ctx)

	return Caller{UserID: userID, TenantID: tenantID, ActiveRole: role}, true
}

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	AssignedTo  string     `json:"assigned_to" validate:"required"`
	Priority    string     `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// UpdateTaskRequest is a partial update. ExpectedVersion is mandatory: the
// contract requires clients to always echo the version they last observed.
type UpdateTaskRequest struct {
	ExpectedVersion *int64     `json:"expected_version" validate:"required"`
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	AssignedTo      *string    `json:"assigned_to,omitempty"`
	Status          *string    `json:"status,omitempty"`
	Priority        *string    `json:"priority,omitempty"`
	BlockedReason   *string    `json:"blocked_reason,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
}

type ListTasksRequest struct {
	Status string
	Page   int64
	Size   int64
}

type AttachmentUpload struct {
	Filename string
	Type     string
	Content  io.Reader
}

type TaskResponse struct {
	ID            string     `json:"id"`
	TenantID      string     `json:"tenant_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	CreatedBy     string     `json:"created_by"`
	AssignedTo    string     `json:"assigned_to"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	BlockedReason *string    `json:"blocked_reason"`
	DueDate       *time.Time `json:"due_date"`
	Version       int64      `json:"version"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func NewTaskResponse(t *types.Task) *TaskResponse {
	return &TaskResponse{
		ID:            t.ID,
		TenantID:      t.TenantID,
		Title:         t.Title,
		Description:   t.Description,
		CreatedBy:     t.CreatedBy,
		AssignedTo:    t.AssignedTo,
		Status:        string(t.Status),
		Priority:      string(t.Priority),
		BlockedReason: t.BlockedReason,
		DueDate:       t.DueDate,
		Version:       t.Version,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

type HistoryResponse struct {
	ID          string     `json:"id"`
	TaskID      string     `json:"task_id"`
	Action      string     `json:"action"`
	PerformedBy *string    `json:"performed_by"`
	Timestamp   time.Time  `json:"timestamp"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

func NewHistoryResponse(h *types.TaskHistory) *HistoryResponse {
	return &HistoryResponse{
		ID:          h.ID,
		TaskID:      h.TaskID,
		Action:      string(h.Action),
		PerformedBy: h.PerformedBy,
		Timestamp:   h.Timestamp,
		Title:       h.Title,
		Description: h.Description,
		Status:      string(h.Status),
		Priority:    string(h.Priority),
		DueDate:     h.DueDate,
	}
}

type AttachmentResponse struct {
	ID           string    `json:"id"`
	TaskID       string    `json:"task_id"`
	UploadedBy   *string   `json:"uploaded_by"`
	OriginalName string    `json:"original_name"`
	Type         string    `json:"type"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

func NewAttachmentResponse(a *types.TaskAttachment) *AttachmentResponse {
	return &AttachmentResponse{
		ID:           a.ID,
		TaskID:       a.TaskID,
		UploadedBy:   a.UploadedBy,
		OriginalName: a.OriginalName,
		Type:         string(a.Type),
		UploadedAt:   a.UploadedAt,
	}
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
