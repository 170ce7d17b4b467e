// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package task

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/task-service/internal/authorization"
	"github.com/canonical/task-service/internal/logging"
	"github.com/canonical/task-service/internal/monitoring"
	"github.com/canonical/task-service/internal/storage"
	"github.com/canonical/task-service/internal/tracing"
	"github.com/canonical/task-service/internal/types"
	"github.com/canonical/task-service/internal/workflow"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	authz   AuthorizerInterface
	files   FileStoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	files FileStoreInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		files:   files,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) CreateTask(ctx context.Context, caller Caller, req *CreateTaskRequest) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "task.Service.CreateTask")
	defer span.End()

	decision, err := s.authz.Authorize(ctx, caller.UserID, caller.TenantID, caller.ActiveRole, authorization.ActionCreate, nil)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, NewDeniedError(decision.Reason)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, NewValidationError("title", "title cannot be empty")
	}

	priority := types.PriorityNormal
	if req.Priority != "" {
		priority = types.Priority(req.Priority)
		if !priority.Valid() {
			return nil, NewValidationError("priority", "invalid priority")
		}
	}

	if err := s.checkAssignee(ctx, caller.TenantID, req.AssignedTo); err != nil {
		return nil, err
	}

	t := &types.Task{
		TenantID:    caller.TenantID,
		Title:       title,
		Description: req.Description,
		CreatedBy:   caller.UserID,
		AssignedTo:  req.AssignedTo,
		Status:      types.StatusNotStarted,
		Priority:    priority,
		DueDate:     req.DueDate,
	}

	created, err := s.storage.CreateTask(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if err := s.recordHistory(ctx, created, caller.UserID, types.ActionCreated); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) GetTask(ctx context.Context, caller Caller, id string) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "task.Service.GetTask")
	defer span.End()

	t, err := s.loadVisibleTask(ctx, caller, id, authorization.ActionRead)
	if err != nil {
		return nil, err
	}
	if t.IsDeleted {
		return nil, ErrNotFound
	}

	return t, nil
}

func (s *Service) ListTasks(ctx context.Context, caller Caller, req *ListTasksRequest) ([]*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "task.Service.ListTasks")
	defer span.End()

	decision, err := s.authz.Authorize(ctx, caller.UserID, caller.TenantID, caller.ActiveRole, authorization.ActionRead, nil)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, NewDeniedError(decision.Reason)
	}

	// Role scoping is applied before pagination, in the query itself.
	filter := s.authz.ScopeFilter(caller.UserID, caller.ActiveRole)
	filter.Page = req.Page
	filter.Size = req.Size

	if req.Status != "" {
		status := types.TaskStatus(req.Status)
		if !status.Valid() {
			return nil, NewValidationError("status", "invalid status")
		}
		filter.Status = status
	}

	tasks, err := s.storage.ListTasks(ctx, caller.TenantID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

func (s *Service) UpdateTask(ctx context.Context, caller Caller, id string, req *UpdateTaskRequest) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "task.Service.UpdateTask")
	defer span.End()

	// Missing expected_version is a request-shape error, not a conflict.
	if req.ExpectedVersion == nil {
		return nil, NewValidationError("expected_version", "expected_version is required")
	}

	current, err := s.storage.GetTaskByID(ctx, caller.TenantID, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}

	// Soft-deleted is terminal for mutation.
	if current.IsDeleted {
		return nil, ErrNotFound
	}

	decision, err := s.authz.Authorize(ctx, caller.UserID, caller.TenantID, caller.ActiveRole, authorization.ActionUpdate, current)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, NewDeniedError(decision.Reason)
	}

	// A receiver may only drive status transitions; every other field is off
	// limits for that role.
	if caller.ActiveRole == types.RoleTaskReceiver && touchesNonTransitionFields(req) {
		return nil, NewDeniedError("receivers may only change task status")
	}

	next := current.Status
	if req.Status != nil {
		next = types.TaskStatus(*req.Status)
		if !next.Valid() {
			return nil, NewValidationError("status", "invalid status")
		}

		reason := ""
		if req.BlockedReason != nil {
			reason = *req.BlockedReason
		}
		if err := workflow.ValidateTransition(current.Status, next, caller.ActiveRole, reason); err != nil {
			return nil, NewTransitionError(err)
		}
	}

	updated := *current
	updated.Status = next
	updated.UpdatedBy = &caller.UserID

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, NewValidationError("title", "title cannot be empty")
		}
		updated.Title = title
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Priority != nil {
		priority := types.Priority(*req.Priority)
		if !priority.Valid() {
			return nil, NewValidationError("priority", "invalid priority")
		}
		updated.Priority = priority
	}
	if req.DueDate != nil {
		updated.DueDate = req.DueDate
	}
	if req.AssignedTo != nil {
		if err := s.checkAssignee(ctx, caller.TenantID, *req.AssignedTo); err != nil {
			return nil, err
		}
		updated.AssignedTo = *req.AssignedTo
	}

	// Leaving BLOCKED clears the reason in the same update; entering it sets
	// the reason carried by this request.
	switch {
	case next != types.StatusBlocked:
		updated.BlockedReason = nil
	case req.BlockedReason != nil:
		reason := strings.TrimSpace(*req.BlockedReason)
		updated.BlockedReason = &reason
	}

	// A task that ends up at BLOCKED must carry a non-empty reason. The
	// transition guard only sees genuine status changes, so an update that
	// stays at BLOCKED is checked here against the value being persisted.
	if updated.Status == types.StatusBlocked && (updated.BlockedReason == nil || *updated.BlockedReason == "") {
		return nil, NewTransitionError(workflow.ErrBlockedReasonRequired)
	}

	persisted, err := s.storage.UpdateTask(ctx, &updated, *req.ExpectedVersion)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrVersionConflict):
			return nil, ErrVersionConflict
		case errors.Is(err, storage.ErrNotFound):
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	action := types.ActionUpdated
	if req.Status != nil {
		action = workflow.ActionFor(current.Status, persisted.Status)
	}
	if err := s.recordHistory(ctx, persisted, caller.UserID, action); err != nil {
		return nil, err
	}

	return persisted, nil
}

func (s *Service) DeleteTask(ctx context.Context, caller Caller, id string) error {
	ctx, span := s.tracer.Start(ctx, "task.Service.DeleteTask")
	defer span.End()

	current, err := s.storage.GetTaskByID(ctx, caller.TenantID, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load task: %w", err)
	}
	if current.IsDeleted {
		return ErrNotFound
	}

	decision, err := s.authz.Authorize(ctx, caller.UserID, caller.TenantID, caller.ActiveRole, authorization.ActionDelete, current)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return NewDeniedError(decision.Reason)
	}

	deleted, err := s.storage.SoftDeleteTask(ctx, caller.TenantID, id, caller.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return s.recordHistory(ctx, deleted, caller.UserID, types.ActionSoftDeleted)
}

// GetHistory returns the audit trail. It works on soft-deleted tasks too:
// deletion is terminal for mutation, not for reads of history.
func (s *Service) GetHistory(ctx context.Context, caller Caller, taskID string) ([]*types.TaskHistory, error) {
	ctx, span := s.tracer.Start(ctx, "task.Service.GetHistory")
	defer span.End()

	if _, err := s.loadVisibleTask(ctx, caller, taskID, authorization.ActionRead); err != nil {
		return nil, err
	}

	history, err := s.storage.ListTaskHistory(ctx, caller.TenantID, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list task history: %w", err)
	}

	return history, nil
}

func (s *Service) AddAttachment(ctx context.Context, caller Caller, taskID string, upload *AttachmentUpload) (*types.TaskAttachment, error) {
	ctx, span := s.tracer.Start(ctx, "task.Service.AddAttachment")
	defer span.End()

	current, err := s.storage.GetTaskByID(ctx, caller.TenantID, taskID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}
	if current.IsDeleted {
		return nil, ErrNotFound
	}

	decision, err := s.authz.Authorize(ctx, caller.UserID, caller.TenantID, caller.ActiveRole, authorization.ActionUpdate, current)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, NewDeniedError(decision.Reason)
	}

	attachmentType := types.AttachmentRequirement
	if upload.Type != "" {
		attachmentType = types.AttachmentType(upload.Type)
		if !attachmentType.Valid() {
			return nil, NewValidationError("type", "invalid attachment type")
		}
	}
	if upload.Filename == "" {
		return nil, NewValidationError("file", "filename is required")
	}

	ref, err := s.files.Save(ctx, upload.Filename, upload.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}

	created, err := s.storage.CreateAttachment(ctx, &types.TaskAttachment{
		TenantID:     caller.TenantID,
		TaskID:       taskID,
		UploadedBy:   &caller.UserID,
		FileRef:      ref,
		OriginalName: upload.Filename,
		Type:         attachmentType,
	})
	if err != nil {
		// Best effort cleanup so the committed metadata and stored bytes
		// cannot diverge silently.
		if rmErr := s.files.Remove(ctx, ref); rmErr != nil {
			s.logger.Errorf("failed to remove orphaned attachment file %s: %v", ref, rmErr)
		}
		return nil, fmt.Errorf("failed to create attachment: %w", err)
	}

	return created, nil
}

func (s *Service) ListAttachments(ctx context.Context, caller Caller, taskID string) ([]*types.TaskAttachment, error) {
	ctx, span := s.tracer.Start(ctx, "task.Service.ListAttachments")
	defer span.End()

	if _, err := s.loadVisibleTask(ctx, caller, taskID, authorization.ActionRead); err != nil {
		return nil, err
	}

	attachments, err := s.storage.ListAttachmentsByTaskID(ctx, caller.TenantID, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	return attachments, nil
}

func (s *Service) DeleteAttachment(ctx context.Context, caller Caller, taskID, attachmentID string) error {
	ctx, span := s.tracer.Start(ctx, "task.Service.DeleteAttachment")
	defer span.End()

	current, err := s.storage.GetTaskByID(ctx, caller.TenantID, taskID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load task: %w", err)
	}

	decision, err := s.authz.Authorize(ctx, caller.UserID, caller.TenantID, caller.ActiveRole, authorization.ActionUpdate, current)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return NewDeniedError(decision.Reason)
	}

	attachment, err := s.storage.GetAttachmentByID(ctx, caller.TenantID, attachmentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load attachment: %w", err)
	}
	if attachment.TaskID != taskID {
		return ErrNotFound
	}

	if err := s.storage.DeleteAttachment(ctx, caller.TenantID, attachmentID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete attachment: %w", err)
	}

	if err := s.files.Remove(ctx, attachment.FileRef); err != nil {
		s.logger.Errorf("failed to remove attachment file %s: %v", attachment.FileRef, err)
	}

	return nil
}

// loadVisibleTask fetches a task and applies the role read scope. Tasks
// outside the scope are reported as absent, never as forbidden.
func (s *Service) loadVisibleTask(ctx context.Context, caller Caller, id string, action authorization.Action) (*types.Task, error) {
	t, err := s.storage.GetTaskByID(ctx, caller.TenantID, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}

	decision, err := s.authz.Authorize(ctx, caller.UserID, caller.TenantID, caller.ActiveRole, action, t)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, NewDeniedError(decision.Reason)
	}

	if !s.authz.CanView(caller.UserID, caller.ActiveRole, t) {
		return nil, ErrNotFound
	}

	return t, nil
}

func (s *Service) checkAssignee(ctx context.Context, tenantID, assigneeID string) error {
	assignee, err := s.storage.GetUserByID(ctx, assigneeID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return NewValidationError("assigned_to", "assignee does not exist")
		}
		return fmt.Errorf("failed to load assignee: %w", err)
	}
	if assignee.TenantID != tenantID {
		return NewValidationError("assigned_to", "cannot assign task outside your tenant")
	}
	return nil
}

// recordHistory appends the post-mutation snapshot. It runs inside the same
// request transaction as the mutation, so both commit or roll back together.
func (s *Service) recordHistory(ctx context.Context, t *types.Task, performedBy string, action types.HistoryAction) error {
	_, err := s.storage.AppendTaskHistory(ctx, &types.TaskHistory{
		TenantID:    t.TenantID,
		TaskID:      t.ID,
		Action:      action,
		PerformedBy: &performedBy,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
	})
	if err != nil {
		return fmt.Errorf("failed to record task history: %w", err)
	}
	return nil
}

func touchesNonTransitionFields(req *UpdateTaskRequest) bool {
	return req.Title != nil || req.Description != nil || req.AssignedTo != nil ||
		req.Priority != nil || req.DueDate != nil
}
