// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/canonical/task-service/internal/db"
	"github.com/canonical/task-service/internal/logging"
	"github.com/canonical/task-service/internal/monitoring"
	"github.com/canonical/task-service/internal/tracing"
	"github.com/canonical/task-service/internal/types"
	"github.com/google/uuid"
)

var _ StorageInterface = (*Storage)(nil)

var taskColumns = []string{
	"id", "tenant_id", "title", "description", "created_by", "assigned_to",
	"status", "priority", "blocked_reason", "due_date", "version",
	"is_deleted", "deleted_at", "deleted_by", "created_at", "updated_at", "updated_by",
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	var t types.Tenant
	err := s.db.Statement(ctx).
		Select("id", "name", "status", "created_at").
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.Status, &t.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &t, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Select("id", "tenant_id", "email", "name", "created_at").
		From("users").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.TenantID, &u.Email, &u.Name, &u.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

func (s *Storage) ListUsersByTenantID(ctx context.Context, tenantID string) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUsersByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "email", "name", "created_at").
		From("users").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("email").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*types.User
	for rows.Next() {
		var u types.User
		if err := rows.Scan(&u.ID, &u.TenantID, &u.Email, &u.Name, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

func (s *Storage) ListRoleGrants(ctx context.Context, userID, tenantID string) ([]*types.RoleGrant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRoleGrants")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "user_id", "tenant_id", "role", "created_at").
		From("role_grants").
		Where(sq.Eq{
			"user_id":   userID,
			"tenant_id": tenantID,
		}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list role grants: %w", err)
	}
	defer rows.Close()

	var grants []*types.RoleGrant
	for rows.Next() {
		var g types.RoleGrant
		if err := rows.Scan(&g.ID, &g.UserID, &g.TenantID, &g.Role, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role grant: %w", err)
		}
		grants = append(grants, &g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return grants, nil
}

func (s *Storage) CreateTask(ctx context.Context, t *types.Task) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTask")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate task ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("tasks").
		Columns("id", "tenant_id", "title", "description", "created_by", "assigned_to",
			"status", "priority", "blocked_reason", "due_date").
		Values(id.String(), t.TenantID, t.Title, t.Description, t.CreatedBy, t.AssignedTo,
			t.Status, t.Priority, t.BlockedReason, t.DueDate).
		Suffix("RETURNING " + joinColumns(taskColumns)).
		QueryRowContext(ctx)

	created, err := scanTask(row)
	if err != nil {
		return nil, WrapForeignKeyError(fmt.Errorf("failed to insert task: %w", err), "task references missing tenant or user")
	}

	return created, nil
}

// GetTaskByID returns the task row regardless of its soft-delete state; the
// caller decides whether a deleted task is visible for the operation at hand.
func (s *Storage) GetTaskByID(ctx context.Context, tenantID, id string) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTaskByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{
			"id":        id,
			"tenant_id": tenantID,
		}).
		QueryRowContext(ctx)

	t, err := scanTask(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

func (s *Storage) ListTasks(ctx context.Context, tenantID string, filter TaskFilter) ([]*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTasks")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{
			"tenant_id":  tenantID,
			"is_deleted": false,
		}).
		OrderBy("created_at DESC").
		Limit(db.PageSize(filter.Size)).
		Offset(db.Offset(filter.Page, db.PageSize(filter.Size)))

	if filter.CreatedBy != "" {
		query = query.Where(sq.Eq{"created_by": filter.CreatedBy})
	}
	if filter.AssignedTo != "" {
		query = query.Where(sq.Eq{"assigned_to": filter.AssignedTo})
	}
	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": filter.Status})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*types.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tasks, nil
}

// UpdateTask is the single compare-and-swap point for task mutation. The
// version predicate and the increment live in one UPDATE statement so two
// writers racing on the same observed version cannot both succeed.
func (s *Storage) UpdateTask(ctx context.Context, t *types.Task, expectedVersion int64) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTask")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("tasks").
		SetMap(map[string]interface{}{
			"title":          t.Title,
			"description":    t.Description,
			"assigned_to":    t.AssignedTo,
			"status":         t.Status,
			"priority":       t.Priority,
			"blocked_reason": t.BlockedReason,
			"due_date":       t.DueDate,
			"updated_by":     t.UpdatedBy,
		}).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{
			"id":         t.ID,
			"tenant_id":  t.TenantID,
			"version":    expectedVersion,
			"is_deleted": false,
		}).
		Suffix("RETURNING " + joinColumns(taskColumns)).
		QueryRowContext(ctx)

	updated, err := scanTask(row)
	if err == nil {
		return updated, nil
	}
	if !isNoRows(err) {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	// No row matched: either the task is gone (or soft-deleted) or the
	// version moved. Re-read to report the right condition.
	current, getErr := s.GetTaskByID(ctx, t.TenantID, t.ID)
	if getErr != nil {
		return nil, getErr
	}
	if current.IsDeleted {
		return nil, ErrNotFound
	}
	return nil, ErrVersionConflict
}

func (s *Storage) SoftDeleteTask(ctx context.Context, tenantID, id, deletedBy string) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SoftDeleteTask")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("tasks").
		SetMap(map[string]interface{}{
			"is_deleted": true,
			"deleted_by": deletedBy,
			"updated_by": deletedBy,
		}).
		Set("deleted_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{
			"id":         id,
			"tenant_id":  tenantID,
			"is_deleted": false,
		}).
		Suffix("RETURNING " + joinColumns(taskColumns)).
		QueryRowContext(ctx)

	deleted, err := scanTask(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to soft delete task: %w", err)
	}

	return deleted, nil
}

func (s *Storage) AppendTaskHistory(ctx context.Context, h *types.TaskHistory) (*types.TaskHistory, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AppendTaskHistory")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate history ID: %w", err)
	}

	var created types.TaskHistory
	err = s.db.Statement(ctx).
		Insert("task_history").
		Columns("id", "tenant_id", "task_id", "action", "performed_by",
			"title", "description", "status", "priority", "due_date").
		Values(id.String(), h.TenantID, h.TaskID, h.Action, h.PerformedBy,
			h.Title, h.Description, h.Status, h.Priority, h.DueDate).
		Suffix("RETURNING id, tenant_id, task_id, action, performed_by, timestamp, title, description, status, priority, due_date").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.TenantID, &created.TaskID, &created.Action, &created.PerformedBy,
			&created.Timestamp, &created.Title, &created.Description, &created.Status, &created.Priority, &created.DueDate)

	if err != nil {
		return nil, fmt.Errorf("failed to append task history: %w", err)
	}

	return &created, nil
}

func (s *Storage) ListTaskHistory(ctx context.Context, tenantID, taskID string) ([]*types.TaskHistory, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTaskHistory")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "task_id", "action", "performed_by", "timestamp",
			"title", "description", "status", "priority", "due_date").
		From("task_history").
		Where(sq.Eq{
			"tenant_id": tenantID,
			"task_id":   taskID,
		}).
		OrderBy("timestamp DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list task history: %w", err)
	}
	defer rows.Close()

	var history []*types.TaskHistory
	for rows.Next() {
		var h types.TaskHistory
		if err := rows.Scan(&h.ID, &h.TenantID, &h.TaskID, &h.Action, &h.PerformedBy,
			&h.Timestamp, &h.Title, &h.Description, &h.Status, &h.Priority, &h.DueDate); err != nil {
			return nil, fmt.Errorf("failed to scan task history: %w", err)
		}
		history = append(history, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return history, nil
}

func (s *Storage) CreateAttachment(ctx context.Context, a *types.TaskAttachment) (*types.TaskAttachment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAttachment")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate attachment ID: %w", err)
	}

	var created types.TaskAttachment
	err = s.db.Statement(ctx).
		Insert("task_attachments").
		Columns("id", "tenant_id", "task_id", "uploaded_by", "file_ref", "original_name", "type").
		Values(id.String(), a.TenantID, a.TaskID, a.UploadedBy, a.FileRef, a.OriginalName, a.Type).
		Suffix("RETURNING id, tenant_id, task_id, uploaded_by, file_ref, original_name, type, uploaded_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.TenantID, &created.TaskID, &created.UploadedBy,
			&created.FileRef, &created.OriginalName, &created.Type, &created.UploadedAt)

	if err != nil {
		return nil, WrapForeignKeyError(fmt.Errorf("failed to insert attachment: %w", err), "attachment references missing task")
	}

	return &created, nil
}

func (s *Storage) ListAttachmentsByTaskID(ctx context.Context, tenantID, taskID string) ([]*types.TaskAttachment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAttachmentsByTaskID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "task_id", "uploaded_by", "file_ref", "original_name", "type", "uploaded_at").
		From("task_attachments").
		Where(sq.Eq{
			"tenant_id": tenantID,
			"task_id":   taskID,
		}).
		OrderBy("uploaded_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	defer rows.Close()

	var attachments []*types.TaskAttachment
	for rows.Next() {
		var a types.TaskAttachment
		if err := rows.Scan(&a.ID, &a.TenantID, &a.TaskID, &a.UploadedBy,
			&a.FileRef, &a.OriginalName, &a.Type, &a.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attachment: %w", err)
		}
		attachments = append(attachments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return attachments, nil
}

func (s *Storage) GetAttachmentByID(ctx context.Context, tenantID, id string) (*types.TaskAttachment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAttachmentByID")
	defer span.End()

	var a types.TaskAttachment
	err := s.db.Statement(ctx).
		Select("id", "tenant_id", "task_id", "uploaded_by", "file_ref", "original_name", "type", "uploaded_at").
		From("task_attachments").
		Where(sq.Eq{
			"id":        id,
			"tenant_id": tenantID,
		}).
		QueryRowContext(ctx).
		Scan(&a.ID, &a.TenantID, &a.TaskID, &a.UploadedBy,
			&a.FileRef, &a.OriginalName, &a.Type, &a.UploadedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}

	return &a, nil
}

func (s *Storage) DeleteAttachment(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteAttachment")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("task_attachments").
		Where(sq.Eq{
			"id":        id,
			"tenant_id": tenantID,
		}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (*types.Task, error) {
	var t types.Task
	err := row.Scan(
		&t.ID, &t.TenantID, &t.Title, &t.Description, &t.CreatedBy, &t.AssignedTo,
		&t.Status, &t.Priority, &t.BlockedReason, &t.DueDate, &t.Version,
		&t.IsDeleted, &t.DeletedAt, &t.DeletedBy, &t.CreatedAt, &t.UpdatedAt, &t.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
