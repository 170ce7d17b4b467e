// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package task

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/task-service/internal/authorization"
	"github.com/canonical/task-service/internal/logging"
	"github.com/canonical/task-service/internal/monitoring"
	"github.com/canonical/task-service/internal/storage"
	"github.com/canonical/task-service/internal/tracing"
	"github.com/canonical/task-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package task -destination ./mock_task.go -source=./interfaces.go

const (
	tenantID = "tenant-1"
	taskID   = "task-1"
)

var (
	creator  = Caller{UserID: "user-creator", TenantID: tenantID, ActiveRole: types.RoleTaskCreator}
	receiver = Caller{UserID: "user-receiver", TenantID: tenantID, ActiveRole: types.RoleTaskReceiver}
	admin    = Caller{UserID: "user-admin", TenantID: tenantID, ActiveRole: types.RoleAdmin}
)

type serviceFixture struct {
	storage *MockStorageInterface
	authz   *MockAuthorizerInterface
	files   *MockFileStoreInterface
	service *Service
}

func newFixture(t *testing.T) *serviceFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &serviceFixture{
		storage: NewMockStorageInterface(ctrl),
		authz:   NewMockAuthorizerInterface(ctrl),
		files:   NewMockFileStoreInterface(ctrl),
	}
	f.service = NewService(
		f.storage,
		f.authz,
		f.files,
		tracing.NewTracer(tracing.NewNoopConfig()),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return f
}

func allow() authorization.Decision {
	return authorization.Decision{Allowed: true}
}

func deny(reason string) authorization.Decision {
	return authorization.Decision{Reason: reason}
}

func existingTask(status types.TaskStatus) *types.Task {
	return &types.Task{
		ID:         taskID,
		TenantID:   tenantID,
		Title:      "Prepare quarterly report",
		CreatedBy:  creator.UserID,
		AssignedTo: receiver.UserID,
		Status:     status,
		Priority:   types.PriorityNormal,
		Version:    3,
	}
}

func assertCode(t *testing.T, err error, code ErrorCode) {
	t.Helper()
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Code != code {
		t.Fatalf("expected code %q, got %q (%s)", code, apiErr.Code, apiErr.Message)
	}
}

func TestService_CreateTask(t *testing.T) {
	assignee := &types.User{ID: receiver.UserID, TenantID: tenantID}

	testCases := []struct {
		name         string
		caller       Caller
		req          *CreateTaskRequest
		setupMocks   func(*serviceFixture)
		expectedCode ErrorCode
	}{
		{
			name:   "defaults applied",
			caller: creator,
			req:    &CreateTaskRequest{Title: "  New task  ", AssignedTo: receiver.UserID},
			setupMocks: func(f *serviceFixture) {
				f.authz.EXPECT().Authorize(gomock.Any(), creator.UserID, tenantID, types.RoleTaskCreator, authorization.ActionCreate, nil).Return(allow(), nil)
				f.storage.EXPECT().GetUserByID(gomock.Any(), receiver.UserID).Return(assignee, nil)
				f.storage.EXPECT().CreateTask(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, task *types.Task) (*types.Task, error) {
						if task.Title != "New task" {
							t.Errorf("expected trimmed title, got %q", task.Title)
						}
						if task.Status != types.StatusNotStarted {
							t.Errorf("expected status NOT_STARTED, got %s", task.Status)
						}
						if task.Priority != types.PriorityNormal {
							t.Errorf("expected priority P3, got %s", task.Priority)
						}
						task.ID = taskID
						task.Version = 1
						return task, nil
					})
				f.storage.EXPECT().AppendTaskHistory(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, h *types.TaskHistory) (*types.TaskHistory, error) {
						if h.Action != types.ActionCreated {
							t.Errorf("expected CREATED history, got %s", h.Action)
						}
						return h, nil
					})
			},
		},
		{
			name:   "denied for receiver",
			caller: receiver,
			req:    &CreateTaskRequest{Title: "New task", AssignedTo: receiver.UserID},
			setupMocks: func(f *serviceFixture) {
				f.authz.EXPECT().Authorize(gomock.Any(), receiver.UserID, tenantID, types.RoleTaskReceiver, authorization.ActionCreate, nil).Return(deny(authorization.ReasonRoleCannotCreate), nil)
			},
			expectedCode: CodeDenied,
		},
		{
			name:   "blank title",
			caller: creator,
			req:    &CreateTaskRequest{Title: "   ", AssignedTo: receiver.UserID},
			setupMocks: func(f *serviceFixture) {
				f.authz.EXPECT().Authorize(gomock.Any(), creator.UserID, tenantID, types.RoleTaskCreator, authorization.ActionCreate, nil).Return(allow(), nil)
			},
			expectedCode: CodeValidation,
		},
		{
			name:   "invalid priority",
			caller: creator,
			req:    &CreateTaskRequest{Title: "New task", AssignedTo: receiver.UserID, Priority: "P9"},
			setupMocks: func(f *serviceFixture) {
				f.authz.EXPECT().Authorize(gomock.Any(), creator.UserID, tenantID, types.RoleTaskCreator, authorization.ActionCreate, nil).Return(allow(), nil)
			},
			expectedCode: CodeValidation,
		},
		{
			name:   "assignee in another tenant",
			caller: creator,
			req:    &CreateTaskRequest{Title: "New task", AssignedTo: "outsider"},
			setupMocks: func(f *serviceFixture) {
				f.authz.EXPECT().Authorize(gomock.Any(), creator.UserID, tenantID, types.RoleTaskCreator, authorization.ActionCreate, nil).Return(allow(), nil)
				f.storage.EXPECT().GetUserByID(gomock.Any(), "outsider").Return(&types.User{ID: "outsider", TenantID: "tenant-2"}, nil)
			},
			expectedCode: CodeValidation,
		},
		{
			name:   "unknown assignee",
			caller: creator,
			req:    &CreateTaskRequest{Title: "New task", AssignedTo: "ghost"},
			setupMocks: func(f *serviceFixture) {
				f.authz.EXPECT().Authorize(gomock.Any(), creator.UserID, tenantID, types.RoleTaskCreator, authorization.ActionCreate, nil).Return(allow(), nil)
				f.storage.EXPECT().GetUserByID(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)
			},
			expectedCode: CodeValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			tc.setupMocks(f)

			created, err := f.service.CreateTask(context.Background(), tc.caller, tc.req)
			if tc.expectedCode != "" {
				assertCode(t, err, tc.expectedCode)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created.ID != taskID {
				t.Errorf("expected task id %q, got %q", taskID, created.ID)
			}
		})
	}
}

func TestService_UpdateTask_RequiresExpectedVersion(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.UpdateTask(context.Background(), creator, taskID, &UpdateTaskRequest{})
	assertCode(t, err, CodeValidation)
}

func TestService_UpdateTask_VersionConflictIsNotValidation(t *testing.T) {
	f := newFixture(t)

	current := existingTask(types.StatusNotStarted)
	f.storage.EXPECT().GetTaskByID(gomock.Any(), tenantID, taskID).Return(current, nil)
	f.authz.EXPECT().Authorize(gomock.Any(), creator.UserID, tenantID, types.RoleTaskCreator, authorization.ActionUpdate, current).Return(allow(), nil)
	f.storage.EXPECT().UpdateTask(gomock.Any(), gomock.Any(), int64(2)).Return(nil, storage.ErrVersionConflict)

	stale := int64(2)
	title := "Renamed"
	_, err := f.service.UpdateTask(context.Background(), creator, taskID, &UpdateTaskRequest{ExpectedVersion: &stale, Title: &title})
	assertCode(t, err, CodeVersionConflict)
}

func TestService_UpdateTask_TransitionRecordedInHistory(t *testing.T) {
	f := newFixture(t)

	current := existingTask(types.StatusInProgress)
	f.storage.EXPECT().GetTaskByID(gomock.Any(), tenantID, taskID).Return(current, nil)
	f.authz.EXPECT().Authorize(gomock.Any(), receiver.UserID, tenantID, types.RoleTaskReceiver, authorization.ActionUpdate, current).Return(allow(), nil)
	f.storage.EXPECT().UpdateTask(gomock.Any(), gomock.Any(), current.Version).DoAndReturn(
		func(_ context.Context, task *types.Task, _ int64) (*types.Task, error) {
			task.Version = current.Version + 1
			return task, nil
		})
	f.storage.EXPECT().AppendTaskHistory(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, h *types.TaskHistory) (*types.TaskHistory, error) {
			if h.Action != types.ActionSubmitted {
				t.Errorf("expected SUBMITTED history, got %s", h.Action)
			}
			if h.Status != types.StatusWaitingReview {
				t.Errorf("history should snapshot the post-mutation status, got %s", h.Status)
			}
			return h, nil
		})

	version := current.Version
	status := string(types.StatusWaitingReview)
	updated, err := f.service.UpdateTask(context.Background(), receiver, taskID, &UpdateTaskRequest{ExpectedVersion: &version, Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Version != current.Version+1 {
		t.Errorf("expected version bump to %d, got %d", current.Version+1, updated.Version)
	}
}

func TestService_UpdateTask_InvalidTransition(t *testing.T) {
	f := newFixture(t)

	current := existingTask(types.StatusNotStarted)
	f.storage.EXPECT().GetTaskByID(gomock.Any(), tenantID, taskID).Return(current, nil)
	f.authz.EXPECT().Authorize(gomock.Any(), creator.UserID, tenantID, types.RoleTaskCreator, authorization.ActionUpdate, current).Return(allow(), nil)

	version := current.Version
	status := string(types.StatusDone)
	_, err := f.service.UpdateTask(context.Background(), creator, taskID, &UpdateTaskRequest{ExpectedVersion: &version, Status: &status})
	assertCode(t, err, CodeInvalidTransition)
}

func TestService_UpdateTask_ReceiverCannotEditFields(t *testing.T) {
	f := newFixture(t)

	current := existingTask(types.StatusInProgress)
	f.storage.EXPECT().GetTaskByID(gomock.Any(), tenantID, taskID).Return(current, nil)
	f.authz.EXPECT().Authorize(gomock.Any(), receiver.UserID, tenantID, types.RoleTaskReceiver, authorization.ActionUpdate, current).Return(allow(), nil)

	version := current.Version
	title := "Hijacked title"
	_, err := f.service.UpdateTask(context.Background(), receiver, taskID, &UpdateTaskRequest{ExpectedVersion: &version, Title: &title})
	assertCode(t, err, CodeDenied)
}

func TestService_UpdateTask_LeavingBlockedClearsReason(t *testing.T) {
	f := newFixture(t)

	current := existingTask(types.StatusBlocked)
	reason := "waiting on credentials"
	current.BlockedReason = &reason

	f.storage.EXPECT().GetTaskByID(gomock.Any(), tenantID, taskID).Return(current, nil)
	f.authz.EXPECT().Authorize(gomock.Any(), receiver.UserID, tenantID, types.RoleTaskReceiver, authorization.ActionUpdate, current).Return(allow(), nil)
	f.storage.EXPECT().UpdateTask(gomock.Any(), gomock.Any(), current.Version).DoAndReturn(
		func(_ context.Context, task *types.Task, _ int64) (*types.Task, error) {
			if task.BlockedReason != nil {
				t.Errorf("expected blocked_reason cleared, got %q", *task.BlockedReason)
			}
			task.Version = current.Version + 1
			return task, nil
		})
	f.storage.EXPECT().AppendTaskHistory(gomock.Any(), gomock.Any()).Return(&types.TaskHistory{}, nil)

	version := current.Version
	status := string(types.StatusInProgress)
	if _, err := f.service.UpdateTask(context.Background(), receiver, taskID, &UpdateTaskRequest{ExpectedVersion: &version, Status: &status}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_UpdateTask_BlockedRequiresReason(t *testing.T) {
	f := newFixture(t)

	current := existingTask(types.StatusInProgress)
	f.storage.EXPECT().GetTaskByID(gomock.Any(), tenantID, taskID).Return(current, nil)
	f.authz.EXPECT().Authorize(gomock.Any(), receiver.UserID, tenantID, types.RoleTaskReceiver, authorization.ActionUpdate, current).Return(allow(), nil)

	version := current.Version
	status := string(types.StatusBlocked)
	_, err := f.service.UpdateTask(context.Background(), receiver, taskID, &UpdateTaskRequest{ExpectedVersion: &version, Status: &status})
	assertCode(t, err, CodeInvalidTransition)
}

func TestService_UpdateTask_StayBlockedRejectsEmptyReason(t *testing.T) {
	f := newFixture(t)

	current := existingTask(types.StatusBlocked)
	reason := "waiting on vendor"
	current.BlockedReason = &reason
	f.storage.EXPECT().GetTaskByID(gomock.Any(), tenantID, taskID).Return(current, nil)
	f.authz.EXPECT().Authorize(gomock.Any(), receiver.UserID, tenantID, types.RoleTaskReceiver, authorization.ActionUpdate, current).Return(allow(), nil)

	version := current.Version
	status := string(types.StatusBlocked)
	empty := ""
	_, err := f.service.UpdateTask(context.Background(), receiver, taskID, &UpdateTaskRequest{ExpectedVersion: &version, Status: &status, BlockedReason: &empty})
	assertCode(t, err, CodeInvalidTransition)
}

func TestService_UpdateTask_StayBlockedKeepsExistingReason(t *testing.T) {
	f := newFixture(t)

	current := existingTask(types.StatusBlocked)
	reason := "waiting on vendor"
	current.BlockedReason = &reason
	f.storage.EXPECT().GetTaskByID(gomock.Any(), tenantID, taskID).Return(current, nil)
	f.authz.EXPECT().Authorize(gomock.Any(), receiver.UserID, tenantID, types.RoleTaskReceiver, authorization.ActionUpdate, current).Return(allow(), nil)
	f.storage.EXPECT().UpdateTask(gomock.Any(), gomock.Any(), current.Version).DoAndReturn(
		func(_ context.Context, task *types.Task, _ int64) (*types.Task, error) {
			if task.BlockedReason == nil || *task.BlockedReason != reason {
				t.Errorf("expected blocked_reason preserved, got %v", task.BlockedReason)
			}
			task.Version = current.Version + 1
			return task, nil
		})
	f.storage.EXPECT().AppendTaskHistory(gomock.Any(), gomock.Any()).Return(&types.TaskHistory{}, nil)

	version := current.Version
	status := string(types.StatusBlocked)
	if _, err := f.service.UpdateTask(context.Background(), receiver, taskID, &UpdateTaskRequest{ExpectedVersion: &version, Status: &status}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_UpdateTask_DeletedTaskIsGone(t *testing.T) {
	f := newFixture(t)

	current := existingTask(types.StatusInProgress)
	current.IsDeleted = true
	f.storage.EXPECT().GetTaskByID(gomock.Any(), tenantID, taskID).Return(current, nil)

	version := current.Version
	_, err := f.service.UpdateTask(context.Background(), creator, taskID, &UpdateTaskRequest{ExpectedVersion: &version})
	assertCode(t, err, CodeNotFound)
}

func TestService_DeleteTask(t *testing.T) {
	f := newFixture(t)

	current := existingTask(types.StatusInProgress)
	f.storage.EXPECT().GetTaskByID(gomock.Any(), tenantID, taskID).Return(current, nil)
	f.authz.EXPECT().Authorize(gomock.Any(), creator.UserID, tenantID, types.RoleTaskCreator, authorization.ActionDelete, current).Return(allow(), nil)

	deleted := *current
	deleted.IsDeleted = true
	deleted.Version = current.Version + 1
	f.storage.EXPECT().SoftDeleteTask(gomock.Any(), tenantID, taskID, creator.UserID).Return(&deleted, nil)
	f.storage.EXPECT().AppendTaskHistory(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, h *types.TaskHistory) (*types.TaskHistory, error) {
			if h.Action != types.ActionSoftDeleted {
				t.Errorf("expected SOFT_DELETED history, got %s", h.Action)
			}
			return h, nil
		})

	if err := f.service.DeleteTask(context.Background(), creator, taskID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_GetTask_OutOfScopeIsNotFound(t *testing.T) {
	f := newFixture(t)

	// A receiver probing a task assigned to somebody else must not learn it
	// exists.
	other := existingTask(types.StatusInProgress)
	other.AssignedTo = "someone-else"

	f.storage.EXPECT().GetTaskByID(gomock.Any(), tenantID, taskID).Return(other, nil)
	f.authz.EXPECT().Authorize(gomock.Any(), receiver.UserID, tenantID, types.RoleTaskReceiver, authorization.ActionRead, other).Return(allow(), nil)
	f.authz.EXPECT().CanView(receiver.UserID, types.RoleTaskReceiver, other).Return(false)

	_, err := f.service.GetTask(context.Background(), receiver, taskID)
	assertCode(t, err, CodeNotFound)
}

func TestService_ListTasks_AppliesScopeBeforePagination(t *testing.T) {
	f := newFixture(t)

	f.authz.EXPECT().Authorize(gomock.Any(), receiver.UserID, tenantID, types.RoleTaskReceiver, authorization.ActionRead, nil).Return(allow(), nil)
	f.authz.EXPECT().ScopeFilter(receiver.UserID, types.RoleTaskReceiver).Return(storage.TaskFilter{AssignedTo: receiver.UserID})
	f.storage.EXPECT().ListTasks(gomock.Any(), tenantID, storage.TaskFilter{
		AssignedTo: receiver.UserID,
		Status:     types.StatusInProgress,
		Page:       2,
		Size:       10,
	}).Return([]*types.Task{existingTask(types.StatusInProgress)}, nil)

	tasks, err := f.service.ListTasks(context.Background(), receiver, &ListTasksRequest{Status: "IN_PROGRESS", Page: 2, Size: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
}

func TestService_ListTasks_InvalidStatus(t *testing.T) {
	f := newFixture(t)

	f.authz.EXPECT().Authorize(gomock.Any(), admin.UserID, tenantID, types.RoleAdmin, authorization.ActionRead, nil).Return(allow(), nil)
	f.authz.EXPECT().ScopeFilter(admin.UserID, types.RoleAdmin).Return(storage.TaskFilter{})

	_, err := f.service.ListTasks(context.Background(), admin, &ListTasksRequest{Status: "SHIPPED"})
	assertCode(t, err, CodeValidation)
}

func TestService_GetHistory_WorksForDeletedTask(t *testing.T) {
	f := newFixture(t)

	deleted := existingTask(types.StatusCancelled)
	deleted.IsDeleted = true

	f.storage.EXPECT().GetTaskByID(gomock.Any(), tenantID, taskID).Return(deleted, nil)
	f.authz.EXPECT().Authorize(gomock.Any(), admin.UserID, tenantID, types.RoleAdmin, authorization.ActionRead, deleted).Return(allow(), nil)
	f.authz.EXPECT().CanView(admin.UserID, types.RoleAdmin, deleted).Return(true)
	f.storage.EXPECT().ListTaskHistory(gomock.Any(), tenantID, taskID).Return([]*types.TaskHistory{
		{TaskID: taskID, Action: types.ActionCreated},
		{TaskID: taskID, Action: types.ActionSoftDeleted},
	}, nil)

	history, err := f.service.GetHistory(context.Background(), admin, taskID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 history rows, got %d", len(history))
	}
}

func TestService_AddAttachment(t *testing.T) {
	f := newFixture(t)

	current := existingTask(types.StatusInProgress)
	content := strings.NewReader("file contents")

	f.storage.EXPECT().GetTaskByID(gomock.Any(), tenantID, taskID).Return(current, nil)
	f.authz.EXPECT().Authorize(gomock.Any(), receiver.UserID, tenantID, types.RoleTaskReceiver, authorization.ActionUpdate, current).Return(allow(), nil)
	f.files.EXPECT().Save(gomock.Any(), "report.pdf", content).Return("refs/report.pdf", nil)
	f.storage.EXPECT().CreateAttachment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *types.TaskAttachment) (*types.TaskAttachment, error) {
			if a.FileRef != "refs/report.pdf" {
				t.Errorf("expected stored file ref, got %q", a.FileRef)
			}
			if a.Type != types.AttachmentSubmission {
				t.Errorf("expected SUBMISSION type, got %s", a.Type)
			}
			a.ID = "attachment-1"
			a.UploadedAt = time.Now()
			return a, nil
		})

	created, err := f.service.AddAttachment(context.Background(), receiver, taskID, &AttachmentUpload{
		Filename: "report.pdf",
		Type:     "SUBMISSION",
		Content:  content,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "attachment-1" {
		t.Errorf("expected attachment id, got %q", created.ID)
	}
}

func TestService_AddAttachment_MetadataFailureRemovesFile(t *testing.T) {
	f := newFixture(t)

	current := existingTask(types.StatusInProgress)
	dbErr := errors.New("db error")

	f.storage.EXPECT().GetTaskByID(gomock.Any(), tenantID, taskID).Return(current, nil)
	f.authz.EXPECT().Authorize(gomock.Any(), creator.UserID, tenantID, types.RoleTaskCreator, authorization.ActionUpdate, current).Return(allow(), nil)
	f.files.EXPECT().Save(gomock.Any(), "spec.txt", gomock.Any()).Return("refs/spec.txt", nil)
	f.storage.EXPECT().CreateAttachment(gomock.Any(), gomock.Any()).Return(nil, dbErr)
	f.files.EXPECT().Remove(gomock.Any(), "refs/spec.txt").Return(nil)

	_, err := f.service.AddAttachment(context.Background(), creator, taskID, &AttachmentUpload{
		Filename: "spec.txt",
		Content:  strings.NewReader("requirements"),
	})
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestService_DeleteAttachment_WrongTaskIsNotFound(t *testing.T) {
	f := newFixture(t)

	current := existingTask(types.StatusInProgress)
	f.storage.EXPECT().GetTaskByID(gomock.Any(), tenantID, taskID).Return(current, nil)
	f.authz.EXPECT().Authorize(gomock.Any(), admin.UserID, tenantID, types.RoleAdmin, authorization.ActionUpdate, current).Return(allow(), nil)
	f.storage.EXPECT().GetAttachmentByID(gomock.Any(), tenantID, "attachment-9").Return(&types.TaskAttachment{
		ID:     "attachment-9",
		TaskID: "some-other-task",
	}, nil)

	err := f.service.DeleteAttachment(context.Background(), admin, taskID, "attachment-9")
	assertCode(t, err, CodeNotFound)
}
