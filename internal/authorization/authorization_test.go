// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"github.com/canonical/task-service/internal/directory"
	"github.com/canonical/task-service/internal/logging"
	"github.com/canonical/task-service/internal/monitoring"
	"github.com/canonical/task-service/internal/tracing"
	"github.com/canonical/task-service/internal/types"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_directory.go -source=../directory/interfaces.go

const (
	userID   = "user-123"
	tenantID = "tenant-123"
)

func newAuthorizer(t *testing.T, granted directory.RoleSet) *Authorizer {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockDirectory := NewMockDirectoryInterface(ctrl)
	mockDirectory.EXPECT().GrantedRoles(gomock.Any(), userID, tenantID).Return(granted, nil).AnyTimes()

	return NewAuthorizer(
		mockDirectory,
		tracing.NewTracer(tracing.NewNoopConfig()),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func TestAuthorize_SpoofedRoleHeader(t *testing.T) {
	// Caller declares ADMIN but only holds a receiver grant.
	a := newAuthorizer(t, directory.RoleSet{types.RoleTaskReceiver: {}})

	decision, err := a.Authorize(context.Background(), userID, tenantID, types.RoleAdmin, ActionDelete, &types.Task{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decision.Allowed {
		t.Fatal("expected denial")
	}
	if decision.Reason != ReasonInvalidActiveRole {
		t.Errorf("expected reason %q, got %q", ReasonInvalidActiveRole, decision.Reason)
	}
}

func TestAuthorize_DirectoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dirErr := errors.New("directory error")
	mockDirectory := NewMockDirectoryInterface(ctrl)
	mockDirectory.EXPECT().GrantedRoles(gomock.Any(), userID, tenantID).Return(nil, dirErr)

	a := NewAuthorizer(
		mockDirectory,
		tracing.NewTracer(tracing.NewNoopConfig()),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	if _, err := a.Authorize(context.Background(), userID, tenantID, types.RoleAdmin, ActionRead, nil); !errors.Is(err, dirErr) {
		t.Errorf("expected directory error, got %v", err)
	}
}

func TestAuthorize_Matrix(t *testing.T) {
	ownTask := &types.Task{CreatedBy: userID, AssignedTo: "someone-else"}
	assignedTask := &types.Task{CreatedBy: "someone-else", AssignedTo: userID}
	foreignTask := &types.Task{CreatedBy: "someone-else", AssignedTo: "another"}

	testCases := []struct {
		name           string
		granted        directory.RoleSet
		activeRole     types.Role
		action         Action
		task           *types.Task
		expectedAllow  bool
		expectedReason string
	}{
		{
			name:          "admin bypasses ownership",
			granted:       directory.RoleSet{types.RoleAdmin: {}},
			activeRole:    types.RoleAdmin,
			action:        ActionDelete,
			task:          foreignTask,
			expectedAllow: true,
		},
		{
			name:          "creator creates",
			granted:       directory.RoleSet{types.RoleTaskCreator: {}},
			activeRole:    types.RoleTaskCreator,
			action:        ActionCreate,
			expectedAllow: true,
		},
		{
			name:           "receiver cannot create",
			granted:        directory.RoleSet{types.RoleTaskReceiver: {}},
			activeRole:     types.RoleTaskReceiver,
			action:         ActionCreate,
			expectedReason: ReasonRoleCannotCreate,
		},
		{
			name:          "creator updates own task",
			granted:       directory.RoleSet{types.RoleTaskCreator: {}},
			activeRole:    types.RoleTaskCreator,
			action:        ActionUpdate,
			task:          ownTask,
			expectedAllow: true,
		},
		{
			name:           "creator cannot update foreign task",
			granted:        directory.RoleSet{types.RoleTaskCreator: {}},
			activeRole:     types.RoleTaskCreator,
			action:         ActionUpdate,
			task:           foreignTask,
			expectedReason: ReasonNotYourTask,
		},
		{
			name:          "receiver updates assigned task",
			granted:       directory.RoleSet{types.RoleTaskReceiver: {}},
			activeRole:    types.RoleTaskReceiver,
			action:        ActionUpdate,
			task:          assignedTask,
			expectedAllow: true,
		},
		{
			name:           "receiver cannot update unassigned task",
			granted:        directory.RoleSet{types.RoleTaskReceiver: {}},
			activeRole:     types.RoleTaskReceiver,
			action:         ActionUpdate,
			task:           foreignTask,
			expectedReason: ReasonNotYourTask,
		},
		{
			name:           "receiver denied delete outright",
			granted:        directory.RoleSet{types.RoleTaskReceiver: {}},
			activeRole:     types.RoleTaskReceiver,
			action:         ActionDelete,
			task:           assignedTask,
			expectedReason: ReasonReceiverCannotDelete,
		},
		{
			name:          "creator deletes own task",
			granted:       directory.RoleSet{types.RoleTaskCreator: {}},
			activeRole:    types.RoleTaskCreator,
			action:        ActionDelete,
			task:          ownTask,
			expectedAllow: true,
		},
		{
			name:          "dual grant acts under declared creator role",
			granted:       directory.RoleSet{types.RoleTaskCreator: {}, types.RoleTaskReceiver: {}},
			activeRole:    types.RoleTaskCreator,
			action:        ActionCreate,
			expectedAllow: true,
		},
		{
			name:           "dual grant declared receiver still cannot create",
			granted:        directory.RoleSet{types.RoleTaskCreator: {}, types.RoleTaskReceiver: {}},
			activeRole:     types.RoleTaskReceiver,
			action:         ActionCreate,
			expectedReason: ReasonRoleCannotCreate,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := newAuthorizer(t, tc.granted)

			decision, err := a.Authorize(context.Background(), userID, tenantID, tc.activeRole, tc.action, tc.task)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if decision.Allowed != tc.expectedAllow {
				t.Errorf("expected allowed=%v, got %v (reason %q)", tc.expectedAllow, decision.Allowed, decision.Reason)
			}
			if !tc.expectedAllow && decision.Reason != tc.expectedReason {
				t.Errorf("expected reason %q, got %q", tc.expectedReason, decision.Reason)
			}
		})
	}
}

func TestScopeFilter(t *testing.T) {
	a := newAuthorizer(t, directory.RoleSet{})

	if f := a.ScopeFilter(userID, types.RoleAdmin); f.CreatedBy != "" || f.AssignedTo != "" {
		t.Errorf("admin scope should be unrestricted, got %+v", f)
	}
	if f := a.ScopeFilter(userID, types.RoleTaskCreator); f.CreatedBy != userID {
		t.Errorf("creator scope should filter by created_by, got %+v", f)
	}
	if f := a.ScopeFilter(userID, types.RoleTaskReceiver); f.AssignedTo != userID {
		t.Errorf("receiver scope should filter by assigned_to, got %+v", f)
	}
}

func TestCanView(t *testing.T) {
	task := &types.Task{CreatedBy: "creator-1", AssignedTo: "receiver-1"}

	a := newAuthorizer(t, directory.RoleSet{})

	if !a.CanView("anyone", types.RoleAdmin, task) {
		t.Error("admin should view any tenant task")
	}
	if !a.CanView("creator-1", types.RoleTaskCreator, task) {
		t.Error("creator should view own task")
	}
	if a.CanView("creator-2", types.RoleTaskCreator, task) {
		t.Error("creator should not view foreign task")
	}
	if !a.CanView("receiver-1", types.RoleTaskReceiver, task) {
		t.Error("receiver should view assigned task")
	}
	if a.CanView("receiver-2", types.RoleTaskReceiver, task) {
		t.Error("receiver should not view unassigned task")
	}
}
