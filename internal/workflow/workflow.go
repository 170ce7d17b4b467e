// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package workflow validates task status transitions against a fixed,
// role-gated transition table.
package workflow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/task-service/internal/types"
)

var (
	ErrOnlyAdminReopens      = errors.New("only admin can reopen completed tasks")
	ErrCancelledTerminal     = errors.New("cancelled tasks cannot change status")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrRoleNotAllowed        = errors.New("role not allowed for this transition")
	ErrReceiverCannotApprove = errors.New("approval requires the task creator or an admin")
	ErrBlockedReasonRequired = errors.New("blocked_reason is required when blocking a task")
)

// transitions maps current status to the next statuses reachable from it,
// and each next status to the roles allowed to drive that transition.
var transitions = map[types.TaskStatus]map[types.TaskStatus][]types.Role{
	types.StatusNotStarted: {
		types.StatusInProgress: {types.RoleTaskReceiver, types.RoleTaskCreator},
		types.StatusCancelled:  {types.RoleTaskCreator, types.RoleAdmin},
	},
	types.StatusInProgress: {
		types.StatusBlocked:       {types.RoleTaskReceiver, types.RoleTaskCreator},
		types.StatusWaitingReview: {types.RoleTaskReceiver, types.RoleTaskCreator},
	},
	types.StatusBlocked: {
		types.StatusInProgress: {types.RoleTaskReceiver},
	},
	types.StatusWaitingReview: {
		types.StatusDone:       {types.RoleTaskCreator},
		types.StatusInProgress: {types.RoleTaskCreator},
	},
	types.StatusDone:      {},
	types.StatusCancelled: {},
}

// ValidateTransition decides whether role may move a task from current to
// next, given the blocked reason carried by the same update. Guards run in a
// fixed order; the first failing guard determines the returned error.
//
// The caller is expected to have already checked tenant ownership and the
// soft-delete flag.
func ValidateTransition(current, next types.TaskStatus, role types.Role, blockedReason string) error {
	if current == next {
		return nil
	}

	// Completed tasks can only be reopened by an admin, to any status.
	if current == types.StatusDone {
		if role != types.RoleAdmin {
			return ErrOnlyAdminReopens
		}
		return validateBlockedReason(next, blockedReason)
	}

	// Cancelled is absolutely terminal, admins included.
	if current == types.StatusCancelled {
		return ErrCancelledTerminal
	}

	allowed, ok := transitions[current][next]
	if !ok {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, next)
	}

	// Admins bypass the role gate, not the table itself.
	if role != types.RoleAdmin && !containsRole(allowed, role) {
		return ErrRoleNotAllowed
	}

	// The assignee cannot self-certify their own work.
	if current == types.StatusWaitingReview && next == types.StatusDone && role == types.RoleTaskReceiver {
		return ErrReceiverCannotApprove
	}

	return validateBlockedReason(next, blockedReason)
}

func validateBlockedReason(next types.TaskStatus, blockedReason string) error {
	if next == types.StatusBlocked && strings.TrimSpace(blockedReason) == "" {
		return ErrBlockedReasonRequired
	}
	return nil
}

// ActionFor maps a successful transition to the audit action it records.
func ActionFor(current, next types.TaskStatus) types.HistoryAction {
	switch {
	case current == next:
		return types.ActionUpdated
	case next == types.StatusWaitingReview:
		return types.ActionSubmitted
	case current == types.StatusWaitingReview && next == types.StatusDone:
		return types.ActionApproved
	case current == types.StatusWaitingReview && next == types.StatusInProgress:
		return types.ActionRejected
	default:
		return types.ActionUpdated
	}
}

func containsRole(roles []types.Role, role types.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
