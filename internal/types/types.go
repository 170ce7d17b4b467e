// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type TenantStatus string

const (
	TenantActive    TenantStatus = "active"
	TenantSuspended TenantStatus = "suspended"
)

// Role is a global catalog entry; membership is tenant-scoped via RoleGrant.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleTaskCreator  Role = "TASK_CREATOR"
	RoleTaskReceiver Role = "TASK_RECEIVER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTaskCreator, RoleTaskReceiver:
		return true
	}
	return false
}

type TaskStatus string

const (
	StatusNotStarted    TaskStatus = "NOT_STARTED"
	StatusInProgress    TaskStatus = "IN_PROGRESS"
	StatusBlocked       TaskStatus = "BLOCKED"
	StatusWaitingReview TaskStatus = "WAITING_REVIEW"
	StatusDone          TaskStatus = "DONE"
	StatusCancelled     TaskStatus = "CANCELLED"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusBlocked, StatusWaitingReview, StatusDone, StatusCancelled:
		return true
	}
	return false
}

type Priority string

const (
	PriorityCritical Priority = "P1"
	PriorityHigh     Priority = "P2"
	PriorityNormal   Priority = "P3"
	PriorityLow      Priority = "P4"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityNormal, PriorityLow:
		return true
	}
	return false
}

type HistoryAction string

const (
	ActionCreated     HistoryAction = "CREATED"
	ActionUpdated     HistoryAction = "UPDATED"
	ActionSoftDeleted HistoryAction = "SOFT_DELETED"
	ActionSubmitted   HistoryAction = "SUBMITTED"
	ActionApproved    HistoryAction = "APPROVED"
	ActionRejected    HistoryAction = "REJECTED"
)

type AttachmentType string

const (
	AttachmentRequirement AttachmentType = "REQUIREMENT"
	AttachmentSubmission  AttachmentType = "SUBMISSION"
)

func (t AttachmentType) Valid() bool {
	return t == AttachmentRequirement || t == AttachmentSubmission
}

type Tenant struct {
	ID        string       `db:"id"`
	Name      string       `db:"name"`
	Status    TenantStatus `db:"status"`
	CreatedAt time.Time    `db:"created_at"`
}

// User is tenant-scoped: the same human with memberships in two tenants is
// two independent User records.
type User struct {
	ID        string    `db:"id"`
	TenantID  string    `db:"tenant_id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// RoleGrant is a (user, tenant, role) triple, unique per combination.
type RoleGrant struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	TenantID  string    `db:"tenant_id"`
	Role      Role      `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

type Task struct {
	ID            string     `db:"id"`
	TenantID      string     `db:"tenant_id"`
	Title         string     `db:"title"`
	Description   string     `db:"description"`
	CreatedBy     string     `db:"created_by"`
	AssignedTo    string     `db:"assigned_to"`
	Status        TaskStatus `db:"status"`
	Priority      Priority   `db:"priority"`
	BlockedReason *string    `db:"blocked_reason"`
	DueDate       *time.Time `db:"due_date"`
	Version       int64      `db:"version"`
	IsDeleted     bool       `db:"is_deleted"`
	DeletedAt     *time.Time `db:"deleted_at"`
	DeletedBy     *string    `db:"deleted_by"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	UpdatedBy     *string    `db:"updated_by"`
}

// TaskHistory is a write-once snapshot of a task at the moment of an action.
// The storage layer exposes insert and select only for this entity.
type TaskHistory struct {
	ID          string        `db:"id"`
	TenantID    string        `db:"tenant_id"`
	TaskID      string        `db:"task_id"`
	Action      HistoryAction `db:"action"`
	PerformedBy *string       `db:"performed_by"`
	Timestamp   time.Time     `db:"timestamp"`
	Title       string        `db:"title"`
	Description string        `db:"description"`
	Status      TaskStatus    `db:"status"`
	Priority    Priority      `db:"priority"`
	DueDate     *time.Time    `db:"due_date"`
}

type TaskAttachment struct {
	ID           string         `db:"id"`
	TenantID     string         `db:"tenant_id"`
	TaskID       string         `db:"task_id"`
	UploadedBy   *string        `db:"uploaded_by"`
	FileRef      string         `db:"file_ref"`
	OriginalName string         `db:"original_name"`
	Type         AttachmentType `db:"type"`
	UploadedAt   time.Time      `db:"uploaded_at"`
}
