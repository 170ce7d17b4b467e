// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package task

import (
	"fmt"
)

type ErrorCode string

// The five failure classes of the API. VersionConflict is the only one a
// client should retry automatically, so it must stay distinguishable from
// Validation.
const (
	CodeValidation        ErrorCode = "validation_error"
	CodeDenied            ErrorCode = "authorization_denied"
	CodeNotFound          ErrorCode = "not_found"
	CodeInvalidTransition ErrorCode = "invalid_transition"
	CodeVersionConflict   ErrorCode = "version_conflict"
)

type Error struct {
	Code    ErrorCode
	Message string
	Field   string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrNotFound also covers cross-tenant lookups: a resource outside the
// caller's tenant is reported as absent, never as forbidden.
var ErrNotFound = &Error{Code: CodeNotFound, Message: "task not found"}

var ErrVersionConflict = &Error{Code: CodeVersionConflict, Message: "task was modified concurrently, re-fetch and retry"}

func NewValidationError(field, message string) *Error {
	return &Error{Code: CodeValidation, Message: message, Field: field}
}

func NewDeniedError(reason string) *Error {
	return &Error{Code: CodeDenied, Message: reason}
}

func NewTransitionError(err error) *Error {
	return &Error{Code: CodeInvalidTransition, Message: err.Error()}
}
