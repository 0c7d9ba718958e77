// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"

	"github.com/goticket/goticket/lib/api"
)

// ErrorCategory classifies command errors so scripts and wrappers can
// make programmatic decisions (retry, fix input, log in again) without
// parsing error message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// missing required flags, wrong argument count, unparseable values.
	// The caller should fix the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced resource does not exist:
	// unknown event ID, missing registration. Retrying with the same
	// parameters will not help.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryForbidden indicates the caller lacks permission or is not
	// logged in. The caller should authenticate and retry.
	CategoryForbidden ErrorCategory = "forbidden"

	// CategoryConflict indicates the operation conflicts with existing
	// state: already registered, event at capacity.
	CategoryConflict ErrorCategory = "conflict"

	// CategoryTransient indicates a temporary failure: network error,
	// timeout, backend unavailable. The caller should back off and retry.
	CategoryTransient ErrorCategory = "transient"

	// CategoryInternal indicates an unexpected error: bugs, I/O
	// failures, responses the client could not interpret. The caller
	// should report the error rather than retry.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by command handlers. main
// maps the category to an exit code, so scripts can branch on $? while
// humans read the message.
//
// ToolError wraps an inner error, preserving the full error chain for
// debugging while adding category metadata. Use the category-specific
// constructors (Validation, NotFound, etc.) rather than constructing
// ToolError directly.
type ToolError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error

	// Hint is an optional next-step suggestion shown under the error.
	Hint string
}

// WithHint attaches a recovery suggestion and returns the error for
// chaining.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// Error returns the underlying error message. The category is not
// included in the string — it travels through the exit code instead.
func (e *ToolError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error, allowing errors.Is and
// errors.As to walk the full chain through the ToolError wrapper.
func (e *ToolError) Unwrap() error { return e.Err }

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced resource does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Forbidden creates a forbidden error: the caller lacks permission.
func Forbidden(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryForbidden, Err: fmt.Errorf(format, args...)}
}

// Conflict creates a conflict error: the operation conflicts with existing state.
func Conflict(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryConflict, Err: fmt.Errorf(format, args...)}
}

// Transient creates a transient error: a temporary failure that may succeed on retry.
func Transient(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryTransient, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// FromAPIError wraps a backend error with the matching category. The
// 4xx classes map directly; everything else — transport failures,
// 5xx — is transient from the caller's point of view.
func FromAPIError(err error) *ToolError {
	var toolError *ToolError
	if errors.As(err, &toolError) {
		return toolError
	}

	switch {
	case api.IsUnauthorized(err):
		return &ToolError{Category: CategoryForbidden, Err: err}
	case api.IsNotFound(err):
		return &ToolError{Category: CategoryNotFound, Err: err}
	case api.IsConflict(err):
		return &ToolError{Category: CategoryConflict, Err: err}
	}

	var apiError *api.APIError
	if errors.As(err, &apiError) && apiError.StatusCode >= 400 && apiError.StatusCode < 500 {
		return &ToolError{Category: CategoryValidation, Err: err}
	}
	return &ToolError{Category: CategoryTransient, Err: err}
}

// ExitCodeFor maps an error to the process exit code. ExitError wins;
// categorized errors get stable codes; everything else is 1.
func ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	var exitError *ExitError
	if errors.As(err, &exitError) {
		return exitError.ExitCode()
	}

	var toolError *ToolError
	if errors.As(err, &toolError) {
		switch toolError.Category {
		case CategoryValidation:
			return 2
		case CategoryNotFound:
			return 3
		case CategoryForbidden:
			return 4
		case CategoryConflict:
			return 5
		case CategoryTransient:
			return 6
		case CategoryInternal:
			return 7
		}
	}
	return 1
}
