// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/goticket/goticket/lib/api"
)

func TestToolErrorUnwrap(t *testing.T) {
	inner := errors.New("event not found")
	wrapped := NotFound("lookup failed: %w", inner)

	if !errors.Is(wrapped, inner) {
		t.Fatal("errors.Is does not reach the wrapped error")
	}
	if wrapped.Category != CategoryNotFound {
		t.Fatalf("category = %q, want %q", wrapped.Category, CategoryNotFound)
	}
}

func TestFromAPIErrorMapsStatusCodes(t *testing.T) {
	cases := []struct {
		err      error
		category ErrorCategory
	}{
		{&api.APIError{StatusCode: 401, Message: "Invalid or expired token"}, CategoryForbidden},
		{&api.APIError{StatusCode: 404, Message: "Event not found"}, CategoryNotFound},
		{&api.APIError{StatusCode: 409, Message: "You are already registered for this event"}, CategoryConflict},
		{&api.APIError{StatusCode: 400, Message: "Missing required fields"}, CategoryValidation},
		{&api.APIError{StatusCode: 500, Message: "Internal server error"}, CategoryTransient},
		{fmt.Errorf("dial tcp: connection refused"), CategoryTransient},
	}

	for _, testCase := range cases {
		mapped := FromAPIError(testCase.err)
		if mapped.Category != testCase.category {
			t.Errorf("FromAPIError(%v) category = %q, want %q",
				testCase.err, mapped.Category, testCase.category)
		}
	}
}

func TestFromAPIErrorKeepsExistingToolError(t *testing.T) {
	original := Validation("event id is required")
	if mapped := FromAPIError(original); mapped != original {
		t.Fatal("FromAPIError rewrapped an existing ToolError")
	}
}

func TestExitCodeFor(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{nil, 0},
		{errors.New("plain"), 1},
		{Validation("bad input"), 2},
		{NotFound("missing"), 3},
		{Forbidden("log in first"), 4},
		{Conflict("already registered"), 5},
		{Transient("backend down"), 6},
		{Internal("bug"), 7},
		{&ExitError{Code: 42}, 42},
	}

	for _, testCase := range cases {
		if got := ExitCodeFor(testCase.err); got != testCase.code {
			t.Errorf("ExitCodeFor(%v) = %d, want %d", testCase.err, got, testCase.code)
		}
	}
}
