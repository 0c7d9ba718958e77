// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"fmt"
	"strings"
)

// APIError represents a non-2xx response from the GoTicket backend.
// The backend returns JSON error bodies with "message" and "error"
// string fields; Message carries whichever was present (message
// preferred), or a generic fallback when the body had neither.
type APIError struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Message is the human-readable description from the backend.
	Message string
}

func (err *APIError) Error() string {
	return fmt.Sprintf("goticket: HTTP %d: %s", err.StatusCode, err.Message)
}

// IsUnauthorized reports whether err is an authentication failure:
// a 401 response, or a backend message mentioning an invalid token.
// The message check exists because the reference backend occasionally
// reports token problems under other status codes.
func IsUnauthorized(err error) bool {
	var apiError *APIError
	if !errors.As(err, &apiError) {
		return false
	}
	if apiError.StatusCode == 401 {
		return true
	}
	message := strings.ToLower(apiError.Message)
	return strings.Contains(message, "unauthorized") || strings.Contains(message, "token")
}

// IsNotFound reports whether err is a backend 404 Not Found response.
func IsNotFound(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 404
}

// IsConflict reports whether err is a backend 409 Conflict response.
func IsConflict(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 409
}

// IsAlreadyRegistered reports whether err is the duplicate-registration
// conflict. The backend signals this with a 409 whose message says
// "already registered"; the substring check distinguishes it from the
// capacity conflict which shares the status code.
func IsAlreadyRegistered(err error) bool {
	var apiError *APIError
	if !errors.As(err, &apiError) {
		return false
	}
	return strings.Contains(strings.ToLower(apiError.Message), "already registered")
}

// IsCapacityFull reports whether err is the event-at-capacity
// conflict. Matched on the backend's message ("maximum capacity",
// "Event full") rather than the status code alone, since 409 also
// covers duplicate registrations.
func IsCapacityFull(err error) bool {
	var apiError *APIError
	if !errors.As(err, &apiError) {
		return false
	}
	message := strings.ToLower(apiError.Message)
	return strings.Contains(message, "full") || strings.Contains(message, "capacity")
}
