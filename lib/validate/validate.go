// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

// Package validate implements the client-side field checks run before
// any network call: email shape, phone digit count, password strength,
// and name length. All checks are pure and independent — callers run
// every check and collect every failing field rather than stopping at
// the first failure, so the user sees all problems at once.
package validate

import (
	"regexp"
	"strings"
	"unicode"
)

// emailPattern accepts the minimal local@domain.tld shape. The backend
// is the authority on deliverability; this only catches obvious typos
// like a missing @ or TLD before a request is wasted.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError reports a single failing field with its user-facing
// message. Field names match the form input they belong to.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Email reports whether the address has a local@domain.tld shape.
func Email(address string) bool {
	return emailPattern.MatchString(address)
}

// Phone reports whether the number contains at least 10 digits after
// stripping spaces, dashes, parentheses, and a leading plus. Anything
// else (letters, other punctuation) fails.
func Phone(number string) bool {
	digits := 0
	for index, character := range number {
		switch {
		case unicode.IsDigit(character):
			digits++
		case character == ' ' || character == '-' || character == '(' || character == ')':
		case character == '+' && index == 0:
		default:
			return false
		}
	}
	return digits >= 10
}

// Password reports whether the password meets the registration policy:
// at least 8 characters with at least one uppercase letter, one
// lowercase letter, and one digit.
func Password(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, character := range password {
		switch {
		case unicode.IsUpper(character):
			hasUpper = true
		case unicode.IsLower(character):
			hasLower = true
		case unicode.IsDigit(character):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

// FullName reports whether the name has at least 2 characters after
// trimming surrounding whitespace.
func FullName(name string) bool {
	return len(strings.TrimSpace(name)) >= 2
}

// LoginForm runs the login field checks and returns every failure.
func LoginForm(email, password string) []FieldError {
	var failures []FieldError
	if strings.TrimSpace(email) == "" {
		failures = append(failures, FieldError{Field: "email", Message: "Email is required"})
	} else if !Email(email) {
		failures = append(failures, FieldError{Field: "email", Message: "Email is invalid"})
	}
	if password == "" {
		failures = append(failures, FieldError{Field: "password", Message: "Password is required"})
	} else if len(password) < 8 {
		failures = append(failures, FieldError{Field: "password", Message: "Password must be at least 8 characters"})
	}
	return failures
}

// RegisterForm runs the registration field checks and returns every
// failure. Checks are independent: a bad email does not suppress the
// phone or password messages.
func RegisterForm(fullName, email, phone, password, confirmPassword string) []FieldError {
	var failures []FieldError
	if !FullName(fullName) {
		failures = append(failures, FieldError{Field: "full_name", Message: "Full name must be at least 2 characters"})
	}
	if strings.TrimSpace(email) == "" || !Email(email) {
		failures = append(failures, FieldError{Field: "email", Message: "Please enter a valid email address"})
	}
	if strings.TrimSpace(phone) == "" || !Phone(phone) {
		failures = append(failures, FieldError{Field: "phone", Message: "Please enter a valid phone number"})
	}
	if !Password(password) {
		failures = append(failures, FieldError{Field: "password", Message: "Password must be at least 8 characters with uppercase, lowercase, and number"})
	}
	if confirmPassword != password {
		failures = append(failures, FieldError{Field: "confirm_password", Message: "Passwords do not match"})
	}
	return failures
}
