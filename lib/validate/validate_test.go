// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package validate

import "testing"

func TestEmailAcceptsMinimalShape(t *testing.T) {
	if !Email("a@b.co") {
		t.Error("a@b.co should be a valid email")
	}
}

func TestEmailRejectsMissingTLD(t *testing.T) {
	if Email("a@b") {
		t.Error("a@b should be rejected (no TLD)")
	}
}

func TestEmailRejectsMissingAt(t *testing.T) {
	if Email("a.b.co") {
		t.Error("a.b.co should be rejected (no @)")
	}
	if Email("a @b.co") {
		t.Error("emails containing spaces should be rejected")
	}
}

func TestPhoneStripsFormattingCharacters(t *testing.T) {
	if !Phone("+91 (98765) 432-10") {
		t.Error("formatted number with 10 digits should pass")
	}
	if !Phone("9876543210") {
		t.Error("bare 10-digit number should pass")
	}
}

func TestPhoneRejectsShortNumbers(t *testing.T) {
	if Phone("98765") {
		t.Error("5-digit number should fail")
	}
	if Phone("987-654") {
		t.Error("formatted number with too few digits should fail")
	}
}

func TestPhoneRejectsLetters(t *testing.T) {
	if Phone("98765abcde") {
		t.Error("number containing letters should fail")
	}
}

func TestPasswordPolicy(t *testing.T) {
	if !Password("Abcdefg1") {
		t.Error("Abcdefg1 meets the policy and should pass")
	}
	if Password("abcdefg1") {
		t.Error("password with no uppercase should fail")
	}
	if Password("Abcdefgh") {
		t.Error("password with no digit should fail")
	}
	if Password("Abc1") {
		t.Error("password shorter than 8 characters should fail")
	}
}

func TestFullNameMinimumLength(t *testing.T) {
	if !FullName("Jo") {
		t.Error("2-character name should pass")
	}
	if FullName(" J ") {
		t.Error("name that trims to 1 character should fail")
	}
	if FullName("   ") {
		t.Error("whitespace-only name should fail")
	}
}

func TestRegisterFormCollectsEveryFailure(t *testing.T) {
	failures := RegisterForm("J", "not-an-email", "123", "weak", "different")

	if len(failures) != 5 {
		t.Fatalf("got %d failures, want 5: %v", len(failures), failures)
	}

	seen := make(map[string]bool)
	for _, failure := range failures {
		seen[failure.Field] = true
	}
	for _, field := range []string{"full_name", "email", "phone", "password", "confirm_password"} {
		if !seen[field] {
			t.Errorf("missing failure for field %q", field)
		}
	}
}

func TestRegisterFormValidInput(t *testing.T) {
	failures := RegisterForm("Priya Sharma", "priya@example.com", "+91 98765 43210", "Abcdefg1", "Abcdefg1")
	if len(failures) != 0 {
		t.Errorf("valid input produced failures: %v", failures)
	}
}

func TestLoginFormRequiresBothFields(t *testing.T) {
	failures := LoginForm("", "")
	if len(failures) != 2 {
		t.Fatalf("got %d failures, want 2: %v", len(failures), failures)
	}
}

func TestLoginFormShortPassword(t *testing.T) {
	failures := LoginForm("a@b.co", "short")
	if len(failures) != 1 || failures[0].Field != "password" {
		t.Fatalf("want single password failure, got %v", failures)
	}
}
