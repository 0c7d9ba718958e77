// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import (
	"errors"
	"testing"

	"github.com/goticket/goticket/lib/api"
)

// formFlow returns a flow advanced into the form state with a
// complete draft.
func formFlow() *Flow {
	flow := NewFlow()
	flow.BookClicked(true)
	flow.draft = Draft{
		FullName: "Priya Sharma",
		Email:    "priya@example.com",
		Phone:    "+91 98765 43210",
	}
	return flow
}

func TestQuantityClamping(t *testing.T) {
	flow := NewFlow()

	flow.SetQuantity(-3)
	if flow.Quantity() != 1 {
		t.Errorf("SetQuantity(-3) → %d, want 1", flow.Quantity())
	}
	flow.SetQuantity(99)
	if flow.Quantity() != 5 {
		t.Errorf("SetQuantity(99) → %d, want 5", flow.Quantity())
	}
	flow.SetQuantity(3)
	if flow.Quantity() != 3 {
		t.Errorf("SetQuantity(3) → %d, want 3", flow.Quantity())
	}
}

func TestIncrementDecrementAreNoOpsAtBounds(t *testing.T) {
	flow := NewFlow()

	flow.DecrementQuantity()
	if flow.Quantity() != 1 {
		t.Errorf("decrement below 1 → %d, want 1", flow.Quantity())
	}

	for range 10 {
		flow.IncrementQuantity()
	}
	if flow.Quantity() != 5 {
		t.Errorf("increment above 5 → %d, want 5", flow.Quantity())
	}
}

func TestTotalComputedPerCall(t *testing.T) {
	flow := NewFlow()
	flow.SetQuantity(3)
	if total := flow.Total(750); total != 2250 {
		t.Errorf("Total(750) with quantity 3 = %v, want 2250", total)
	}
	flow.SetQuantity(5)
	if total := flow.Total(750); total != 3750 {
		t.Errorf("Total(750) with quantity 5 = %v, want 3750", total)
	}
}

func TestBookClickedLoggedOutPromptsLogin(t *testing.T) {
	flow := NewFlow()
	flow.BookClicked(false)
	if flow.State() != StateLoginRequired {
		t.Errorf("state = %v, want login_required", flow.State())
	}
}

func TestBookClickedLoggedInOpensForm(t *testing.T) {
	flow := NewFlow()
	flow.BookClicked(true)
	if flow.State() != StateForm {
		t.Errorf("state = %v, want form", flow.State())
	}
}

func TestLoginPromptBackAndReClick(t *testing.T) {
	flow := NewFlow()
	flow.BookClicked(false)

	flow.Back()
	if flow.State() != StateIdle {
		t.Errorf("state after back = %v, want idle", flow.State())
	}

	// User logged in elsewhere, clicks Book Now again.
	flow.BookClicked(true)
	if flow.State() != StateForm {
		t.Errorf("state after re-click = %v, want form", flow.State())
	}
}

func TestCancelClearsErrorAndDraft(t *testing.T) {
	flow := formFlow()
	flow.draft.FullName = ""
	flow.Submit() // Sets the required-fields error.
	if flow.ErrorMessage() == "" {
		t.Fatal("expected error before cancel")
	}

	flow.Cancel()
	if flow.State() != StateIdle {
		t.Errorf("state = %v, want idle", flow.State())
	}
	if flow.ErrorMessage() != "" {
		t.Errorf("error = %q, want cleared", flow.ErrorMessage())
	}
	if *flow.Draft() != (Draft{}) {
		t.Errorf("draft = %+v, want discarded", *flow.Draft())
	}
}

func TestSubmitMissingRequiredFields(t *testing.T) {
	flow := NewFlow()
	flow.BookClicked(true)

	if flow.Submit() {
		t.Fatal("Submit with empty fields returned true — a request would have been sent")
	}
	if flow.State() != StateForm {
		t.Errorf("state = %v, want form", flow.State())
	}
	if flow.ErrorMessage() != MessageRequiredFields {
		t.Errorf("error = %q, want %q", flow.ErrorMessage(), MessageRequiredFields)
	}
}

func TestSubmitValidFieldsEntersSubmitting(t *testing.T) {
	flow := formFlow()
	if !flow.Submit() {
		t.Fatal("Submit with complete draft returned false")
	}
	if flow.State() != StateSubmitting {
		t.Errorf("state = %v, want submitting", flow.State())
	}

	// Strict serialization: a second submit while in flight is a no-op.
	if flow.Submit() {
		t.Error("second Submit while submitting returned true")
	}
}

func TestSubmitAcceptedIsTerminal(t *testing.T) {
	flow := formFlow()
	flow.Submit()
	flow.SubmitAccepted()
	if flow.State() != StateSuccess {
		t.Errorf("state = %v, want success", flow.State())
	}

	// No transition leaves success.
	flow.BookClicked(true)
	flow.Cancel()
	flow.Submit()
	if flow.State() != StateSuccess {
		t.Errorf("state left success via %v", flow.State())
	}
}

func TestSubmitRejectedReturnsToFormWithFieldsRetained(t *testing.T) {
	flow := formFlow()
	flow.SetQuantity(4)
	flow.Submit()
	flow.SubmitRejected(&api.APIError{StatusCode: 409, Message: "You are already registered for this event"})

	if flow.State() != StateForm {
		t.Errorf("state = %v, want form", flow.State())
	}
	if flow.ErrorMessage() != MessageAlreadyRegistered {
		t.Errorf("error = %q, want %q", flow.ErrorMessage(), MessageAlreadyRegistered)
	}
	if flow.Quantity() != 4 {
		t.Errorf("quantity = %d, want 4 (retained)", flow.Quantity())
	}
	if flow.Draft().FullName != "Priya Sharma" {
		t.Error("draft fields not retained after rejection")
	}
}

func TestClassifyError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"unauthorized status", &api.APIError{StatusCode: 401, Message: "Invalid or expired token"}, MessageLoginFirst},
		{"token substring", &api.APIError{StatusCode: 400, Message: "missing token"}, MessageLoginFirst},
		{"already registered", &api.APIError{StatusCode: 409, Message: "You are already registered for this event"}, MessageAlreadyRegistered},
		{"capacity", &api.APIError{StatusCode: 409, Message: "This event has reached its maximum capacity"}, MessageFullyBooked},
		{"full substring", &api.APIError{StatusCode: 400, Message: "Event full"}, MessageFullyBooked},
		{"unclassified api error", &api.APIError{StatusCode: 500, Message: "Unable to create registration"}, "Unable to create registration"},
		{"transport error", errors.New("dial tcp: connection refused"), MessageGenericFailure},
	}
	for _, testCase := range cases {
		if got := ClassifyError(testCase.err); got != testCase.want {
			t.Errorf("%s: ClassifyError = %q, want %q", testCase.name, got, testCase.want)
		}
	}
}

func TestComposeNotes(t *testing.T) {
	flow := formFlow()
	flow.SetQuantity(2)
	flow.draft.Notes = "Vegetarian meals please"

	got := flow.ComposeNotes(750)
	want := "Name: Priya Sharma | Email: priya@example.com | Phone: +91 98765 43210 | Tickets: 2 | Total: ₹1,500 | Notes: Vegetarian meals please"
	if got != want {
		t.Errorf("ComposeNotes:\n got %q\nwant %q", got, want)
	}
}

func TestComposeNotesOmitsEmptyNotes(t *testing.T) {
	flow := formFlow()
	got := flow.ComposeNotes(100)
	want := "Name: Priya Sharma | Email: priya@example.com | Phone: +91 98765 43210 | Tickets: 1 | Total: ₹100"
	if got != want {
		t.Errorf("ComposeNotes:\n got %q\nwant %q", got, want)
	}
}
