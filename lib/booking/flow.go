// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

// Package booking drives a single event page through the ticket-
// purchase sequence. The flow is one explicit enumerated state plus a
// draft payload; every user action goes through a transition method
// that validates the move, so impossible combinations (success and
// login-prompt at once) cannot be represented at all. Illegal
// transitions are silent no-ops.
//
// The flow itself never talks to the network: the caller issues the
// registration request between Submit and SubmitAccepted/
// SubmitRejected. That keeps the machine pure and directly testable.
package booking

import (
	"errors"
	"strconv"
	"strings"

	"github.com/goticket/goticket/lib/api"
	"github.com/goticket/goticket/lib/money"
)

// State identifies the booking flow's current view. States are
// mutually exclusive; exactly one is active at any time.
type State int

const (
	// StateIdle shows the price and the Book Now control.
	StateIdle State = iota
	// StateLoginRequired prompts the user to log in before booking.
	StateLoginRequired
	// StateForm collects attendee details and ticket quantity.
	StateForm
	// StateSubmitting is active while the registration request is in
	// flight. The submit control is disabled, so a second submit
	// cannot be issued.
	StateSubmitting
	// StateSuccess is terminal for this flow instance.
	StateSuccess
)

func (state State) String() string {
	switch state {
	case StateIdle:
		return "idle"
	case StateLoginRequired:
		return "login_required"
	case StateForm:
		return "form"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Ticket quantity bounds. Out-of-range requests clamp rather than
// error.
const (
	MinQuantity = 1
	MaxQuantity = 5
)

// User-facing copy for the failure classes.
const (
	MessageRequiredFields    = "Please fill in all required fields."
	MessageLoginFirst        = "Please log in first to book this event."
	MessageAlreadyRegistered = "You are already registered for this event."
	MessageFullyBooked       = "Sorry, this event is fully booked."
	MessageGenericFailure    = "Booking failed. Please try again."
)

// Draft is the transient form data collected before submitting a
// registration. It lives only inside a Flow and is discarded on
// cancel or success — never persisted.
type Draft struct {
	FullName string
	Email    string
	Phone    string
	Notes    string
}

// Flow is the booking state machine for one event page. Not safe for
// concurrent use; a flow belongs to a single UI instance.
type Flow struct {
	state        State
	draft        Draft
	quantity     int
	errorMessage string
}

// NewFlow creates a flow in the idle state with quantity 1.
func NewFlow() *Flow {
	return &Flow{state: StateIdle, quantity: MinQuantity}
}

// State returns the current view state.
func (flow *Flow) State() State { return flow.state }

// Draft returns the form draft for editing. The pointer stays valid
// across transitions within the form state.
func (flow *Flow) Draft() *Draft { return &flow.draft }

// Quantity returns the current ticket count, always within
// [MinQuantity, MaxQuantity].
func (flow *Flow) Quantity() int { return flow.quantity }

// ErrorMessage returns the message attached to the form state, or ""
// when there is none.
func (flow *Flow) ErrorMessage() string { return flow.errorMessage }

// Total returns unitPrice × quantity. Computed freshly on every call;
// nothing is cached across quantity changes.
func (flow *Flow) Total(unitPrice float64) float64 {
	return unitPrice * float64(flow.quantity)
}

// BookClicked handles the Book Now control. From idle it opens the
// form when logged in and the login prompt otherwise. Clicking again
// from the login prompt (after the user logged in elsewhere) moves to
// the form. A no-op in any other state.
func (flow *Flow) BookClicked(loggedIn bool) {
	switch flow.state {
	case StateIdle, StateLoginRequired:
		if loggedIn {
			flow.state = StateForm
		} else {
			flow.state = StateLoginRequired
		}
	}
}

// Back dismisses the login prompt, returning to idle.
func (flow *Flow) Back() {
	if flow.state == StateLoginRequired {
		flow.state = StateIdle
	}
}

// Cancel abandons the form: back to idle with the error cleared and
// the draft discarded.
func (flow *Flow) Cancel() {
	if flow.state != StateForm {
		return
	}
	flow.state = StateIdle
	flow.errorMessage = ""
	flow.draft = Draft{}
	flow.quantity = MinQuantity
}

// SetQuantity sets the ticket count, clamped to [MinQuantity,
// MaxQuantity].
func (flow *Flow) SetQuantity(quantity int) {
	if quantity < MinQuantity {
		quantity = MinQuantity
	}
	if quantity > MaxQuantity {
		quantity = MaxQuantity
	}
	flow.quantity = quantity
}

// IncrementQuantity adds one ticket; a no-op at MaxQuantity.
func (flow *Flow) IncrementQuantity() { flow.SetQuantity(flow.quantity + 1) }

// DecrementQuantity removes one ticket; a no-op at MinQuantity.
func (flow *Flow) DecrementQuantity() { flow.SetQuantity(flow.quantity - 1) }

// Submit attempts to submit the form. Full name, email, and phone are
// mandatory; if any is empty the flow stays in the form state with
// MessageRequiredFields attached and returns false — the request must
// never be sent. On success the flow enters submitting and returns
// true; the caller then issues the registration request and reports
// the outcome via SubmitAccepted or SubmitRejected.
func (flow *Flow) Submit() bool {
	if flow.state != StateForm {
		return false
	}

	flow.errorMessage = ""
	if strings.TrimSpace(flow.draft.FullName) == "" ||
		strings.TrimSpace(flow.draft.Email) == "" ||
		strings.TrimSpace(flow.draft.Phone) == "" {
		flow.errorMessage = MessageRequiredFields
		return false
	}

	flow.state = StateSubmitting
	return true
}

// SubmitAccepted records backend acceptance: the flow reaches its
// terminal success state and the draft is discarded.
func (flow *Flow) SubmitAccepted() {
	if flow.state != StateSubmitting {
		return
	}
	flow.state = StateSuccess
	flow.draft = Draft{}
}

// SubmitRejected records backend rejection: back to the form with a
// human-readable message. Quantity and field values are retained so
// the user can correct and retry.
func (flow *Flow) SubmitRejected(err error) {
	if flow.state != StateSubmitting {
		return
	}
	flow.state = StateForm
	flow.errorMessage = ClassifyError(err)
}

// ComposeNotes builds the free-text summary sent as the registration's
// notes field: name, email, phone, ticket count, computed total, and
// the optional notes, pipe-separated. The backend receives no
// structured booking fields beyond the event id and this note.
func (flow *Flow) ComposeNotes(unitPrice float64) string {
	parts := []string{
		"Name: " + flow.draft.FullName,
		"Email: " + flow.draft.Email,
		"Phone: " + flow.draft.Phone,
		"Tickets: " + strconv.Itoa(flow.quantity),
		"Total: " + money.FormatINR(flow.Total(unitPrice)),
	}
	if flow.draft.Notes != "" {
		parts = append(parts, "Notes: "+flow.draft.Notes)
	}
	return strings.Join(parts, " | ")
}

// ClassifyError maps a backend rejection to user-facing copy. Status
// codes are checked first via the api predicates; the substring
// heuristics below them exist because the reference backend reports
// everything as free text. Unclassified API errors fall back to the
// raw backend message; transport failures to MessageGenericFailure.
func ClassifyError(err error) string {
	switch {
	case api.IsUnauthorized(err):
		return MessageLoginFirst
	case api.IsAlreadyRegistered(err):
		return MessageAlreadyRegistered
	case api.IsCapacityFull(err):
		return MessageFullyBooked
	}

	var apiError *api.APIError
	if errors.As(err, &apiError) && apiError.Message != "" {
		return apiError.Message
	}
	return MessageGenericFailure
}
