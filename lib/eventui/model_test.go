// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package eventui

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/goticket/goticket/lib/api"
	"github.com/goticket/goticket/lib/booking"
)

// testSource wraps DemoSource with a controllable login state so the
// login-required path can be exercised.
type testSource struct {
	*DemoSource
	loggedIn bool
}

func (source *testSource) LoggedIn() bool { return source.loggedIn }

func (source *testSource) Login(ctx context.Context, email, password string) error {
	source.loggedIn = true
	return nil
}

func intPointer(value int) *int { return &value }

func newTestModel(loggedIn bool) (*Model, *testSource) {
	events := []api.Event{
		{ID: "ev-1", Title: "Aurora Beats Festival", Category: "Music",
			EventDate: "2026-10-03T18:00:00+05:30", Location: "Mumbai",
			Price: 750, Capacity: intPointer(100)},
		{ID: "ev-2", Title: "GopherMeet Pune", Category: "Tech",
			EventDate: "2026-11-14T09:00:00+05:30", Location: "Pune",
			Price: 0, Capacity: nil},
	}
	source := &testSource{
		DemoSource: NewDemoSource(events, map[string]int{"ev-1": 40}),
		loggedIn:   loggedIn,
	}
	model := New(source)
	model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model.Update(eventsLoadedMsg{events: events})
	return model, source
}

func pressKey(t *testing.T, model *Model, message tea.KeyMsg) tea.Cmd {
	t.Helper()
	_, command := model.Update(message)
	return command
}

func pressRune(t *testing.T, model *Model, character rune) tea.Cmd {
	t.Helper()
	return pressKey(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}})
}

// runCommand executes a command synchronously and feeds the result
// back, the way the bubbletea runtime would.
func runCommand(t *testing.T, model *Model, command tea.Cmd) {
	t.Helper()
	if command == nil {
		t.Fatal("expected a command, got nil")
	}
	deliverMessage(model, command())
}

func deliverMessage(model *Model, message tea.Msg) {
	if message == nil {
		return
	}
	if batch, ok := message.(tea.BatchMsg); ok {
		for _, entry := range batch {
			if entry != nil {
				deliverMessage(model, entry())
			}
		}
		return
	}
	_, command := model.Update(message)
	// Follow chained commands, but not the spinner's self-sustaining
	// tick.
	if _, isTick := message.(spinner.TickMsg); isTick {
		return
	}
	if command != nil {
		deliverMessage(model, command())
	}
}

func openEvent(t *testing.T, model *Model, id string) {
	t.Helper()
	detail, err := model.source.GetEvent(context.Background(), id)
	if err != nil {
		t.Fatalf("GetEvent(%s): %v", id, err)
	}
	model.Update(eventLoadedMsg{detail: detail})
	if model.screen != ScreenDetail {
		t.Fatalf("screen = %v after event load, want detail", model.screen)
	}
}

func TestBookWhileLoggedOutPromptsLogin(t *testing.T) {
	model, _ := newTestModel(false)
	openEvent(t, model, "ev-1")

	pressRune(t, model, 'b')
	if model.flow.State() != booking.StateLoginRequired {
		t.Fatalf("flow state = %v, want login_required", model.flow.State())
	}

	view := ansi.Strip(model.View())
	if !strings.Contains(view, booking.MessageLoginFirst) {
		t.Fatalf("view missing login prompt:\n%s", view)
	}
}

func TestLoginPromptContinuesIntoForm(t *testing.T) {
	model, _ := newTestModel(false)
	openEvent(t, model, "ev-1")
	pressRune(t, model, 'b')

	// Enter at the prompt opens the login form.
	pressKey(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if model.screen != ScreenLogin {
		t.Fatalf("screen = %v, want login", model.screen)
	}

	// A successful login resumes the interrupted booking.
	model.Update(authResultMsg{})
	if model.screen != ScreenDetail {
		t.Fatalf("screen = %v after login, want detail", model.screen)
	}
	if model.flow.State() != booking.StateForm {
		t.Fatalf("flow state = %v after login, want form", model.flow.State())
	}
}

func TestBookWhileLoggedInOpensForm(t *testing.T) {
	model, _ := newTestModel(true)
	openEvent(t, model, "ev-1")

	pressRune(t, model, 'b')
	if model.flow.State() != booking.StateForm {
		t.Fatalf("flow state = %v, want form", model.flow.State())
	}
}

func TestQuantityKeysClampAndUpdateTotal(t *testing.T) {
	model, _ := newTestModel(true)
	openEvent(t, model, "ev-1")
	pressRune(t, model, 'b')
	model.setBookingFocus(focusQuantity)

	for range 10 {
		pressRune(t, model, '+')
	}
	if model.flow.Quantity() != booking.MaxQuantity {
		t.Fatalf("quantity = %d after repeated +, want %d",
			model.flow.Quantity(), booking.MaxQuantity)
	}

	view := ansi.Strip(model.View())
	if !strings.Contains(view, "Total: ₹3,750") {
		t.Fatalf("view missing clamped total:\n%s", view)
	}

	for range 10 {
		pressRune(t, model, '-')
	}
	if model.flow.Quantity() != booking.MinQuantity {
		t.Fatalf("quantity = %d after repeated -, want %d",
			model.flow.Quantity(), booking.MinQuantity)
	}
}

func TestSubmitWithMissingFieldsStaysLocal(t *testing.T) {
	model, _ := newTestModel(true)
	openEvent(t, model, "ev-1")
	pressRune(t, model, 'b')

	command := pressKey(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if command != nil {
		t.Fatal("submit with empty fields issued a command")
	}
	if model.flow.State() != booking.StateForm {
		t.Fatalf("flow state = %v, want form", model.flow.State())
	}
	if model.flow.ErrorMessage() != booking.MessageRequiredFields {
		t.Fatalf("error = %q, want %q",
			model.flow.ErrorMessage(), booking.MessageRequiredFields)
	}
}

func TestSuccessfulBooking(t *testing.T) {
	model, _ := newTestModel(true)
	openEvent(t, model, "ev-1")
	pressRune(t, model, 'b')

	model.bookingInputs[focusFullName].SetValue("Asha Verma")
	model.bookingInputs[focusEmail].SetValue("asha@example.com")
	model.bookingInputs[focusPhone].SetValue("9876543210")

	command := pressKey(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	runCommand(t, model, command)

	if model.flow.State() != booking.StateSuccess {
		t.Fatalf("flow state = %v, want success", model.flow.State())
	}
	view := ansi.Strip(model.View())
	if !strings.Contains(view, "Booking confirmed") {
		t.Fatalf("view missing confirmation:\n%s", view)
	}
}

func TestDuplicateBookingReturnsToFormWithMessage(t *testing.T) {
	model, _ := newTestModel(true)
	openEvent(t, model, "ev-1")

	// First booking succeeds.
	pressRune(t, model, 'b')
	model.bookingInputs[focusFullName].SetValue("Asha Verma")
	model.bookingInputs[focusEmail].SetValue("asha@example.com")
	model.bookingInputs[focusPhone].SetValue("9876543210")
	runCommand(t, model, pressKey(t, model, tea.KeyMsg{Type: tea.KeyEnter}))

	// Re-open the event and book again; the backend rejects it.
	pressKey(t, model, tea.KeyMsg{Type: tea.KeyEscape})
	model.detail = nil
	openEvent(t, model, "ev-1")
	pressRune(t, model, 'b')
	model.bookingInputs[focusFullName].SetValue("Asha Verma")
	model.bookingInputs[focusEmail].SetValue("asha@example.com")
	model.bookingInputs[focusPhone].SetValue("9876543210")
	model.flow.SetQuantity(3)
	runCommand(t, model, pressKey(t, model, tea.KeyMsg{Type: tea.KeyEnter}))

	if model.flow.State() != booking.StateForm {
		t.Fatalf("flow state = %v after rejection, want form", model.flow.State())
	}
	if model.flow.ErrorMessage() != booking.MessageAlreadyRegistered {
		t.Fatalf("error = %q, want %q",
			model.flow.ErrorMessage(), booking.MessageAlreadyRegistered)
	}
	// The correctable form keeps its values.
	if model.flow.Quantity() != 3 {
		t.Fatalf("quantity = %d after rejection, want 3", model.flow.Quantity())
	}
	if model.bookingInputs[focusEmail].Value() != "asha@example.com" {
		t.Fatal("email field lost its value after rejection")
	}
}

func TestNotFoundViewHasNoBookingControls(t *testing.T) {
	model, _ := newTestModel(true)
	model.Update(eventLoadedMsg{err: &api.APIError{StatusCode: 404, Message: "Event not found"}})

	if !model.notFound {
		t.Fatal("notFound not set after 404")
	}
	view := ansi.Strip(model.View())
	if !strings.Contains(view, "Event not found.") {
		t.Fatalf("view missing not-found message:\n%s", view)
	}
	if strings.Contains(view, "book now") {
		t.Fatalf("not-found view offers booking:\n%s", view)
	}

	// Esc recovers to the list.
	pressKey(t, model, tea.KeyMsg{Type: tea.KeyEscape})
	if model.screen != ScreenList {
		t.Fatalf("screen = %v after esc, want list", model.screen)
	}
}

func TestSpotsLeftShownForLimitedEvent(t *testing.T) {
	model, _ := newTestModel(true)
	openEvent(t, model, "ev-1")

	view := ansi.Strip(model.View())
	if !strings.Contains(view, "60 spots left") {
		t.Fatalf("view missing spots-left count:\n%s", view)
	}
}

func TestUnlimitedEventShowsRegisteredCount(t *testing.T) {
	model, _ := newTestModel(true)
	openEvent(t, model, "ev-2")

	view := ansi.Strip(model.View())
	if !strings.Contains(view, "unlimited capacity") {
		t.Fatalf("view missing unlimited marker:\n%s", view)
	}
	if !strings.Contains(view, "Free") {
		t.Fatalf("zero-price event not shown as Free:\n%s", view)
	}
}

func TestListFilterNarrowsRows(t *testing.T) {
	model, _ := newTestModel(true)

	pressRune(t, model, '/')
	if !model.filter.Active {
		t.Fatal("/ did not activate the filter")
	}
	for _, character := range "gopher" {
		pressRune(t, model, character)
	}

	view := ansi.Strip(model.View())
	if !strings.Contains(view, "GopherMeet Pune") {
		t.Fatalf("filtered view missing match:\n%s", view)
	}
	if strings.Contains(view, "Aurora Beats Festival") {
		t.Fatalf("filtered view still shows non-match:\n%s", view)
	}

	// Esc clears the filter entirely.
	pressKey(t, model, tea.KeyMsg{Type: tea.KeyEscape})
	view = ansi.Strip(model.View())
	if !strings.Contains(view, "Aurora Beats Festival") {
		t.Fatalf("cleared filter still hides events:\n%s", view)
	}
}

func TestTabCyclesBookingFields(t *testing.T) {
	model, _ := newTestModel(true)
	openEvent(t, model, "ev-1")
	pressRune(t, model, 'b')

	if model.bookingFocus != focusFullName {
		t.Fatalf("initial focus = %d, want full name", model.bookingFocus)
	}

	expected := []int{focusEmail, focusPhone, focusQuantity, focusNotes, focusFullName}
	for _, want := range expected {
		pressKey(t, model, tea.KeyMsg{Type: tea.KeyTab})
		if model.bookingFocus != want {
			t.Fatalf("focus after tab = %d, want %d", model.bookingFocus, want)
		}
	}

	pressKey(t, model, tea.KeyMsg{Type: tea.KeyShiftTab})
	if model.bookingFocus != focusNotes {
		t.Fatalf("focus after shift+tab = %d, want notes", model.bookingFocus)
	}
}

func TestConfirmedCancelDispatchesOnlyOnce(t *testing.T) {
	model, _ := newTestModel(true)
	openEvent(t, model, "ev-1")
	pressRune(t, model, 'b')
	model.bookingInputs[focusFullName].SetValue("Asha Verma")
	model.bookingInputs[focusEmail].SetValue("asha@example.com")
	model.bookingInputs[focusPhone].SetValue("9876543210")
	runCommand(t, model, pressKey(t, model, tea.KeyMsg{Type: tea.KeyEnter}))

	model.screen = ScreenRegistrations
	runCommand(t, model, model.loadRegistrations())

	pressRune(t, model, 'x')
	command := pressRune(t, model, 'y')
	if command == nil {
		t.Fatal("confirmed cancel did not dispatch a command")
	}

	// The prompt is disarmed at dispatch, before the result arrives:
	// hammering y cannot issue a second cancel.
	if model.pendingCancelID != "" {
		t.Fatalf("pendingCancelID = %q while request in flight, want empty",
			model.pendingCancelID)
	}
	if repeat := pressRune(t, model, 'y'); repeat != nil {
		t.Fatal("second y re-issued the cancel request")
	}

	runCommand(t, model, command)
	if model.registrations[0].Status != api.RegistrationCancelled {
		t.Fatalf("status = %q after cancel, want cancelled", model.registrations[0].Status)
	}
}

func TestCancelRegistrationNeedsConfirmation(t *testing.T) {
	model, _ := newTestModel(true)
	openEvent(t, model, "ev-1")
	pressRune(t, model, 'b')
	model.bookingInputs[focusFullName].SetValue("Asha Verma")
	model.bookingInputs[focusEmail].SetValue("asha@example.com")
	model.bookingInputs[focusPhone].SetValue("9876543210")
	runCommand(t, model, pressKey(t, model, tea.KeyMsg{Type: tea.KeyEnter}))

	model.screen = ScreenRegistrations
	runCommand(t, model, model.loadRegistrations())
	if len(model.registrations) != 1 {
		t.Fatalf("registrations = %d, want 1", len(model.registrations))
	}

	pressRune(t, model, 'x')
	if model.pendingCancelID == "" {
		t.Fatal("x did not arm the cancel confirmation")
	}

	// n keeps the registration.
	pressRune(t, model, 'n')
	if model.pendingCancelID != "" {
		t.Fatal("n did not dismiss the confirmation")
	}
	if model.registrations[0].Status != api.RegistrationConfirmed {
		t.Fatalf("status = %q after declined cancel", model.registrations[0].Status)
	}

	// y cancels for real.
	pressRune(t, model, 'x')
	runCommand(t, model, pressRune(t, model, 'y'))
	if model.registrations[0].Status != api.RegistrationCancelled {
		t.Fatalf("status = %q after confirmed cancel, want cancelled",
			model.registrations[0].Status)
	}
}
