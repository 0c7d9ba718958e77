// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package eventui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goticket/goticket/lib/api"
	"github.com/goticket/goticket/lib/booking"
	"github.com/goticket/goticket/lib/tui"
)

// requestTimeout bounds every backend call issued from the UI.
const requestTimeout = 30 * time.Second

// Screen identifies which view the UI is showing. Exactly one screen
// is active at a time; Back pops to the previous one.
type Screen int

const (
	ScreenList Screen = iota
	ScreenDetail
	ScreenLogin
	ScreenRegister
	ScreenRegistrations
)

func (screen Screen) String() string {
	switch screen {
	case ScreenList:
		return "list"
	case ScreenDetail:
		return "detail"
	case ScreenLogin:
		return "login"
	case ScreenRegister:
		return "register"
	case ScreenRegistrations:
		return "registrations"
	default:
		return "unknown"
	}
}

// Booking form focus order. Quantity sits between phone and notes so
// tab cycles through the whole sidebar.
const (
	focusFullName = iota
	focusEmail
	focusPhone
	focusQuantity
	focusNotes
	bookingFieldCount
)

// Messages delivered by backend commands.

type eventsLoadedMsg struct {
	events []api.Event
	err    error
}

type eventLoadedMsg struct {
	detail *api.EventDetail
	err    error
}

type bookingResultMsg struct {
	err error
}

type authResultMsg struct {
	register bool
	err      error
}

type registrationsLoadedMsg struct {
	registrations []api.Registration
	err           error
}

type cancelResultMsg struct {
	registrationID string
	err            error
}

// Model is the root bubbletea model for the event viewer.
type Model struct {
	source Source
	keys   KeyMap
	theme  tui.Theme

	screen  Screen
	width   int
	height  int
	spinner spinner.Model
	loading bool

	// statusMessage is a transient success line shown in the footer;
	// errorMessage is a top-level load failure shown in the body.
	statusMessage string
	errorMessage  string

	// List screen.
	events []api.Event
	filter FilterModel
	cursor int

	// Detail screen. notFound distinguishes a missing event from a
	// load failure: the not-found view renders without the booking
	// sidebar.
	detail   *api.EventDetail
	notFound bool
	viewport viewport.Model
	flow     *booking.Flow

	// Booking form fields. bookingInputs holds full name, email, and
	// phone in focus order; notes is a multi-line textarea.
	bookingInputs []textinput.Model
	notesInput    textarea.Model
	bookingFocus  int

	// Login and register forms share one input slice; which form is
	// active follows from the screen. afterAuth is where a successful
	// login or registration returns to.
	authInputs []textinput.Model
	authFocus  int
	authErrors []string
	afterAuth  Screen

	// Registrations screen.
	registrations      []api.Registration
	registrationCursor int
	pendingCancelID    string
}

// New creates the viewer model over a data source.
func New(source Source) *Model {
	theme := tui.DefaultTheme

	loadingSpinner := spinner.New()
	loadingSpinner.Spinner = spinner.Dot
	loadingSpinner.Style = lipgloss.NewStyle().Foreground(theme.HeaderForeground)

	model := &Model{
		source:  source,
		keys:    DefaultKeyMap,
		theme:   theme,
		screen:  ScreenList,
		spinner: loadingSpinner,
		loading: true,
		flow:    booking.NewFlow(),
	}
	model.bookingInputs = newBookingInputs()
	model.notesInput = newNotesInput()
	return model
}

func newBookingInputs() []textinput.Model {
	placeholders := []string{"Full name", "Email", "Phone"}
	inputs := make([]textinput.Model, len(placeholders))
	for index, placeholder := range placeholders {
		input := textinput.New()
		input.Placeholder = placeholder
		input.CharLimit = 120
		inputs[index] = input
	}
	return inputs
}

func newNotesInput() textarea.Model {
	notes := textarea.New()
	notes.Placeholder = "Notes (optional)"
	notes.SetHeight(3)
	notes.ShowLineNumbers = false
	return notes
}

// Init starts the spinner and kicks off the initial catalog load.
func (model *Model) Init() tea.Cmd {
	return tea.Batch(model.spinner.Tick, model.loadEvents())
}

// Update is the top-level message dispatcher. Size and result
// messages are handled here; key messages route to the active screen.
func (model *Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := message.(type) {
	case tea.WindowSizeMsg:
		model.width = typed.Width
		model.height = typed.Height
		model.resizeDetail()
		return model, nil

	case spinner.TickMsg:
		if !model.loading && model.flow.State() != booking.StateSubmitting {
			return model, nil
		}
		var command tea.Cmd
		model.spinner, command = model.spinner.Update(typed)
		return model, command

	case eventsLoadedMsg:
		model.loading = false
		if typed.err != nil {
			model.errorMessage = "Could not load events: " + typed.err.Error()
			return model, nil
		}
		model.errorMessage = ""
		model.events = typed.events
		model.clampCursor()
		return model, nil

	case eventLoadedMsg:
		model.loading = false
		if typed.err != nil {
			if api.IsNotFound(typed.err) {
				model.notFound = true
				model.screen = ScreenDetail
				return model, nil
			}
			model.errorMessage = "Could not load event: " + typed.err.Error()
			return model, nil
		}
		model.errorMessage = ""
		model.openDetail(typed.detail)
		return model, nil

	case bookingResultMsg:
		if typed.err == nil {
			model.flow.SubmitAccepted()
			model.statusMessage = "Booking confirmed!"
			// The registration count changed; refresh so spots-left
			// stays honest.
			if model.detail != nil {
				return model, model.refreshDetailCount(model.detail.Event.ID)
			}
			return model, nil
		}
		model.flow.SubmitRejected(typed.err)
		return model, nil

	case authResultMsg:
		return model.handleAuthResult(typed)

	case registrationsLoadedMsg:
		model.loading = false
		if typed.err != nil {
			if api.IsUnauthorized(typed.err) {
				model.screen = ScreenLogin
				model.afterAuth = ScreenRegistrations
				model.prepareLoginForm()
				model.authErrors = []string{"Please log in to see your registrations."}
				return model, nil
			}
			model.errorMessage = "Could not load registrations: " + typed.err.Error()
			return model, nil
		}
		model.errorMessage = ""
		model.registrations = typed.registrations
		if model.registrationCursor >= len(model.registrations) {
			model.registrationCursor = len(model.registrations) - 1
		}
		if model.registrationCursor < 0 {
			model.registrationCursor = 0
		}
		return model, nil

	case cancelResultMsg:
		model.pendingCancelID = ""
		if typed.err != nil {
			model.errorMessage = "Could not cancel: " + typed.err.Error()
			return model, nil
		}
		model.statusMessage = "Registration cancelled."
		return model, model.loadRegistrations()

	case tea.KeyMsg:
		return model.handleKey(typed)
	}

	return model, nil
}

// handleKey routes a key press to the active screen's handler. Quit
// is global except while typing in a text field, where q must insert.
func (model *Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch model.screen {
	case ScreenList:
		return model.updateList(message)
	case ScreenDetail:
		return model.updateDetail(message)
	case ScreenLogin, ScreenRegister:
		return model.updateAuthForm(message)
	case ScreenRegistrations:
		return model.updateRegistrations(message)
	}
	return model, nil
}

// View renders the active screen.
func (model *Model) View() string {
	if model.width == 0 {
		return "loading..."
	}
	switch model.screen {
	case ScreenList:
		return model.viewList()
	case ScreenDetail:
		return model.viewDetail()
	case ScreenLogin, ScreenRegister:
		return model.viewAuthForm()
	case ScreenRegistrations:
		return model.viewRegistrations()
	}
	return ""
}

// Backend commands. Each runs in its own goroutine under bubbletea and
// reports back as a typed message.

func (model *Model) loadEvents() tea.Cmd {
	source := model.source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		events, err := source.ListEvents(ctx)
		return eventsLoadedMsg{events: events, err: err}
	}
}

func (model *Model) loadEvent(id string) tea.Cmd {
	source := model.source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		detail, err := source.GetEvent(ctx, id)
		return eventLoadedMsg{detail: detail, err: err}
	}
}

// refreshDetailCount re-fetches the open event after a successful
// booking so the registration count reflects the new seat.
func (model *Model) refreshDetailCount(id string) tea.Cmd {
	source := model.source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		detail, err := source.GetEvent(ctx, id)
		if err != nil {
			// The booking already succeeded; a failed refresh only
			// leaves the count stale.
			return nil
		}
		return eventLoadedMsg{detail: detail}
	}
}

func (model *Model) submitBooking(eventID, notes string) tea.Cmd {
	source := model.source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		err := source.RegisterForEvent(ctx, eventID, notes)
		return bookingResultMsg{err: err}
	}
}

func (model *Model) loadRegistrations() tea.Cmd {
	source := model.source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		registrations, err := source.ListRegistrations(ctx)
		return registrationsLoadedMsg{registrations: registrations, err: err}
	}
}

func (model *Model) cancelRegistration(registrationID string) tea.Cmd {
	source := model.source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		err := source.CancelRegistration(ctx, registrationID)
		return cancelResultMsg{registrationID: registrationID, err: err}
	}
}

func (model *Model) submitLogin(email, password string) tea.Cmd {
	source := model.source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		err := source.Login(ctx, email, password)
		return authResultMsg{err: err}
	}
}

func (model *Model) submitRegister(request api.RegisterRequest) tea.Cmd {
	source := model.source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		err := source.Register(ctx, request)
		return authResultMsg{register: true, err: err}
	}
}

// Small shared render helpers.

func (model *Model) headerView(title string) string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground).
		Render(title)
	return header + "\n" + lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", min(model.width, 72))) + "\n"
}

func (model *Model) helpView(entries string) string {
	footer := lipgloss.NewStyle().Foreground(model.theme.HelpText).Render(entries)
	if model.statusMessage != "" {
		footer = lipgloss.NewStyle().
			Foreground(model.theme.SuccessText).
			Render(model.statusMessage) + "\n" + footer
	}
	return footer
}

func (model *Model) errorView() string {
	return lipgloss.NewStyle().
		Foreground(model.theme.ErrorForeground).
		Render(model.errorMessage)
}
