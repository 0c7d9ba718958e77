// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package eventui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goticket/goticket/lib/api"
	"github.com/goticket/goticket/lib/booking"
	"github.com/goticket/goticket/lib/money"
)

// openDetail installs a freshly loaded event into the detail screen.
// A new booking flow starts unless the same event is already open —
// re-loading after a successful booking must not reset the success
// state.
func (model *Model) openDetail(detail *api.EventDetail) {
	sameEvent := model.detail != nil && model.detail.Event.ID == detail.Event.ID &&
		model.screen == ScreenDetail
	model.detail = detail
	model.notFound = false
	model.screen = ScreenDetail

	if !sameEvent {
		model.flow = booking.NewFlow()
		model.bookingInputs = newBookingInputs()
		model.notesInput = newNotesInput()
		model.bookingFocus = focusFullName
	}

	model.viewport = viewport.New(model.descriptionWidth(), model.descriptionHeight())
	model.viewport.SetContent(renderEventDescription(
		detail.Event.Description, model.theme, model.descriptionWidth()))
}

func (model *Model) descriptionWidth() int {
	width := model.width - 4
	if width > 76 {
		width = 76
	}
	if width < 20 {
		width = 20
	}
	return width
}

func (model *Model) descriptionHeight() int {
	height := model.height - 14
	if height < 4 {
		height = 4
	}
	return height
}

func (model *Model) resizeDetail() {
	if model.screen != ScreenDetail || model.detail == nil {
		return
	}
	model.viewport.Width = model.descriptionWidth()
	model.viewport.Height = model.descriptionHeight()
	model.viewport.SetContent(renderEventDescription(
		model.detail.Event.Description, model.theme, model.descriptionWidth()))
}

func (model *Model) updateDetail(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.notFound {
		switch {
		case key.Matches(message, model.keys.Back), key.Matches(message, model.keys.Quit):
			model.notFound = false
			model.screen = ScreenList
		}
		return model, nil
	}
	if model.detail == nil {
		return model, nil
	}

	switch model.flow.State() {
	case booking.StateIdle:
		return model.updateDetailIdle(message)
	case booking.StateLoginRequired:
		return model.updateDetailLoginPrompt(message)
	case booking.StateForm:
		return model.updateDetailForm(message)
	case booking.StateSubmitting:
		// Submit control is disabled while the request is in flight.
		return model, nil
	case booking.StateSuccess:
		switch {
		case key.Matches(message, model.keys.Back), key.Matches(message, model.keys.Open):
			model.screen = ScreenList
			model.statusMessage = ""
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit
		}
		return model, nil
	}
	return model, nil
}

func (model *Model) updateDetailIdle(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit
	case key.Matches(message, model.keys.Back):
		model.screen = ScreenList
		return model, nil
	case key.Matches(message, model.keys.Book):
		model.flow.BookClicked(model.source.LoggedIn())
		if model.flow.State() == booking.StateForm {
			model.setBookingFocus(focusFullName)
		}
		return model, nil
	}

	var command tea.Cmd
	model.viewport, command = model.viewport.Update(message)
	return model, command
}

func (model *Model) updateDetailLoginPrompt(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Back):
		model.flow.Back()
	case key.Matches(message, model.keys.Login), key.Matches(message, model.keys.Open):
		model.screen = ScreenLogin
		model.afterAuth = ScreenDetail
		model.prepareLoginForm()
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit
	}
	return model, nil
}

func (model *Model) updateDetailForm(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case message.Type == tea.KeyCtrlC:
		return model, tea.Quit

	case message.Type == tea.KeyEscape:
		model.flow.Cancel()
		model.bookingInputs = newBookingInputs()
		model.notesInput = newNotesInput()
		model.bookingFocus = focusFullName
		return model, nil

	case key.Matches(message, model.keys.NextField):
		model.setBookingFocus((model.bookingFocus + 1) % bookingFieldCount)
		return model, nil

	case key.Matches(message, model.keys.PreviousField):
		model.setBookingFocus((model.bookingFocus + bookingFieldCount - 1) % bookingFieldCount)
		return model, nil

	// Submit from any field except notes, where enter inserts a
	// newline and tab leaves the field.
	case key.Matches(message, model.keys.Submit) && model.bookingFocus != focusNotes:
		return model.submitBookingForm()
	}

	if model.bookingFocus == focusQuantity {
		switch {
		case key.Matches(message, model.keys.QuantityUp):
			model.flow.IncrementQuantity()
			return model, nil
		case key.Matches(message, model.keys.QuantityDown):
			model.flow.DecrementQuantity()
			return model, nil
		}
		if message.Type == tea.KeyRunes && len(message.Runes) == 1 {
			digit := message.Runes[0]
			if digit >= '1' && digit <= '9' {
				model.flow.SetQuantity(int(digit - '0'))
			}
		}
		return model, nil
	}

	// Everything else edits the focused text field.
	var command tea.Cmd
	if model.bookingFocus == focusNotes {
		model.notesInput, command = model.notesInput.Update(message)
	} else {
		model.bookingInputs[model.bookingFocus], command =
			model.bookingInputs[model.bookingFocus].Update(message)
	}
	return model, command
}

// setBookingFocus moves keyboard focus, blurring the field that had it.
func (model *Model) setBookingFocus(focus int) {
	model.bookingFocus = focus
	for index := range model.bookingInputs {
		if index == focus {
			model.bookingInputs[index].Focus()
		} else {
			model.bookingInputs[index].Blur()
		}
	}
	if focus == focusNotes {
		model.notesInput.Focus()
	} else {
		model.notesInput.Blur()
	}
}

// submitBookingForm copies the field values into the flow draft and
// attempts the transition. The request is only issued when the flow
// accepts the submit.
func (model *Model) submitBookingForm() (tea.Model, tea.Cmd) {
	draft := model.flow.Draft()
	draft.FullName = strings.TrimSpace(model.bookingInputs[focusFullName].Value())
	draft.Email = strings.TrimSpace(model.bookingInputs[focusEmail].Value())
	draft.Phone = strings.TrimSpace(model.bookingInputs[focusPhone].Value())
	draft.Notes = strings.TrimSpace(model.notesInput.Value())

	if !model.flow.Submit() {
		return model, nil
	}

	notes := model.flow.ComposeNotes(model.detail.Event.Price)
	return model, tea.Batch(
		model.spinner.Tick,
		model.submitBooking(model.detail.Event.ID, notes),
	)
}

func (model *Model) viewDetail() string {
	if model.notFound {
		var view strings.Builder
		view.WriteString(model.headerView("GoTicket — Event"))
		view.WriteString(lipgloss.NewStyle().
			Foreground(model.theme.ErrorForeground).
			Render("Event not found.") + "\n\n")
		view.WriteString(lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("It may have been removed, or the link is stale.") + "\n\n")
		view.WriteString(model.helpView("esc back to events"))
		return view.String()
	}
	if model.detail == nil {
		return model.spinner.View() + " loading event..."
	}

	event := model.detail.Event
	var view strings.Builder
	view.WriteString(model.headerView(event.Title))

	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	meta := []string{}
	if event.Category != "" {
		meta = append(meta, event.Category)
	}
	meta = append(meta, eventDateOnly(event.EventDate))
	if event.Location != "" {
		meta = append(meta, event.Location)
	}
	view.WriteString(faint.Render(strings.Join(meta, " · ")) + "\n")
	view.WriteString(model.availabilityLine() + "\n\n")

	view.WriteString(model.viewport.View() + "\n\n")
	view.WriteString(model.bookingPanel() + "\n")
	return view.String()
}

// availabilityLine renders price and spots left. Unlimited events show
// the running registration count instead of a remaining number.
func (model *Model) availabilityLine() string {
	event := model.detail.Event
	price := money.FormatINR(event.Price)
	if event.Price == 0 {
		price = "Free"
	}
	priceStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.PriceForeground).
		Render(price)

	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	spots, limited := event.SpotsLeft(model.detail.RegistrationCount)
	if !limited {
		return priceStyled + faint.Render(
			fmt.Sprintf(" · unlimited capacity · %d registered", model.detail.RegistrationCount))
	}
	if spots <= 0 {
		return priceStyled + " · " + lipgloss.NewStyle().
			Foreground(model.theme.ErrorForeground).
			Render("sold out")
	}
	return priceStyled + faint.Render(fmt.Sprintf(" · %d spots left", spots))
}

// bookingPanel renders the sidebar for the current flow state.
func (model *Model) bookingPanel() string {
	switch model.flow.State() {
	case booking.StateIdle:
		return model.helpView("b book now · j/k scroll · esc back · q quit")

	case booking.StateLoginRequired:
		prompt := lipgloss.NewStyle().
			Foreground(model.theme.StatusWaitlisted).
			Render(booking.MessageLoginFirst)
		return prompt + "\n" + model.helpView("enter log in · esc dismiss")

	case booking.StateForm:
		return model.bookingFormPanel()

	case booking.StateSubmitting:
		return model.spinner.View() + " booking your tickets..."

	case booking.StateSuccess:
		success := lipgloss.NewStyle().
			Bold(true).
			Foreground(model.theme.SuccessText).
			Render("✓ Booking confirmed — see you there!")
		return success + "\n" + model.helpView("esc back to events")
	}
	return ""
}

func (model *Model) bookingFormPanel() string {
	var panel strings.Builder
	labelStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	focusStyle := lipgloss.NewStyle().Foreground(model.theme.HeaderForeground)

	labels := []string{"Full name *", "Email *", "Phone *"}
	for index, input := range model.bookingInputs {
		label := labelStyle.Render(labels[index])
		if model.bookingFocus == index {
			label = focusStyle.Render(labels[index])
		}
		panel.WriteString(label + "\n" + input.View() + "\n")
	}

	quantityLabel := labelStyle.Render("Tickets (1-5)")
	if model.bookingFocus == focusQuantity {
		quantityLabel = focusStyle.Render("Tickets (1-5)")
	}
	panel.WriteString(fmt.Sprintf("%s  − %d +\n", quantityLabel, model.flow.Quantity()))

	total := model.flow.Total(model.detail.Event.Price)
	panel.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.PriceForeground).
		Render("Total: "+money.FormatINR(total)) + "\n")

	notesLabel := labelStyle.Render("Notes")
	if model.bookingFocus == focusNotes {
		notesLabel = focusStyle.Render("Notes")
	}
	panel.WriteString(notesLabel + "\n" + model.notesInput.View() + "\n")

	if model.flow.ErrorMessage() != "" {
		panel.WriteString(lipgloss.NewStyle().
			Foreground(model.theme.ErrorForeground).
			Render(model.flow.ErrorMessage()) + "\n")
	}

	panel.WriteString(model.helpView("tab next field · +/- tickets · enter book · esc cancel"))
	return panel.String()
}
