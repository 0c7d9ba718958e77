// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package eventui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goticket/goticket/lib/api"
)

func (model *Model) updateRegistrations(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending cancel waits for confirmation before anything else.
	// Confirming disarms the prompt immediately so a second press
	// cannot re-issue the request while it is in flight.
	if model.pendingCancelID != "" {
		switch message.Type {
		case tea.KeyEnter:
			id := model.pendingCancelID
			model.pendingCancelID = ""
			return model, model.cancelRegistration(id)
		case tea.KeyEscape:
			model.pendingCancelID = ""
			return model, nil
		}
		if message.Type == tea.KeyRunes && len(message.Runes) == 1 {
			switch message.Runes[0] {
			case 'y', 'Y':
				id := model.pendingCancelID
				model.pendingCancelID = ""
				return model, model.cancelRegistration(id)
			case 'n', 'N':
				model.pendingCancelID = ""
			}
		}
		return model, nil
	}

	model.statusMessage = ""

	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.Back):
		model.screen = ScreenList

	case key.Matches(message, model.keys.Up):
		if model.registrationCursor > 0 {
			model.registrationCursor--
		}

	case key.Matches(message, model.keys.Down):
		if model.registrationCursor < len(model.registrations)-1 {
			model.registrationCursor++
		}

	case key.Matches(message, model.keys.Open):
		if model.registrationCursor < len(model.registrations) {
			selected := model.registrations[model.registrationCursor]
			model.loading = true
			model.notFound = false
			return model, tea.Batch(model.spinner.Tick, model.loadEvent(selected.EventID))
		}

	case key.Matches(message, model.keys.CancelRegistration):
		if model.registrationCursor < len(model.registrations) {
			selected := model.registrations[model.registrationCursor]
			if selected.Active() {
				model.pendingCancelID = selected.ID
			}
		}
	}

	return model, nil
}

func (model *Model) viewRegistrations() string {
	var view strings.Builder
	view.WriteString(model.headerView("GoTicket — My registrations"))

	if model.loading {
		view.WriteString(model.spinner.View() + " loading registrations...\n")
		return view.String()
	}
	if model.errorMessage != "" {
		view.WriteString(model.errorView() + "\n")
		return view.String()
	}
	if len(model.registrations) == 0 {
		view.WriteString(lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("You have no registrations yet. Book an event to see it here.") + "\n\n")
		view.WriteString(model.helpView("esc back · q quit"))
		return view.String()
	}

	for index, registration := range model.registrations {
		view.WriteString(model.renderRegistrationRow(registration, index == model.registrationCursor) + "\n")
	}

	if model.pendingCancelID != "" {
		view.WriteString("\n" + lipgloss.NewStyle().
			Foreground(model.theme.StatusWaitlisted).
			Render("Cancel this registration? y confirm · n keep") + "\n")
	}

	view.WriteString("\n" + model.helpView("enter open event · x cancel · esc back · q quit"))
	return view.String()
}

func (model *Model) renderRegistrationRow(registration api.Registration, selected bool) string {
	title := registration.EventID
	date := ""
	if registration.Event != nil {
		title = registration.Event.Title
		date = eventDateOnly(registration.Event.EventDate)
	}

	badge := lipgloss.NewStyle().
		Foreground(model.theme.StatusColor(registration.Status)).
		Render(fmt.Sprintf("[%s]", registration.Status))

	line := fmt.Sprintf("%-34s %-12s %s", truncate(title, 33), date, badge)
	if selected {
		return lipgloss.NewStyle().
			Foreground(model.theme.SelectedForeground).
			Background(model.theme.SelectedBackground).
			Render("> "+fmt.Sprintf("%-34s %-12s", truncate(title, 33), date)) + " " + badge
	}
	return lipgloss.NewStyle().
		Foreground(model.theme.NormalText).
		Render("  ") + line
}
