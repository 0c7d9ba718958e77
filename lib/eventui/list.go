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
	"github.com/goticket/goticket/lib/money"
)

// visibleEvents applies the client-side filter to the fetched list.
func (model *Model) visibleEvents() []api.Event {
	return model.filter.Apply(model.events)
}

func (model *Model) clampCursor() {
	visible := model.visibleEvents()
	if model.cursor >= len(visible) {
		model.cursor = len(visible) - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
}

func (model *Model) updateList(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Filter mode captures typed characters before the key map runs.
	if model.filter.Active {
		switch message.Type {
		case tea.KeyEscape:
			model.filter.Clear()
			model.clampCursor()
			return model, nil
		case tea.KeyEnter:
			model.filter.Active = false
			return model, nil
		case tea.KeyBackspace:
			model.filter.HandleBackspace()
			model.clampCursor()
			return model, nil
		case tea.KeyRunes:
			for _, character := range message.Runes {
				model.filter.HandleRune(character)
			}
			model.clampCursor()
			return model, nil
		case tea.KeySpace:
			model.filter.HandleRune(' ')
			model.clampCursor()
			return model, nil
		}
		return model, nil
	}

	model.statusMessage = ""

	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}

	case key.Matches(message, model.keys.Down):
		if model.cursor < len(model.visibleEvents())-1 {
			model.cursor++
		}

	case key.Matches(message, model.keys.PageUp):
		model.cursor -= model.listPageSize()
		model.clampCursor()

	case key.Matches(message, model.keys.PageDown):
		model.cursor += model.listPageSize()
		model.clampCursor()

	case key.Matches(message, model.keys.FilterActivate):
		model.filter.Active = true

	case key.Matches(message, model.keys.FilterClear):
		if model.filter.Input != "" {
			model.filter.Clear()
			model.clampCursor()
		}

	case key.Matches(message, model.keys.Open):
		visible := model.visibleEvents()
		if model.cursor < len(visible) {
			model.loading = true
			model.notFound = false
			return model, tea.Batch(
				model.spinner.Tick,
				model.loadEvent(visible[model.cursor].ID),
			)
		}

	case key.Matches(message, model.keys.Registrations):
		model.screen = ScreenRegistrations
		model.loading = true
		return model, tea.Batch(model.spinner.Tick, model.loadRegistrations())

	case key.Matches(message, model.keys.Login):
		model.screen = ScreenLogin
		model.afterAuth = ScreenList
		model.prepareLoginForm()
	}

	return model, nil
}

// listPageSize is the number of rows a ctrl+u/ctrl+d jump moves.
func (model *Model) listPageSize() int {
	size := model.height - 8
	if size < 1 {
		size = 1
	}
	return size
}

func (model *Model) viewList() string {
	var view strings.Builder
	view.WriteString(model.headerView("GoTicket — Events"))

	if model.filter.Active || model.filter.Input != "" {
		prompt := "/" + model.filter.Input
		if model.filter.Active {
			prompt += "▌"
		}
		view.WriteString(lipgloss.NewStyle().
			Foreground(model.theme.HeaderForeground).
			Render(prompt) + "\n\n")
	}

	if model.loading {
		view.WriteString(model.spinner.View() + " loading events...\n")
		return view.String()
	}
	if model.errorMessage != "" {
		view.WriteString(model.errorView() + "\n")
		return view.String()
	}

	visible := model.visibleEvents()
	if len(visible) == 0 {
		if model.filter.Input != "" {
			view.WriteString(lipgloss.NewStyle().
				Foreground(model.theme.FaintText).
				Render("No events match \""+model.filter.Input+"\".") + "\n")
		} else {
			view.WriteString(lipgloss.NewStyle().
				Foreground(model.theme.FaintText).
				Render("No events available right now.") + "\n")
		}
	}

	pageSize := model.listPageSize()
	start := 0
	if model.cursor >= pageSize {
		start = model.cursor - pageSize + 1
	}
	end := min(start+pageSize, len(visible))

	for index := start; index < end; index++ {
		view.WriteString(model.renderListRow(visible[index], index == model.cursor) + "\n")
	}

	view.WriteString("\n" + model.helpView(
		"enter open · / filter · r registrations · L log in · q quit"))
	return view.String()
}

// renderListRow formats one event line: title, category, date,
// location, and price.
func (model *Model) renderListRow(event api.Event, selected bool) string {
	price := money.FormatINR(event.Price)
	if event.Price == 0 {
		price = "Free"
	}

	line := fmt.Sprintf("%-34s %-12s %-12s %s",
		truncate(event.Title, 33),
		truncate(event.Category, 11),
		eventDateOnly(event.EventDate),
		price)

	if selected {
		return lipgloss.NewStyle().
			Foreground(model.theme.SelectedForeground).
			Background(model.theme.SelectedBackground).
			Render("> " + line)
	}
	return lipgloss.NewStyle().
		Foreground(model.theme.NormalText).
		Render("  " + line)
}

// eventDateOnly trims an ISO-8601 timestamp to its date part. The
// backend owns timezone semantics; the list just shows the day.
func eventDateOnly(eventDate string) string {
	if index := strings.IndexByte(eventDate, 'T'); index > 0 {
		return eventDate[:index]
	}
	return eventDate
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit-1]) + "…"
}
