// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package eventui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the event viewer TUI.
type KeyMap struct {
	// Navigation (list movement or detail scrolling depending on
	// the active screen).
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Screen changes.
	Open          key.Binding // List: open the selected event.
	Back          key.Binding // Detail/forms: return to the previous screen.
	Registrations key.Binding // List: open the my-registrations screen.
	Login         key.Binding // List: open the login form.

	// Filter.
	FilterActivate key.Binding // Enter filter mode.
	FilterClear    key.Binding // Clear filter and exit filter mode.

	// Booking.
	Book               key.Binding // Detail: press Book Now.
	QuantityUp         key.Binding // Booking form: one more ticket.
	QuantityDown       key.Binding // Booking form: one fewer ticket.
	NextField          key.Binding // Booking/login forms: focus next field.
	PreviousField      key.Binding // Booking/login forms: focus previous field.
	Submit             key.Binding // Forms: submit.
	CancelRegistration key.Binding // Registrations: cancel the selected one.

	Quit key.Binding
}

// DefaultKeyMap is the built-in binding set. Vim-style j/k alongside
// arrow keys, matching the rest of the GoTicket tooling.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Registrations: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "my registrations"),
	),
	Login: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "log in"),
	),
	FilterActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	FilterClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear filter"),
	),
	Book: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "book now"),
	),
	QuantityUp: key.NewBinding(
		key.WithKeys("+", "right"),
		key.WithHelp("+/→", "more tickets"),
	),
	QuantityDown: key.NewBinding(
		key.WithKeys("-", "left"),
		key.WithHelp("-/←", "fewer tickets"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	PreviousField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "previous field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	CancelRegistration: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "cancel registration"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
