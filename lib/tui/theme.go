// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui holds the shared look-and-feel for GoTicket terminal
// UIs: the color theme and small rendering helpers reused across
// screens.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/goticket/goticket/lib/api"
)

// Theme defines the color palette for the TUI. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Registration status colors.
	StatusConfirmed  lipgloss.Color
	StatusWaitlisted lipgloss.Color
	StatusCancelled  lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Accents.
	PriceForeground lipgloss.Color
	ErrorForeground lipgloss.Color
	SuccessText     lipgloss.Color
	LinkForeground  lipgloss.Color
	CodeForeground  lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText:         lipgloss.Color("252"),
	FaintText:          lipgloss.Color("243"),
	SelectedBackground: lipgloss.Color("24"),
	SelectedForeground: lipgloss.Color("231"),
	StatusConfirmed:    lipgloss.Color("35"),
	StatusWaitlisted:   lipgloss.Color("214"),
	StatusCancelled:    lipgloss.Color("203"),
	HeaderForeground:   lipgloss.Color("81"),
	BorderColor:        lipgloss.Color("238"),
	HelpText:           lipgloss.Color("243"),
	PriceForeground:    lipgloss.Color("156"),
	ErrorForeground:    lipgloss.Color("203"),
	SuccessText:        lipgloss.Color("35"),
	LinkForeground:     lipgloss.Color("75"),
	CodeForeground:     lipgloss.Color("222"),
}

// StatusColor returns the color for a registration status string.
// Unknown values render as faint text.
func (theme Theme) StatusColor(status string) lipgloss.Color {
	switch status {
	case api.RegistrationConfirmed:
		return theme.StatusConfirmed
	case api.RegistrationWaitlisted:
		return theme.StatusWaitlisted
	case api.RegistrationCancelled:
		return theme.StatusCancelled
	default:
		return theme.FaintText
	}
}
