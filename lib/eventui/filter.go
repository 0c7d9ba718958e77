// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package eventui

import (
	"strings"

	"github.com/goticket/goticket/lib/api"
)

// FilterModel narrows the already-fetched event list client-side.
// Matching is case-insensitive substring against title, category, and
// location — if any field contains the query, the event matches. No
// request is issued per keystroke; the filter only re-reads the list
// held in memory.
type FilterModel struct {
	// Input is the current filter query text.
	Input string

	// Active is true while the filter input has keyboard focus
	// (the user pressed / to start typing).
	Active bool
}

// Matches reports whether the event matches the current filter. An
// empty filter matches everything.
func (filter *FilterModel) Matches(event api.Event) bool {
	if filter.Input == "" {
		return true
	}

	query := strings.ToLower(filter.Input)

	if strings.Contains(strings.ToLower(event.Title), query) {
		return true
	}
	if event.Category != "" && strings.Contains(strings.ToLower(event.Category), query) {
		return true
	}
	if event.Location != "" && strings.Contains(strings.ToLower(event.Location), query) {
		return true
	}
	return false
}

// Apply filters a slice of events, returning only those that match.
func (filter *FilterModel) Apply(events []api.Event) []api.Event {
	if filter.Input == "" {
		return events
	}

	var matched []api.Event
	for _, event := range events {
		if filter.Matches(event) {
			matched = append(matched, event)
		}
	}
	return matched
}

// HandleRune appends a typed character while the filter is active.
func (filter *FilterModel) HandleRune(character rune) {
	filter.Input += string(character)
}

// HandleBackspace removes the last character. Returns false when the
// input was already empty.
func (filter *FilterModel) HandleBackspace() bool {
	if filter.Input == "" {
		return false
	}
	runes := []rune(filter.Input)
	filter.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the query and deactivates the filter.
func (filter *FilterModel) Clear() {
	filter.Input = ""
	filter.Active = false
}
