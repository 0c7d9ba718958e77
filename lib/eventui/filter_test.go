// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package eventui

import (
	"testing"

	"github.com/goticket/goticket/lib/api"
)

func filterTestEvents() []api.Event {
	return []api.Event{
		{ID: "1", Title: "Aurora Beats Festival", Category: "Music", Location: "Mumbai"},
		{ID: "2", Title: "GopherMeet Pune", Category: "Tech", Location: "Pune"},
		{ID: "3", Title: "Street Food Walk", Category: "Food", Location: "Hyderabad"},
	}
}

func TestFilterEmptyMatchesEverything(t *testing.T) {
	filter := FilterModel{}
	matched := filter.Apply(filterTestEvents())
	if len(matched) != 3 {
		t.Fatalf("empty filter matched %d events, want 3", len(matched))
	}
}

func TestFilterMatchesTitleCaseInsensitive(t *testing.T) {
	filter := FilterModel{Input: "gopher"}
	matched := filter.Apply(filterTestEvents())
	if len(matched) != 1 || matched[0].ID != "2" {
		t.Fatalf("filter %q matched %v, want event 2 only", filter.Input, matched)
	}
}

func TestFilterMatchesCategoryAndLocation(t *testing.T) {
	byCategory := FilterModel{Input: "food"}
	if matched := byCategory.Apply(filterTestEvents()); len(matched) != 1 || matched[0].ID != "3" {
		t.Fatalf("category filter matched %v, want event 3 only", matched)
	}

	byLocation := FilterModel{Input: "MUMBAI"}
	if matched := byLocation.Apply(filterTestEvents()); len(matched) != 1 || matched[0].ID != "1" {
		t.Fatalf("location filter matched %v, want event 1 only", matched)
	}
}

func TestFilterNoMatches(t *testing.T) {
	filter := FilterModel{Input: "opera"}
	if matched := filter.Apply(filterTestEvents()); len(matched) != 0 {
		t.Fatalf("filter %q matched %v, want none", filter.Input, matched)
	}
}

func TestFilterBackspaceAndClear(t *testing.T) {
	filter := FilterModel{Active: true}
	filter.HandleRune('a')
	filter.HandleRune('b')
	if !filter.HandleBackspace() {
		t.Fatal("backspace on non-empty input returned false")
	}
	if filter.Input != "a" {
		t.Fatalf("input after backspace = %q, want %q", filter.Input, "a")
	}

	filter.Clear()
	if filter.Input != "" || filter.Active {
		t.Fatalf("clear left input=%q active=%v", filter.Input, filter.Active)
	}
	if filter.HandleBackspace() {
		t.Fatal("backspace on empty input returned true")
	}
}
