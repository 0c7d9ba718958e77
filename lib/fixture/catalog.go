// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

// Package fixture holds the embedded demo event catalog. It backs the
// viewer's --demo mode (browsing without a backend) and doubles as
// realistic test data. Live mode never consults it.
//
// The catalog is JSONC so the data file can carry comments; it is
// stripped to plain JSON with tidwall/jsonc before decoding.
package fixture

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"github.com/goticket/goticket/lib/api"
)

//go:embed demo_events.jsonc
var demoEventsJSONC []byte

// catalog is the decoded shape of demo_events.jsonc.
type catalog struct {
	Events []demoEvent `json:"events"`
}

// demoEvent pairs an event with its pretend registration count, so
// demo mode can show spots-left numbers.
type demoEvent struct {
	api.Event
	RegistrationCount int `json:"registration_count"`
}

// Events returns the demo events with their registration counts,
// keyed by event ID. The embedded catalog is decoded on every call;
// callers own the returned slices and may mutate them freely.
func Events() ([]api.Event, map[string]int, error) {
	var decoded catalog
	if err := json.Unmarshal(jsonc.ToJSON(demoEventsJSONC), &decoded); err != nil {
		return nil, nil, fmt.Errorf("parsing embedded demo catalog: %w", err)
	}

	events := make([]api.Event, 0, len(decoded.Events))
	counts := make(map[string]int, len(decoded.Events))
	for _, entry := range decoded.Events {
		events = append(events, entry.Event)
		counts[entry.Event.ID] = entry.RegistrationCount
	}
	return events, counts, nil
}
