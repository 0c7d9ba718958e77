// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

// Package eventui is the interactive terminal UI for browsing and
// booking GoTicket events. It is a bubbletea program with one
// enumerated screen active at a time: the event list, an event detail
// page with the booking flow, the login and register forms, and the
// operator's registrations.
//
// All backend traffic goes through the Source interface so the same
// UI runs against the live API or the embedded demo catalog. Network
// calls run as bubbletea commands; their results come back as typed
// messages, so a request in flight never blocks the rest of the UI.
package eventui
