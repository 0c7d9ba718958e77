// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

// Package session persists the operator's authenticated identity
// (bearer token + user profile) between runs. Analogous to SSH keys —
// set up once via "goticket login", then transparent.
//
// The session file lives at ~/.config/goticket/session.json (override
// with GOTICKET_SESSION_FILE). It is the only state shared across
// commands and screens; each reader loads it fresh rather than
// caching, so logout in one place is visible everywhere on the next
// mount.
package session
