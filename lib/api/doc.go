// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

// Package api is the typed REST client for the GoTicket backend. It
// turns typed requests into authenticated HTTP calls and normalizes
// failures into a single error shape (*APIError).
//
// Every request sends and receives JSON. When the injected session
// store holds a token, requests carry "Authorization: Bearer <token>".
// Successful login/register responses that include a token are
// persisted into the session store before returning to the caller.
//
// There are no retries anywhere — every call is a single attempt and
// the caller decides whether to re-trigger it.
package api
