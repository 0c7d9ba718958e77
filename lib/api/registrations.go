// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
	"net/url"
)

// ListRegistrations fetches the caller's registrations with
// GET /api/registrations. status optionally narrows to one lifecycle
// state (confirmed, waitlisted, cancelled).
func (client *Client) ListRegistrations(ctx context.Context, status string) (*RegistrationList, error) {
	path := "/api/registrations"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}

	var list RegistrationList
	if err := client.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// createdRegistration is the success envelope of POST /api/registrations.
type createdRegistration struct {
	Registration Registration `json:"registration"`
}

// RegisterForEvent books a seat with POST /api/registrations. The
// backend receives only the event id and the free-text notes — per-
// attendee details travel inside the composed notes, not as structured
// fields. Duplicate and at-capacity failures come back as 409s; use
// IsAlreadyRegistered and IsCapacityFull to tell them apart.
func (client *Client) RegisterForEvent(ctx context.Context, eventID, notes string) (*Registration, error) {
	body := map[string]string{"event_id": eventID, "notes": notes}

	var created createdRegistration
	if err := client.do(ctx, http.MethodPost, "/api/registrations", body, &created); err != nil {
		return nil, err
	}
	return &created.Registration, nil
}

// CancelRegistration releases a seat with POST /api/registrations/cancel.
func (client *Client) CancelRegistration(ctx context.Context, registrationID string) error {
	body := map[string]string{"registration_id": registrationID}
	return client.do(ctx, http.MethodPost, "/api/registrations/cancel", body, nil)
}
