// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
	"net/url"
)

// ListEvents fetches the event catalog with GET /api/events. Both
// filters are optional; empty strings are omitted from the query.
func (client *Client) ListEvents(ctx context.Context, category, search string) (*EventList, error) {
	path := "/api/events"
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	if search != "" {
		query.Set("search", search)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var list EventList
	if err := client.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetEvent fetches one event plus its current registration count with
// GET /api/events/{id}. Unknown ids surface as a 404 *APIError —
// check with IsNotFound.
func (client *Client) GetEvent(ctx context.Context, id string) (*EventDetail, error) {
	var detail EventDetail
	if err := client.do(ctx, http.MethodGet, "/api/events/"+url.PathEscape(id), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// createdEvent is the success envelope of POST /api/events.
type createdEvent struct {
	Event Event `json:"event"`
}

// CreateEvent publishes a new event with POST /api/events.
// Authenticated: the backend records the caller as organizer.
func (client *Client) CreateEvent(ctx context.Context, request CreateEventRequest) (*Event, error) {
	var created createdEvent
	if err := client.do(ctx, http.MethodPost, "/api/events", request, &created); err != nil {
		return nil, err
	}
	return &created.Event, nil
}

// UpdateEvent modifies event fields with PUT /api/events/{id}. The
// fields map carries only the keys to change.
func (client *Client) UpdateEvent(ctx context.Context, id string, fields map[string]any) (*Event, error) {
	var updated createdEvent
	if err := client.do(ctx, http.MethodPut, "/api/events/"+url.PathEscape(id), fields, &updated); err != nil {
		return nil, err
	}
	return &updated.Event, nil
}

// DeleteEvent cancels an event with DELETE /api/events/{id}.
func (client *Client) DeleteEvent(ctx context.Context, id string) error {
	return client.do(ctx, http.MethodDelete, "/api/events/"+url.PathEscape(id), nil, nil)
}
