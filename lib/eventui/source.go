// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package eventui

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/goticket/goticket/lib/api"
	"github.com/goticket/goticket/lib/session"
)

// Source is the data access surface the UI renders from. LiveSource
// talks to the backend; DemoSource serves the embedded catalog.
type Source interface {
	// ListEvents fetches the full catalog. The UI filters
	// client-side, so no query parameters are taken here.
	ListEvents(ctx context.Context) ([]api.Event, error)

	// GetEvent fetches one event plus its registration count.
	GetEvent(ctx context.Context, id string) (*api.EventDetail, error)

	// RegisterForEvent books a seat with the composed notes.
	RegisterForEvent(ctx context.Context, eventID, notes string) error

	// ListRegistrations fetches the operator's registrations.
	ListRegistrations(ctx context.Context) ([]api.Registration, error)

	// CancelRegistration releases a seat.
	CancelRegistration(ctx context.Context, registrationID string) error

	// Login authenticates and persists the session.
	Login(ctx context.Context, email, password string) error

	// Register creates an account and persists the session.
	Register(ctx context.Context, request api.RegisterRequest) error

	// LoggedIn reports whether a session is present. Called on each
	// screen mount — never cached by the UI.
	LoggedIn() bool

	// Logout destroys the session.
	Logout() error
}

// LiveSource backs the UI with the REST client and session store.
type LiveSource struct {
	client *api.Client
	store  *session.Store
	logger *slog.Logger
}

// NewLiveSource creates a source over the given client and store.
func NewLiveSource(client *api.Client, store *session.Store, logger *slog.Logger) *LiveSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &LiveSource{client: client, store: store, logger: logger}
}

func (source *LiveSource) ListEvents(ctx context.Context) ([]api.Event, error) {
	list, err := source.client.ListEvents(ctx, "", "")
	if err != nil {
		return nil, err
	}
	return list.Events, nil
}

func (source *LiveSource) GetEvent(ctx context.Context, id string) (*api.EventDetail, error) {
	return source.client.GetEvent(ctx, id)
}

func (source *LiveSource) RegisterForEvent(ctx context.Context, eventID, notes string) error {
	_, err := source.client.RegisterForEvent(ctx, eventID, notes)
	return err
}

func (source *LiveSource) ListRegistrations(ctx context.Context) ([]api.Registration, error) {
	list, err := source.client.ListRegistrations(ctx, "")
	if err != nil {
		return nil, err
	}
	return list.Registrations, nil
}

func (source *LiveSource) CancelRegistration(ctx context.Context, registrationID string) error {
	return source.client.CancelRegistration(ctx, registrationID)
}

func (source *LiveSource) Login(ctx context.Context, email, password string) error {
	_, err := source.client.Login(ctx, email, password)
	return err
}

func (source *LiveSource) Register(ctx context.Context, request api.RegisterRequest) error {
	_, err := source.client.Register(ctx, request)
	return err
}

func (source *LiveSource) LoggedIn() bool {
	return source.store.LoggedIn()
}

func (source *LiveSource) Logout() error {
	return source.store.Clear()
}

// DemoSource serves the embedded catalog and keeps registrations in
// memory. Booking succeeds locally so the whole flow can be exercised
// offline; nothing survives process exit. The user is treated as
// logged in throughout.
type DemoSource struct {
	mu            sync.Mutex
	events        []api.Event
	counts        map[string]int
	registrations []api.Registration
	nextID        int
}

// NewDemoSource creates a demo source over the given catalog.
func NewDemoSource(events []api.Event, counts map[string]int) *DemoSource {
	if counts == nil {
		counts = make(map[string]int)
	}
	return &DemoSource{events: events, counts: counts, nextID: 1}
}

func (source *DemoSource) ListEvents(ctx context.Context) ([]api.Event, error) {
	source.mu.Lock()
	defer source.mu.Unlock()
	listed := make([]api.Event, len(source.events))
	copy(listed, source.events)
	return listed, nil
}

func (source *DemoSource) GetEvent(ctx context.Context, id string) (*api.EventDetail, error) {
	source.mu.Lock()
	defer source.mu.Unlock()
	for _, event := range source.events {
		if event.ID == id {
			return &api.EventDetail{Event: event, RegistrationCount: source.counts[id]}, nil
		}
	}
	return nil, &api.APIError{StatusCode: 404, Message: "Event not found"}
}

func (source *DemoSource) RegisterForEvent(ctx context.Context, eventID, notes string) error {
	source.mu.Lock()
	defer source.mu.Unlock()

	var target *api.Event
	for index := range source.events {
		if source.events[index].ID == eventID {
			target = &source.events[index]
			break
		}
	}
	if target == nil {
		return &api.APIError{StatusCode: 404, Message: "Event not found"}
	}

	for _, registration := range source.registrations {
		if registration.EventID == eventID && registration.Active() {
			return &api.APIError{StatusCode: 409, Message: "You are already registered for this event"}
		}
	}
	if target.Capacity != nil && source.counts[eventID] >= *target.Capacity {
		return &api.APIError{StatusCode: 409, Message: "This event has reached its maximum capacity"}
	}

	now := time.Now().Format(time.RFC3339)
	source.registrations = append(source.registrations, api.Registration{
		ID:               fmt.Sprintf("demo-reg-%d", source.nextID),
		EventID:          eventID,
		UserID:           "demo-user",
		RegistrationDate: now,
		Status:           api.RegistrationConfirmed,
		Notes:            notes,
		CreatedAt:        now,
		Event:            target,
	})
	source.nextID++
	source.counts[eventID]++
	return nil
}

func (source *DemoSource) ListRegistrations(ctx context.Context) ([]api.Registration, error) {
	source.mu.Lock()
	defer source.mu.Unlock()
	listed := make([]api.Registration, len(source.registrations))
	copy(listed, source.registrations)
	return listed, nil
}

func (source *DemoSource) CancelRegistration(ctx context.Context, registrationID string) error {
	source.mu.Lock()
	defer source.mu.Unlock()
	for index := range source.registrations {
		if source.registrations[index].ID == registrationID {
			if source.registrations[index].Status != api.RegistrationCancelled {
				source.registrations[index].Status = api.RegistrationCancelled
				source.counts[source.registrations[index].EventID]--
			}
			return nil
		}
	}
	return &api.APIError{StatusCode: 404, Message: "Registration not found"}
}

func (source *DemoSource) Login(ctx context.Context, email, password string) error {
	return nil
}

func (source *DemoSource) Register(ctx context.Context, request api.RegisterRequest) error {
	return nil
}

func (source *DemoSource) LoggedIn() bool { return true }

func (source *DemoSource) Logout() error { return nil }
