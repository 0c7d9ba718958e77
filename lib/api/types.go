// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package api

// User is the backend's account record.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Username    string `json:"username"`
}

// Event is a ticketed happening. Capacity is nil for unlimited events.
// EventDate and the audit timestamps are ISO-8601 strings with offset,
// passed through verbatim — the backend owns their interpretation.
type Event struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	EventDate   string  `json:"event_date"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Capacity    *int    `json:"capacity"`
	OrganizerID string  `json:"organizer_id"`
	ImageURL    string  `json:"image_url"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// SpotsLeft returns capacity minus the registration count, and whether
// the event is capacity-limited at all. For unlimited events the
// second return is false and the count is meaningless.
func (event *Event) SpotsLeft(registrationCount int) (int, bool) {
	if event.Capacity == nil {
		return 0, false
	}
	return *event.Capacity - registrationCount, true
}

// Registration statuses used by the backend.
const (
	RegistrationConfirmed  = "confirmed"
	RegistrationWaitlisted = "waitlisted"
	RegistrationCancelled  = "cancelled"
)

// Registration is a user's claim on a seat at an event. The Event
// field is populated only on list responses where the backend joins
// event data in (under the "events" key).
type Registration struct {
	ID               string `json:"id"`
	EventID          string `json:"event_id"`
	UserID           string `json:"user_id"`
	RegistrationDate string `json:"registration_date"`
	Status           string `json:"status"`
	Notes            string `json:"notes"`
	CreatedAt        string `json:"created_at"`
	Event            *Event `json:"events,omitempty"`
}

// Active reports whether the registration still claims a seat.
func (registration *Registration) Active() bool {
	return registration.Status != RegistrationCancelled
}

// AuthResponse is the success shape of POST /api/login and
// POST /api/register.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Username    string `json:"username,omitempty"`
}

// CreateEventRequest is the body of POST /api/events.
type CreateEventRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	EventDate   string  `json:"event_date"`
	Location    string  `json:"location,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	Capacity    *int    `json:"capacity,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// EventList is the success shape of GET /api/events.
type EventList struct {
	Events []Event `json:"events"`
	Count  int     `json:"count"`
}

// EventDetail is the success shape of GET /api/events/{id}.
type EventDetail struct {
	Event             Event `json:"event"`
	RegistrationCount int   `json:"registration_count"`
}

// RegistrationList is the success shape of GET /api/registrations.
type RegistrationList struct {
	Registrations []Registration `json:"registrations"`
	Count         int            `json:"count"`
}
