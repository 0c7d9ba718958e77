// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/goticket/goticket/lib/session"
)

// testClient wires a client to the given handler with a session store
// in a temp directory. Returns the store so tests can pre-seed or
// inspect the persisted session.
func testClient(t *testing.T, handler http.Handler) (*Client, *session.Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := session.NewStoreAt(filepath.Join(t.TempDir(), "session.json"))
	client, err := NewClient(Config{BaseURL: server.URL, Session: store})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, store
}

func TestNewClientRejectsBadScheme(t *testing.T) {
	if _, err := NewClient(Config{BaseURL: "ftp://example.com"}); err == nil {
		t.Fatal("expected error for non-http base URL")
	}
}

func TestBearerTokenAttachedWhenLoggedIn(t *testing.T) {
	var gotAuthorization string
	client, store := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(RegistrationList{})
	}))

	if err := store.Save(&session.Session{Token: "t1", User: session.Profile{UserID: "u1"}}); err != nil {
		t.Fatal(err)
	}

	if _, err := client.ListRegistrations(context.Background(), ""); err != nil {
		t.Fatalf("ListRegistrations: %v", err)
	}
	if gotAuthorization != "Bearer t1" {
		t.Errorf("Authorization = %q, want %q", gotAuthorization, "Bearer t1")
	}
}

func TestNoBearerTokenWhenLoggedOut(t *testing.T) {
	var gotAuthorization string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(EventList{})
	}))

	if _, err := client.ListEvents(context.Background(), "", ""); err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if gotAuthorization != "" {
		t.Errorf("Authorization = %q, want empty for unauthenticated call", gotAuthorization)
	}
}

func TestErrorMessageExtraction(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{
			"error":   "Already registered",
			"message": "You are already registered for this event",
		})
	}))

	_, err := client.RegisterForEvent(context.Background(), "evt-1", "")
	if err == nil {
		t.Fatal("expected error from 409 response")
	}
	apiError, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiError.StatusCode != 409 {
		t.Errorf("status = %d, want 409", apiError.StatusCode)
	}
	// "message" wins over "error" when both are present.
	if apiError.Message != "You are already registered for this event" {
		t.Errorf("message = %q", apiError.Message)
	}
	if !IsAlreadyRegistered(err) {
		t.Error("IsAlreadyRegistered = false")
	}
	if IsCapacityFull(err) {
		t.Error("IsCapacityFull = true for duplicate-registration error")
	}
}

func TestErrorFallbackForNonJSONBody(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))

	_, err := client.ListEvents(context.Background(), "", "")
	apiError, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiError.Message != "API request failed" {
		t.Errorf("message = %q, want generic fallback", apiError.Message)
	}
}

func TestLoginPersistsTokenAndProfile(t *testing.T) {
	client, store := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/login" {
			t.Errorf("path = %q, want /api/login", r.URL.Path)
		}
		json.NewEncoder(w).Encode(AuthResponse{
			Token: "t1",
			User:  User{ID: "u1", FullName: "Priya Sharma", Email: "priya@example.com"},
		})
	}))

	auth, err := client.Login(context.Background(), "priya@example.com", "Abcdefg1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if auth.Token != "t1" {
		t.Errorf("token = %q", auth.Token)
	}

	// Round trip: the next "page mount" sees the session.
	if store.Token() != "t1" {
		t.Errorf("store.Token() = %q, want t1", store.Token())
	}
	if !store.LoggedIn() {
		t.Error("LoggedIn() = false after login")
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.User.FullName != "Priya Sharma" {
		t.Errorf("persisted profile name = %q", loaded.User.FullName)
	}
}

func TestRegisterSendsDerivedUsername(t *testing.T) {
	var gotBody map[string]any
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding register body: %v", err)
		}
		json.NewEncoder(w).Encode(AuthResponse{
			Token: "t1",
			User:  User{ID: "u1", FullName: "Asha Verma", Email: "asha@example.com"},
		})
	}))

	_, err := client.Register(context.Background(), RegisterRequest{
		Email:       "asha@example.com",
		Password:    "Abcdefg1",
		FullName:    "Asha Verma",
		PhoneNumber: "9876543210",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	// The account's username travels on the wire even when the caller
	// leaves it blank.
	if gotBody["username"] != "asha_verma" {
		t.Errorf("wire username = %v, want asha_verma", gotBody["username"])
	}
}

func TestRegisterKeepsExplicitUsername(t *testing.T) {
	var gotBody map[string]any
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(AuthResponse{Token: "t1", User: User{ID: "u1"}})
	}))

	_, err := client.Register(context.Background(), RegisterRequest{
		Email:    "asha@example.com",
		Password: "Abcdefg1",
		FullName: "Asha Verma",
		Username: "ashav",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if gotBody["username"] != "ashav" {
		t.Errorf("wire username = %v, want ashav", gotBody["username"])
	}
}

func TestDeriveUsername(t *testing.T) {
	cases := []struct {
		fullName string
		expected string
	}{
		{"Asha Verma", "asha_verma"},
		{"Priya", "priya"},
		{"Ravi  Kumar Rao", "ravi__kumar_rao"},
		{"", ""},
	}
	for _, testCase := range cases {
		if got := DeriveUsername(testCase.fullName); got != testCase.expected {
			t.Errorf("DeriveUsername(%q) = %q, want %q",
				testCase.fullName, got, testCase.expected)
		}
	}
}

func TestLoginFailureLeavesSessionAbsent(t *testing.T) {
	client, store := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password"})
	}))

	if _, err := client.Login(context.Background(), "a@b.co", "wrong"); err == nil {
		t.Fatal("expected login failure")
	}
	if store.LoggedIn() {
		t.Error("session persisted after failed login")
	}
}

func TestGetEventNotFound(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Not found", "message": "Event not found"})
	}))

	_, err := client.GetEvent(context.Background(), "missing")
	if !IsNotFound(err) {
		t.Fatalf("IsNotFound = false for %v", err)
	}
}

func TestListEventsQueryParameters(t *testing.T) {
	var gotQuery string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(EventList{Events: []Event{{ID: "evt-1"}}, Count: 1})
	}))

	list, err := client.ListEvents(context.Background(), "music", "rock")
	if err != nil {
		t.Fatal(err)
	}
	if list.Count != 1 || len(list.Events) != 1 {
		t.Errorf("list = %+v", list)
	}
	if gotQuery != "category=music&search=rock" {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestGetEventDecodesDetailEnvelope(t *testing.T) {
	capacity := 100
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(EventDetail{
			Event:             Event{ID: "evt-1", Title: "Indie Night", Price: 750, Capacity: &capacity},
			RegistrationCount: 42,
		})
	}))

	detail, err := client.GetEvent(context.Background(), "evt-1")
	if err != nil {
		t.Fatal(err)
	}
	spots, limited := detail.Event.SpotsLeft(detail.RegistrationCount)
	if !limited || spots != 58 {
		t.Errorf("spots left = %d limited=%v, want 58 true", spots, limited)
	}
}

func TestSpotsLeftUnlimitedWithoutCapacity(t *testing.T) {
	event := Event{ID: "evt-2"}
	if _, limited := event.SpotsLeft(10); limited {
		t.Error("event without capacity should be unlimited")
	}
}

func TestNetworkFailureIsPlainError(t *testing.T) {
	store := session.NewStoreAt(filepath.Join(t.TempDir(), "session.json"))
	client, err := NewClient(Config{BaseURL: "http://127.0.0.1:1", Session: store})
	if err != nil {
		t.Fatal(err)
	}

	_, err = client.ListEvents(context.Background(), "", "")
	if err == nil {
		t.Fatal("expected transport error")
	}
	if _, ok := err.(*APIError); ok {
		t.Error("transport failure should not be an *APIError")
	}
}
