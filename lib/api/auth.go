// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/goticket/goticket/lib/session"
)

// Login authenticates with POST /api/login. On success, if the
// response carries a token and the client has a session store, the
// token and profile are persisted before returning — subsequent calls
// on any client sharing the store are authenticated.
func (client *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}

	var auth AuthResponse
	if err := client.do(ctx, http.MethodPost, "/api/login", body, &auth); err != nil {
		return nil, err
	}

	if err := client.persistSession(&auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// Register creates an account with POST /api/register. Like Login,
// a returned token is persisted into the session store before the
// response is handed back. When the request carries no username, one
// is derived from the full name — the backend stores it in the
// account's metadata, so the field must always travel.
func (client *Client) Register(ctx context.Context, request RegisterRequest) (*AuthResponse, error) {
	if request.Username == "" {
		request.Username = DeriveUsername(request.FullName)
	}

	var auth AuthResponse
	if err := client.do(ctx, http.MethodPost, "/api/register", request, &auth); err != nil {
		return nil, err
	}

	if err := client.persistSession(&auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// DeriveUsername builds the default username from a full name: the
// name lowercased with every whitespace character replaced by an
// underscore.
func DeriveUsername(fullName string) string {
	var builder strings.Builder
	for _, character := range strings.ToLower(fullName) {
		if unicode.IsSpace(character) {
			builder.WriteRune('_')
		} else {
			builder.WriteRune(character)
		}
	}
	return builder.String()
}

// Profile fetches the authenticated user with GET /api/profile.
func (client *Client) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := client.do(ctx, http.MethodGet, "/api/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// persistSession saves a token-bearing auth response into the session
// store. Responses without a token (the backend may defer issuing one
// pending email confirmation) leave the store untouched.
func (client *Client) persistSession(auth *AuthResponse) error {
	if client.session == nil || auth.Token == "" {
		return nil
	}
	err := client.session.Save(&session.Session{
		Token: auth.Token,
		User: session.Profile{
			UserID:   auth.User.ID,
			FullName: auth.User.FullName,
			Email:    auth.User.Email,
		},
	})
	if err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	return nil
}
