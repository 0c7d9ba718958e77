// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/goticket/goticket/lib/session"
)

// DefaultBaseURL is the backend address used when no config overrides
// it. Matches the reference backend's local development default.
const DefaultBaseURL = "http://localhost:8080"

// Config holds configuration for creating a Client.
type Config struct {
	// BaseURL is the root URL for API requests. Defaults to
	// DefaultBaseURL.
	BaseURL string

	// HTTPClient is used for all HTTP requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Session supplies the bearer token for authenticated calls and
	// receives tokens from successful login/register responses. May
	// be nil for a purely unauthenticated client.
	Session *session.Store

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client is the typed GoTicket REST client. Safe for concurrent use;
// it holds no per-request state.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Store
	logger     *slog.Logger
}

// NewClient creates a backend client from the given configuration.
func NewClient(config Config) (*Client, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("api: base URL must be http or https (got %q)", baseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		session:    config.Session,
		logger:     logger,
	}, nil
}

// errorBody mirrors the backend's error response shape. Both fields
// are optional; Message wins when both are present.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do executes one request against the backend. The path is relative
// to the base URL (e.g. "/api/events"). A non-nil requestBody is
// JSON-encoded; a non-nil result receives the decoded success body.
//
// The response body is parsed as JSON regardless of status code: on
// non-2xx responses the backend's message/error field becomes the
// *APIError message. Transport failures and unparseable bodies are
// returned as plain wrapped errors.
func (client *Client) do(ctx context.Context, method, path string, requestBody, result any) error {
	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return fmt.Errorf("encoding %s %s request: %w", method, path, err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("building %s %s request: %w", method, path, err)
	}
	request.Header.Set("Content-Type", "application/json")
	if client.session != nil {
		if token := client.session.Token(); token != "" {
			request.Header.Set("Authorization", "Bearer "+token)
		}
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("calling %s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("reading %s %s response: %w", method, path, err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		var parsed errorBody
		// Best effort: a failed response body may not be JSON at all.
		_ = json.Unmarshal(responseBody, &parsed)
		message := parsed.Message
		if message == "" {
			message = parsed.Error
		}
		if message == "" {
			message = "API request failed"
		}
		client.logger.Debug("backend request failed",
			"method", method,
			"path", path,
			"status", response.StatusCode,
			"message", message,
		)
		return &APIError{StatusCode: response.StatusCode, Message: message}
	}

	if result != nil && len(responseBody) > 0 {
		if err := json.Unmarshal(responseBody, result); err != nil {
			return fmt.Errorf("parsing %s %s response: %w", method, path, err)
		}
	}

	return nil
}
