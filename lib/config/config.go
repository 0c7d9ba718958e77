// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the GoTicket
// client.
//
// Configuration is loaded from a single file specified by:
//   - GOTICKET_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There is no automatic discovery. Unlike a server, the client must
// work with zero setup, so a missing config file is not an error —
// the built-in defaults (local backend, well-known session path)
// apply.
//
// The config file may contain environment-specific sections
// (development, staging, production) that override base values when
// the environment matches.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for production deployments.
	Production Environment = "production"
)

// Config is the master configuration for the GoTicket client.
type Config struct {
	// Environment identifies the deployment type.
	Environment Environment `yaml:"environment"`

	// Backend configures how the REST client reaches the API server.
	Backend BackendConfig `yaml:"backend"`

	// Session configures local session persistence.
	Session SessionConfig `yaml:"session"`

	// Per-environment overrides, applied after the base config loads.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Backend *BackendConfig `yaml:"backend,omitempty"`
	Session *SessionConfig `yaml:"session,omitempty"`
}

// BackendConfig configures the REST client.
type BackendConfig struct {
	// BaseURL is the root URL of the GoTicket API server.
	// Default: http://localhost:8080
	BaseURL string `yaml:"base_url"`

	// RequestTimeout bounds each HTTP round trip (Go duration string).
	// Default: 30s
	RequestTimeout string `yaml:"request_timeout"`
}

// SessionConfig configures session persistence.
type SessionConfig struct {
	// File overrides the session file path. Empty means the
	// well-known path (~/.config/goticket/session.json or
	// GOTICKET_SESSION_FILE).
	File string `yaml:"file"`
}

// Default returns the zero-setup configuration: local backend,
// well-known session path.
func Default() *Config {
	return &Config{
		Environment: Development,
		Backend: BackendConfig{
			BaseURL:        "http://localhost:8080",
			RequestTimeout: "30s",
		},
	}
}

// Load loads configuration from the file named by GOTICKET_CONFIG.
// When the variable is unset, the defaults are returned — the client
// is expected to work without any config file.
func Load() (*Config, error) {
	configPath := os.Getenv("GOTICKET_CONFIG")
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. The file is
// the single source of truth on top of the defaults; environment
// variables do not override individual values. The only expansion
// performed is ${HOME} in the session file path, for portability.
func LoadFile(path string) (*Config, error) {
	loaded := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	loaded.applyEnvironmentOverrides()
	loaded.expandVariables()

	if err := loaded.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return loaded, nil
}

// applyEnvironmentOverrides merges the section matching the active
// environment over the base values.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides
	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
	}
	if overrides == nil {
		return
	}

	if overrides.Backend != nil {
		if overrides.Backend.BaseURL != "" {
			c.Backend.BaseURL = overrides.Backend.BaseURL
		}
		if overrides.Backend.RequestTimeout != "" {
			c.Backend.RequestTimeout = overrides.Backend.RequestTimeout
		}
	}
	if overrides.Session != nil && overrides.Session.File != "" {
		c.Session.File = overrides.Session.File
	}
}

// expandVariables expands ${HOME} in path-valued fields.
func (c *Config) expandVariables() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	c.Session.File = strings.ReplaceAll(c.Session.File, "${HOME}", home)
}

func (c *Config) validate() error {
	switch c.Environment {
	case Development, Staging, Production:
	default:
		return fmt.Errorf("unknown environment %q", c.Environment)
	}
	if _, err := c.Timeout(); err != nil {
		return err
	}
	return nil
}

// Timeout parses the backend request timeout.
func (c *Config) Timeout() (time.Duration, error) {
	timeout, err := time.ParseDuration(c.Backend.RequestTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid backend request_timeout %q: %w", c.Backend.RequestTimeout, err)
	}
	return timeout, nil
}
