// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goticket.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadWithoutEnvVarReturnsDefaults(t *testing.T) {
	t.Setenv("GOTICKET_CONFIG", "")

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Backend.BaseURL != "http://localhost:8080" {
		t.Errorf("base URL = %q", loaded.Backend.BaseURL)
	}
	if loaded.Environment != Development {
		t.Errorf("environment = %q", loaded.Environment)
	}
	timeout, err := loaded.Timeout()
	if err != nil || timeout != 30*time.Second {
		t.Errorf("timeout = %v, %v", timeout, err)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
environment: production
backend:
  base_url: https://api.goticket.in
  request_timeout: 10s
`)

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Backend.BaseURL != "https://api.goticket.in" {
		t.Errorf("base URL = %q", loaded.Backend.BaseURL)
	}
	timeout, _ := loaded.Timeout()
	if timeout != 10*time.Second {
		t.Errorf("timeout = %v", timeout)
	}
}

func TestEnvironmentOverridesApplied(t *testing.T) {
	path := writeConfig(t, `
environment: staging
backend:
  base_url: http://localhost:8080
staging:
  backend:
    base_url: https://staging.goticket.in
production:
  backend:
    base_url: https://api.goticket.in
`)

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Backend.BaseURL != "https://staging.goticket.in" {
		t.Errorf("base URL = %q, want staging override", loaded.Backend.BaseURL)
	}
}

func TestHomeExpansionInSessionPath(t *testing.T) {
	path := writeConfig(t, `
session:
  file: ${HOME}/.goticket/session.json
`)

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	home, _ := os.UserHomeDir()
	if loaded.Session.File != home+"/.goticket/session.json" {
		t.Errorf("session file = %q", loaded.Session.File)
	}
}

func TestRejectsUnknownEnvironment(t *testing.T) {
	path := writeConfig(t, "environment: yolo\n")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for unknown environment")
	}
}

func TestRejectsBadTimeout(t *testing.T) {
	path := writeConfig(t, `
backend:
  request_timeout: soon
`)
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for unparseable timeout")
	}
}

func TestLoadMissingFileIsAnError(t *testing.T) {
	t.Setenv("GOTICKET_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	if _, err := Load(); err == nil {
		t.Fatal("expected error when GOTICKET_CONFIG points at a missing file")
	}
}
