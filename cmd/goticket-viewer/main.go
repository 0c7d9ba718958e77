// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

// goticket-viewer is a standalone TUI for browsing and booking
// GoTicket events. Designed as a goticket CLI plugin: `goticket
// browse` embeds the same viewer.
//
// Two modes of operation:
//
// Live mode (default): connects to a GoTicket backend over HTTP.
// Authentication uses the session saved by "goticket login"; booking
// prompts for login in-viewer when there is no session.
//
// Demo mode (--demo): serves the embedded demo catalog with bookings
// kept in memory. No backend required — works offline for trying the
// UI or developing against stable data.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/goticket/goticket/cmd/goticket/cli"
	"github.com/goticket/goticket/lib/api"
	"github.com/goticket/goticket/lib/config"
	"github.com/goticket/goticket/lib/eventui"
	"github.com/goticket/goticket/lib/fixture"
	"github.com/goticket/goticket/lib/session"
	"github.com/goticket/goticket/lib/version"
)

func main() {
	if err := run(); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var demoMode bool
	var configPath string
	var baseURL string
	var logOutput string

	flagSet := pflag.NewFlagSet("goticket-viewer", pflag.ContinueOnError)
	flagSet.BoolVar(&demoMode, "demo", false, "browse the embedded demo catalog (no backend)")
	flagSet.StringVar(&configPath, "config", "", "path to a goticket config file")
	flagSet.StringVar(&baseURL, "base-url", "", "backend base URL (overrides config)")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match the goticket binary.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("goticket-viewer")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	args := flagSet.Args()
	if len(args) > 0 {
		return cli.Validation("unexpected argument: %s", args[0])
	}

	logger, cleanup, err := newViewerLogger(logOutput)
	if err != nil {
		return cli.Validation("cannot open log file %s: %w", logOutput, err)
	}
	defer cleanup()

	var source eventui.Source
	if demoMode {
		events, counts, err := fixture.Events()
		if err != nil {
			return cli.Internal("loading demo catalog: %w", err)
		}
		source = eventui.NewDemoSource(events, counts)
	} else {
		source, err = newLiveSource(configPath, baseURL, logger)
		if err != nil {
			return err
		}
	}

	program := tea.NewProgram(eventui.New(source), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// newLiveSource wires the HTTP client and session store for live mode.
func newLiveSource(configPath, baseURL string, logger *slog.Logger) (eventui.Source, error) {
	var loaded *config.Config
	var err error
	if configPath != "" {
		loaded, err = config.LoadFile(configPath)
	} else {
		loaded, err = config.Load()
	}
	if err != nil {
		return nil, cli.Validation("loading config: %w", err)
	}

	if baseURL == "" {
		baseURL = loaded.Backend.BaseURL
	}
	timeout, err := loaded.Timeout()
	if err != nil {
		return nil, cli.Validation("config: %w", err)
	}

	store := session.NewStore()
	if loaded.Session.File != "" {
		store = session.NewStoreAt(loaded.Session.File)
	}

	client, err := api.NewClient(api.Config{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
		Session:    store,
		Logger:     logger,
	})
	if err != nil {
		return nil, cli.Validation("%w", err)
	}

	return eventui.NewLiveSource(client, store, logger), nil
}

// newViewerLogger builds the background logger. With --log-output,
// records go to a JSONL file for post-mortem debugging; otherwise only
// warnings and errors reach stderr, since chatter there would corrupt
// the alt-screen display.
func newViewerLogger(logOutput string) (*slog.Logger, func(), error) {
	if logOutput == "" {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
		return slog.New(handler), func() {}, nil
	}

	file, err := os.Create(logOutput)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), func() { file.Close() }, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `GoTicket event viewer — interactive terminal UI for browsing and
booking events.

By default, connects to the backend from your goticket config (or
http://localhost:8080). Booking uses the session saved by "goticket
login"; the viewer prompts for login when there is none.

With --demo, serves the embedded demo catalog with bookings kept in
memory. No backend or account required.

Usage:
  goticket-viewer [flags]

Examples:
  # Browse the live backend
  goticket-viewer

  # Try the UI offline
  goticket-viewer --demo

  # Point at a staging backend
  goticket-viewer --base-url https://staging.goticket.example.com

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
