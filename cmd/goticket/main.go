// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

// Command goticket is the terminal client for the GoTicket event
// platform: browse and book events, manage registrations, and run an
// organizer dashboard against the REST backend.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/pflag"

	"github.com/goticket/goticket/cmd/goticket/cli"
	"github.com/goticket/goticket/lib/api"
	"github.com/goticket/goticket/lib/config"
	"github.com/goticket/goticket/lib/session"
	"github.com/goticket/goticket/lib/version"
)

// globalOptions are flags accepted before any subcommand.
type globalOptions struct {
	configPath string
	baseURL    string
	verbose    bool
}

// app bundles the wired dependencies every command handler needs.
type app struct {
	client *api.Client
	store  *session.Store
	logger *slog.Logger
	config *config.Config
}

func main() {
	globals := &globalOptions{}

	rootFlags := pflag.NewFlagSet("goticket", pflag.ContinueOnError)
	rootFlags.StringVar(&globals.configPath, "config", "", "path to a goticket config file")
	rootFlags.StringVar(&globals.baseURL, "base-url", "", "backend base URL (overrides config)")
	rootFlags.BoolVarP(&globals.verbose, "verbose", "v", false, "enable debug logging")
	showVersion := rootFlags.Bool("version", false, "print version and exit")
	rootFlags.SetInterspersed(false)

	args := os.Args[1:]
	if err := rootFlags.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "goticket: %v\n", err)
		os.Exit(2)
	}
	if *showVersion {
		version.Print("goticket")
		return
	}

	root := rootCommand(globals)
	err := root.Execute(rootFlags.Args())
	if err == nil {
		return
	}

	// ExitError means the command already printed what it wanted.
	var exitError *cli.ExitError
	if !errors.As(err, &exitError) {
		fmt.Fprintf(os.Stderr, "goticket: %v\n", err)
		var toolError *cli.ToolError
		if errors.As(err, &toolError) && toolError.Hint != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", toolError.Hint)
		}
	}
	os.Exit(cli.ExitCodeFor(err))
}

func rootCommand(globals *globalOptions) *cli.Command {
	return &cli.Command{
		Name:    "goticket",
		Summary: "Terminal client for the GoTicket event platform",
		Description: "goticket browses, books, and manages events on a GoTicket backend.\n" +
			"Authentication state persists across invocations in a local session file.",
		Examples: []cli.Example{
			{Description: "Browse events interactively", Command: "goticket browse"},
			{Description: "List upcoming music events", Command: "goticket events list --category music"},
			{Description: "Book two tickets", Command: "goticket events book ev-42 --quantity 2 --name \"Asha Verma\" --email asha@example.com --phone 9876543210"},
		},
		Subcommands: []*cli.Command{
			loginCommand(globals),
			registerCommand(globals),
			logoutCommand(globals),
			whoamiCommand(globals),
			eventsCommand(globals),
			registrationsCommand(globals),
			dashboardCommand(globals),
			browseCommand(globals),
		},
	}
}

// newApp loads configuration and wires the API client, session store,
// and logger for one command invocation.
func newApp(globals *globalOptions) (*app, error) {
	var loaded *config.Config
	var err error
	if globals.configPath != "" {
		loaded, err = config.LoadFile(globals.configPath)
	} else {
		loaded, err = config.Load()
	}
	if err != nil {
		return nil, cli.Validation("loading config: %w", err)
	}

	baseURL := loaded.Backend.BaseURL
	if globals.baseURL != "" {
		baseURL = globals.baseURL
	}

	timeout, err := loaded.Timeout()
	if err != nil {
		return nil, cli.Validation("config: %w", err)
	}

	store := session.NewStore()
	if loaded.Session.File != "" {
		store = session.NewStoreAt(loaded.Session.File)
	}

	logger := cli.NewCommandLogger(globals.verbose)

	client, err := api.NewClient(api.Config{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
		Session:    store,
		Logger:     logger,
	})
	if err != nil {
		return nil, cli.Validation("%w", err)
	}

	return &app{client: client, store: store, logger: logger, config: loaded}, nil
}
