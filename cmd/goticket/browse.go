// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goticket/goticket/cmd/goticket/cli"
	"github.com/goticket/goticket/lib/eventui"
)

func browseCommand(globals *globalOptions) *cli.Command {
	return &cli.Command{
		Name:    "browse",
		Summary: "Browse and book events interactively",
		Description: "Open the full-screen event browser: filter the catalog, read event\n" +
			"pages, and book tickets without leaving the terminal. Equivalent to\n" +
			"running goticket-viewer.",
		Run: func(args []string) error {
			application, err := newApp(globals)
			if err != nil {
				return err
			}

			source := eventui.NewLiveSource(application.client, application.store, application.logger)
			program := tea.NewProgram(eventui.New(source), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return cli.Internal("running viewer: %w", err)
			}
			return nil
		},
	}
}
