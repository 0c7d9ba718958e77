// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/goticket/goticket/cmd/goticket/cli"
	"github.com/goticket/goticket/lib/api"
)

func dashboardCommand(globals *globalOptions) *cli.Command {
	return &cli.Command{
		Name:    "dashboard",
		Summary: "Show your events as an organizer",
		Description: "List the events you organize with their fill levels. The backend\n" +
			"has no organizer-scoped endpoint, so the full catalog is filtered\n" +
			"client-side against your profile.",
		Run: func(args []string) error {
			application, err := newApp(globals)
			if err != nil {
				return err
			}
			if !application.store.LoggedIn() {
				return cli.Forbidden("log in to see your dashboard")
			}

			ctx := context.Background()
			user, err := application.client.Profile(ctx)
			if err != nil {
				return cli.FromAPIError(err)
			}

			list, err := application.client.ListEvents(ctx, "", "")
			if err != nil {
				return cli.FromAPIError(err)
			}

			var organized []api.Event
			for _, event := range list.Events {
				if event.OrganizerID == user.ID {
					organized = append(organized, event)
				}
			}
			if len(organized) == 0 {
				fmt.Println("You are not organizing any events.")
				fmt.Println("Create one with 'goticket events create'.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tTITLE\tDATE\tPRICE\tFILL")
			for _, event := range organized {
				detail, err := application.client.GetEvent(ctx, event.ID)
				fill := "?"
				if err == nil {
					if spots, limited := detail.Event.SpotsLeft(detail.RegistrationCount); limited {
						fill = fmt.Sprintf("%d/%d (%d left)",
							detail.RegistrationCount, *detail.Event.Capacity, spots)
					} else {
						fill = fmt.Sprintf("%d registered", detail.RegistrationCount)
					}
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
					event.ID, event.Title, dateOnly(event.EventDate),
					displayPrice(event.Price), fill)
			}
			return writer.Flush()
		},
	}
}
