// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/goticket/goticket/cmd/goticket/cli"
)

func registrationsCommand(globals *globalOptions) *cli.Command {
	return &cli.Command{
		Name:    "registrations",
		Summary: "Manage your registrations",
		Subcommands: []*cli.Command{
			registrationsListCommand(globals),
			registrationsCancelCommand(globals),
		},
	}
}

func registrationsListCommand(globals *globalOptions) *cli.Command {
	var status string

	return &cli.Command{
		Name:    "list",
		Summary: "List your registrations",
		Usage:   "goticket registrations list [--status STATUS]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flags.StringVar(&status, "status", "", "filter by status (confirmed, waitlisted, cancelled)")
			return flags
		},
		Run: func(args []string) error {
			application, err := newApp(globals)
			if err != nil {
				return err
			}
			if !application.store.LoggedIn() {
				return cli.Forbidden("log in to see your registrations")
			}

			list, err := application.client.ListRegistrations(context.Background(), status)
			if err != nil {
				return cli.FromAPIError(err)
			}
			if len(list.Registrations) == 0 {
				fmt.Println("No registrations found.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tEVENT\tDATE\tSTATUS")
			for _, registration := range list.Registrations {
				eventTitle := registration.EventID
				eventDate := ""
				if registration.Event != nil {
					eventTitle = registration.Event.Title
					eventDate = dateOnly(registration.Event.EventDate)
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
					registration.ID, eventTitle, eventDate, registration.Status)
			}
			return writer.Flush()
		},
	}
}

func registrationsCancelCommand(globals *globalOptions) *cli.Command {
	return &cli.Command{
		Name:    "cancel",
		Summary: "Cancel a registration",
		Usage:   "goticket registrations cancel REGISTRATION_ID",
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("expected exactly one registration id")
			}
			application, err := newApp(globals)
			if err != nil {
				return err
			}
			if !application.store.LoggedIn() {
				return cli.Forbidden("log in to cancel a registration")
			}

			if err := application.client.CancelRegistration(context.Background(), args[0]); err != nil {
				return cli.FromAPIError(err)
			}
			fmt.Printf("Cancelled registration %s\n", args[0])
			return nil
		},
	}
}
