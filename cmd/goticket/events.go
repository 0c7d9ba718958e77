// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/goticket/goticket/cmd/goticket/cli"
	"github.com/goticket/goticket/lib/api"
	"github.com/goticket/goticket/lib/booking"
	"github.com/goticket/goticket/lib/money"
)

func eventsCommand(globals *globalOptions) *cli.Command {
	return &cli.Command{
		Name:    "events",
		Summary: "Browse and manage events",
		Subcommands: []*cli.Command{
			eventsListCommand(globals),
			eventsShowCommand(globals),
			eventsBookCommand(globals),
			eventsCreateCommand(globals),
			eventsUpdateCommand(globals),
			eventsDeleteCommand(globals),
		},
	}
}

func eventsListCommand(globals *globalOptions) *cli.Command {
	var category, search string

	return &cli.Command{
		Name:    "list",
		Summary: "List events",
		Usage:   "goticket events list [--category CATEGORY] [--search TEXT]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flags.StringVar(&category, "category", "", "filter by category")
			flags.StringVar(&search, "search", "", "free-text search")
			return flags
		},
		Run: func(args []string) error {
			application, err := newApp(globals)
			if err != nil {
				return err
			}

			list, err := application.client.ListEvents(context.Background(), category, search)
			if err != nil {
				return cli.FromAPIError(err)
			}
			if len(list.Events) == 0 {
				fmt.Println("No events found.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tTITLE\tCATEGORY\tDATE\tLOCATION\tPRICE")
			for _, event := range list.Events {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\n",
					event.ID, event.Title, event.Category,
					dateOnly(event.EventDate), event.Location, displayPrice(event.Price))
			}
			return writer.Flush()
		},
	}
}

func eventsShowCommand(globals *globalOptions) *cli.Command {
	return &cli.Command{
		Name:    "show",
		Summary: "Show one event with availability",
		Usage:   "goticket events show EVENT_ID",
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("expected exactly one event id")
			}
			application, err := newApp(globals)
			if err != nil {
				return err
			}

			detail, err := application.client.GetEvent(context.Background(), args[0])
			if err != nil {
				return cli.FromAPIError(err)
			}

			event := detail.Event
			fmt.Printf("%s\n\n", event.Title)
			fmt.Printf("ID:        %s\n", event.ID)
			fmt.Printf("Date:      %s\n", event.EventDate)
			if event.Location != "" {
				fmt.Printf("Location:  %s\n", event.Location)
			}
			if event.Category != "" {
				fmt.Printf("Category:  %s\n", event.Category)
			}
			fmt.Printf("Price:     %s\n", displayPrice(event.Price))
			if spots, limited := event.SpotsLeft(detail.RegistrationCount); limited {
				fmt.Printf("Capacity:  %d (%d spots left)\n", *event.Capacity, spots)
			} else {
				fmt.Printf("Capacity:  unlimited (%d registered)\n", detail.RegistrationCount)
			}
			if event.Description != "" {
				fmt.Printf("\n%s\n", event.Description)
			}
			return nil
		},
	}
}

func eventsBookCommand(globals *globalOptions) *cli.Command {
	var fullName, email, phone, notes string
	var quantity int

	return &cli.Command{
		Name:    "book",
		Summary: "Book tickets for an event",
		Description: "Book tickets non-interactively. Quantity is clamped to 1-5; the\n" +
			"attendee details travel in the registration's notes field, the same\n" +
			"way the interactive viewer submits them.",
		Usage: "goticket events book EVENT_ID --name NAME --email EMAIL --phone PHONE [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("book", pflag.ContinueOnError)
			flags.StringVar(&fullName, "name", "", "attendee full name")
			flags.StringVar(&email, "email", "", "attendee email")
			flags.StringVar(&phone, "phone", "", "attendee phone")
			flags.IntVar(&quantity, "quantity", 1, "ticket count (1-5)")
			flags.StringVar(&notes, "notes", "", "optional notes for the organizer")
			return flags
		},
		Examples: []cli.Example{
			{Command: "goticket events book ev-42 --name \"Asha Verma\" --email asha@example.com --phone 9876543210 --quantity 2"},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("expected exactly one event id")
			}
			application, err := newApp(globals)
			if err != nil {
				return err
			}
			if !application.store.LoggedIn() {
				return cli.Forbidden("%s", booking.MessageLoginFirst)
			}

			detail, err := application.client.GetEvent(context.Background(), args[0])
			if err != nil {
				return cli.FromAPIError(err)
			}

			flow := booking.NewFlow()
			flow.BookClicked(true)
			flow.SetQuantity(quantity)
			draft := flow.Draft()
			draft.FullName = fullName
			draft.Email = email
			draft.Phone = phone
			draft.Notes = notes
			if !flow.Submit() {
				return cli.Validation("%s", flow.ErrorMessage())
			}

			composed := flow.ComposeNotes(detail.Event.Price)
			if _, err := application.client.RegisterForEvent(context.Background(), detail.Event.ID, composed); err != nil {
				// Keep the backend's category but show the classified
				// user-facing message.
				toolError := cli.FromAPIError(err)
				toolError.Err = fmt.Errorf("%s", booking.ClassifyError(err))
				return toolError
			}

			fmt.Printf("Booked %d ticket(s) for %s — total %s\n",
				flow.Quantity(), detail.Event.Title,
				money.FormatINR(flow.Total(detail.Event.Price)))
			return nil
		},
	}
}

func eventsCreateCommand(globals *globalOptions) *cli.Command {
	var title, description, date, clock, location, category, imageURL string
	var price float64
	var capacity int

	return &cli.Command{
		Name:    "create",
		Summary: "Create an event (organizer)",
		Usage:   "goticket events create --title TITLE --date YYYY-MM-DD [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("create", pflag.ContinueOnError)
			flags.StringVar(&title, "title", "", "event title")
			flags.StringVar(&description, "description", "", "event description (markdown)")
			flags.StringVar(&date, "date", "", "event date, YYYY-MM-DD")
			flags.StringVar(&clock, "time", "09:00", "event start time, HH:MM")
			flags.StringVar(&location, "location", "", "venue")
			flags.StringVar(&category, "category", "", "category")
			flags.Float64Var(&price, "price", 0, "ticket price in INR")
			flags.IntVar(&capacity, "capacity", 0, "seat capacity (0 = unlimited)")
			flags.StringVar(&imageURL, "image-url", "", "cover image URL")
			return flags
		},
		Run: func(args []string) error {
			application, err := newApp(globals)
			if err != nil {
				return err
			}
			if !application.store.LoggedIn() {
				return cli.Forbidden("log in before creating events")
			}
			if strings.TrimSpace(title) == "" {
				return cli.Validation("--title is required")
			}
			eventDate, err := composeEventDate(date, clock)
			if err != nil {
				return cli.Validation("%w", err)
			}

			request := api.CreateEventRequest{
				Title:       title,
				Description: description,
				EventDate:   eventDate,
				Location:    location,
				Category:    category,
				Price:       price,
				ImageURL:    imageURL,
			}
			if capacity > 0 {
				request.Capacity = &capacity
			}

			event, err := application.client.CreateEvent(context.Background(), request)
			if err != nil {
				return cli.FromAPIError(err)
			}
			fmt.Printf("Created event %s (%s)\n", event.ID, event.Title)
			return nil
		},
	}
}

func eventsUpdateCommand(globals *globalOptions) *cli.Command {
	var title, description, date, clock, location, category, imageURL string
	var price float64
	var capacity int

	return &cli.Command{
		Name:    "update",
		Summary: "Update an event (organizer)",
		Description: "Update fields on an event you organize. Only the flags you pass\n" +
			"are sent; everything else keeps its current value.",
		Usage: "goticket events update EVENT_ID [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("update", pflag.ContinueOnError)
			flags.StringVar(&title, "title", "", "event title")
			flags.StringVar(&description, "description", "", "event description (markdown)")
			flags.StringVar(&date, "date", "", "event date, YYYY-MM-DD")
			flags.StringVar(&clock, "time", "", "event start time, HH:MM")
			flags.StringVar(&location, "location", "", "venue")
			flags.StringVar(&category, "category", "", "category")
			flags.Float64Var(&price, "price", -1, "ticket price in INR")
			flags.IntVar(&capacity, "capacity", -1, "seat capacity (0 = unlimited)")
			flags.StringVar(&imageURL, "image-url", "", "cover image URL")
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("expected exactly one event id")
			}
			application, err := newApp(globals)
			if err != nil {
				return err
			}
			if !application.store.LoggedIn() {
				return cli.Forbidden("log in before updating events")
			}

			fields := map[string]any{}
			if title != "" {
				fields["title"] = title
			}
			if description != "" {
				fields["description"] = description
			}
			if date != "" {
				eventDate, err := composeEventDate(date, clock)
				if err != nil {
					return cli.Validation("%w", err)
				}
				fields["event_date"] = eventDate
			} else if clock != "" {
				return cli.Validation("--time requires --date")
			}
			if location != "" {
				fields["location"] = location
			}
			if category != "" {
				fields["category"] = category
			}
			if price >= 0 {
				fields["price"] = price
			}
			if capacity == 0 {
				fields["capacity"] = nil
			} else if capacity > 0 {
				fields["capacity"] = capacity
			}
			if imageURL != "" {
				fields["image_url"] = imageURL
			}
			if len(fields) == 0 {
				return cli.Validation("no fields to update; pass at least one flag")
			}

			event, err := application.client.UpdateEvent(context.Background(), args[0], fields)
			if err != nil {
				return cli.FromAPIError(err)
			}
			fmt.Printf("Updated event %s (%s)\n", event.ID, event.Title)
			return nil
		},
	}
}

func eventsDeleteCommand(globals *globalOptions) *cli.Command {
	return &cli.Command{
		Name:    "delete",
		Summary: "Delete an event (organizer)",
		Usage:   "goticket events delete EVENT_ID",
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("expected exactly one event id")
			}
			application, err := newApp(globals)
			if err != nil {
				return err
			}
			if err := application.client.DeleteEvent(context.Background(), args[0]); err != nil {
				return cli.FromAPIError(err)
			}
			fmt.Printf("Deleted event %s\n", args[0])
			return nil
		},
	}
}

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// composeEventDate joins a calendar date and clock time into the
// backend's expected event_date format: an ISO-8601 timestamp pinned
// to the IST offset. Time defaults to 09:00 upstream.
func composeEventDate(date, clock string) (string, error) {
	if !datePattern.MatchString(date) {
		return "", fmt.Errorf("--date must be YYYY-MM-DD (got %q)", date)
	}
	if clock == "" {
		clock = "09:00"
	}
	if !timePattern.MatchString(clock) {
		return "", fmt.Errorf("--time must be HH:MM (got %q)", clock)
	}
	return fmt.Sprintf("%sT%s:00+05:30", date, clock), nil
}

// dateOnly trims an ISO-8601 timestamp to its calendar date.
func dateOnly(eventDate string) string {
	if index := strings.IndexByte(eventDate, 'T'); index > 0 {
		return eventDate[:index]
	}
	return eventDate
}

// displayPrice renders a price, with zero shown as Free.
func displayPrice(price float64) string {
	if price == 0 {
		return "Free"
	}
	return money.FormatINR(price)
}
