// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/goticket/goticket/cmd/goticket/cli"
	"github.com/goticket/goticket/lib/api"
	"github.com/goticket/goticket/lib/validate"
)

func loginCommand(globals *globalOptions) *cli.Command {
	var email, password string

	return &cli.Command{
		Name:    "login",
		Summary: "Authenticate and save the session",
		Description: "Log in to the GoTicket backend. The token is saved to the local\n" +
			"session file and attached to subsequent commands automatically.",
		Usage: "goticket login [--email EMAIL] [--password PASSWORD]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("login", pflag.ContinueOnError)
			flags.StringVar(&email, "email", "", "account email")
			flags.StringVar(&password, "password", "", "account password (prompted when omitted)")
			return flags
		},
		Examples: []cli.Example{
			{Description: "Log in with an interactive password prompt", Command: "goticket login --email asha@example.com"},
		},
		Run: func(args []string) error {
			application, err := newApp(globals)
			if err != nil {
				return err
			}

			if email == "" {
				email = promptLine("Email: ")
			}
			if password == "" {
				password = promptPassword("Password: ")
			}
			if failures := validate.LoginForm(email, password); len(failures) > 0 {
				return cli.Validation("%s", failures[0].Message)
			}

			auth, err := application.client.Login(context.Background(), email, password)
			if err != nil {
				return cli.FromAPIError(err)
			}

			fmt.Printf("Logged in as %s (%s)\n", auth.User.FullName, auth.User.Email)
			return nil
		},
	}
}

func registerCommand(globals *globalOptions) *cli.Command {
	var fullName, email, phone, password string

	return &cli.Command{
		Name:    "register",
		Summary: "Create an account and save the session",
		Usage:   "goticket register --name NAME --email EMAIL --phone PHONE [--password PASSWORD]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("register", pflag.ContinueOnError)
			flags.StringVar(&fullName, "name", "", "full name")
			flags.StringVar(&email, "email", "", "account email")
			flags.StringVar(&phone, "phone", "", "phone number")
			flags.StringVar(&password, "password", "", "account password (prompted when omitted)")
			return flags
		},
		Run: func(args []string) error {
			application, err := newApp(globals)
			if err != nil {
				return err
			}

			if password == "" {
				password = promptPassword("Password: ")
				confirm := promptPassword("Confirm password: ")
				if confirm != password {
					return cli.Validation("passwords do not match")
				}
			}
			if failures := validate.RegisterForm(fullName, email, phone, password, password); len(failures) > 0 {
				messages := make([]string, len(failures))
				for index, failure := range failures {
					messages[index] = failure.Message
				}
				return cli.Validation("%s", strings.Join(messages, "; "))
			}

			auth, err := application.client.Register(context.Background(), api.RegisterRequest{
				Email:       email,
				Password:    password,
				FullName:    fullName,
				PhoneNumber: phone,
			})
			if err != nil {
				return cli.FromAPIError(err)
			}

			fmt.Printf("Account created. Logged in as %s (%s)\n", auth.User.FullName, auth.User.Email)
			return nil
		},
	}
}

func logoutCommand(globals *globalOptions) *cli.Command {
	return &cli.Command{
		Name:    "logout",
		Summary: "Destroy the local session",
		Run: func(args []string) error {
			application, err := newApp(globals)
			if err != nil {
				return err
			}
			if !application.store.LoggedIn() {
				fmt.Println("Not logged in.")
				return nil
			}
			if err := application.store.Clear(); err != nil {
				return cli.Internal("clearing session: %w", err)
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func whoamiCommand(globals *globalOptions) *cli.Command {
	return &cli.Command{
		Name:    "whoami",
		Summary: "Show the logged-in account",
		Description: "Print the current account from the backend's profile endpoint.\n" +
			"Exits non-zero when there is no valid session.",
		Run: func(args []string) error {
			application, err := newApp(globals)
			if err != nil {
				return err
			}
			if !application.store.LoggedIn() {
				fmt.Println("Not logged in.")
				return &cli.ExitError{Code: 1}
			}

			user, err := application.client.Profile(context.Background())
			if err != nil {
				if api.IsUnauthorized(err) {
					fmt.Println("Session expired. Run 'goticket login'.")
					return &cli.ExitError{Code: 1}
				}
				return cli.FromAPIError(err)
			}

			fmt.Printf("%s <%s>\n", user.FullName, user.Email)
			if user.PhoneNumber != "" {
				fmt.Printf("Phone: %s\n", user.PhoneNumber)
			}
			fmt.Printf("Session file: %s\n", application.store.Path())
			return nil
		},
	}
}

// promptLine reads one line from stdin, shown with a prompt.
func promptLine(prompt string) string {
	fmt.Fprint(os.Stderr, prompt)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// promptPassword reads a password without echo when stdin is a
// terminal, falling back to a plain line read otherwise.
func promptPassword(prompt string) string {
	fmt.Fprint(os.Stderr, prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err == nil {
			return string(raw)
		}
	}
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
