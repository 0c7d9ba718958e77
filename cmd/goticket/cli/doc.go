// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework for the goticket binary: a
// nested command tree with pflag flag parsing, structured help output,
// typo suggestions, categorized errors, and exit-code plumbing.
package cli
