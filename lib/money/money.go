// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

// Package money formats prices for display. The backend's wire format
// is a plain number; formatting is display-only and always Indian
// Rupee with zero decimal places and en-IN digit grouping
// (₹1,00,000 rather than ₹100,000).
package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// inrPrinter applies en-IN locale rules: lakh/crore digit grouping.
// message.Printer is safe for concurrent use.
var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount as a rupee string with no fraction
// digits, e.g. FormatINR(150000) == "₹1,50,000". Amounts are rounded
// to the nearest rupee.
func FormatINR(amount float64) string {
	rounded := math.Round(amount)
	return "₹" + inrPrinter.Sprintf("%v", number.Decimal(rounded,
		number.MaxFractionDigits(0),
		number.MinFractionDigits(0),
	))
}
