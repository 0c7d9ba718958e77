// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package money

import "testing"

func TestFormatINRSmallAmount(t *testing.T) {
	if got := FormatINR(499); got != "₹499" {
		t.Errorf("FormatINR(499) = %q, want ₹499", got)
	}
}

func TestFormatINRIndianGrouping(t *testing.T) {
	// en-IN groups by lakh/crore: 1,50,000 not 150,000.
	if got := FormatINR(150000); got != "₹1,50,000" {
		t.Errorf("FormatINR(150000) = %q, want ₹1,50,000", got)
	}
}

func TestFormatINRRoundsFractions(t *testing.T) {
	if got := FormatINR(999.6); got != "₹1,000" {
		t.Errorf("FormatINR(999.6) = %q, want ₹1,000", got)
	}
}

func TestFormatINRZero(t *testing.T) {
	if got := FormatINR(0); got != "₹0" {
		t.Errorf("FormatINR(0) = %q, want ₹0", got)
	}
}
