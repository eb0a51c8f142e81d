// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"time"
)

// FormatMoney renders an amount with the configured currency symbol and
// two decimal places, e.g. "$12.50".
func FormatMoney(currency string, v float64) string {
	return fmt.Sprintf("%s%.2f", currency, v)
}

// FormatDate renders a record timestamp for list output.
// Today's records show only the time; older ones show the date.
func FormatDate(t time.Time) string {
	now := time.Now()
	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return t.Format("15:04")
	}
	if t.Year() == now.Year() {
		return t.Format("Jan 2 15:04")
	}
	return t.Format("2006-01-02")
}

// FormatCount renders a record count with its noun, e.g. "3 records".
func FormatCount(n int) string {
	if n == 1 {
		return "1 record"
	}
	return fmt.Sprintf("%d records", n)
}
