package domain

import (
	"fmt"
	"time"
)

// DateLayout is the display layout for every rendered date (dd/MM/yyyy).
const DateLayout = "02/01/2006"

// FormatDate renders a date as dd/MM/yyyy. Zero dates render empty.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// ParseDate parses a dd/MM/yyyy date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatAmount renders a monetary amount with two decimals and the euro
// marker, e.g. "8.00 €".
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f €", amount)
}
