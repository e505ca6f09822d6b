// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/deeday/internal/model"
)

// FormatBirthday formats a birthdate as month name and day, without the year.
// e.g., 1990-03-05 -> "March 5"
func FormatBirthday(d model.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Format("January 2")
}

// FormatCountdown formats a days-until value compactly.
// e.g., 0 -> "today", 1 -> "tomorrow", 12 -> "in 12 days"
func FormatCountdown(days int) string {
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}

// FormatWeekday returns the 3-letter weekday of d.
func FormatWeekday(d model.Date) string {
	return d.Format("Mon")
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// Plural returns "1 member" / "3 members" style counts.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return FormatNumber(int64(n)) + " " + plural
}
