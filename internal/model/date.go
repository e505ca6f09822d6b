// Package model defines the core data types shared across deeday.
package model

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// DateLayout is the ISO calendar date layout used for storage and input.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a string is not a valid yyyy-mm-dd date.
var ErrInvalidDate = errors.New("invalid date")

// Date is a calendar date with no time-of-day and no time zone.
// It marshals as yyyy-mm-dd. The zero value means "no date".
type Date struct {
	civil.Date
}

// NewDate returns the date for the given year, month and day.
// Out-of-range values are normalized the same way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	return Date{civil.DateOf(t)}
}

// Today returns the current local calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses an ISO yyyy-mm-dd string.
func ParseDate(s string) (Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q (want yyyy-mm-dd)", ErrInvalidDate, s)
	}
	return Date{d}, nil
}

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool {
	return d.Date == civil.Date{}
}

// Format formats d with a time.Format layout. Time-of-day verbs render as midnight.
func (d Date) Format(layout string) string {
	return d.In(time.UTC).Format(layout)
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	return d.Date.Before(o.Date)
}

// SameDay reports whether d and o fall on the same month and day, ignoring the year.
func (d Date) SameDay(o Date) bool {
	return d.Month == o.Month && d.Day == o.Day
}

// DaysUntil returns the number of calendar days from d to o.
// The result is negative when o is before d.
func (d Date) DaysUntil(o Date) int {
	return o.DaysSince(d.Date)
}

// IsLeapYear reports whether year has a February 29.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
