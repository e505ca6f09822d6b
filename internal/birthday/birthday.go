// Package birthday computes how far away each member's next birthday is.
package birthday

import (
	"fmt"
	"sort"
	"time"

	"github.com/theirongolddev/deeday/internal/model"
)

// Info describes a member's next birthday relative to a given day.
type Info struct {
	Next      model.Date // date of the next (or current) birthday
	DaysUntil int        // 0 means today
	Age       int        // age reached on Next
}

// IsToday reports whether the birthday falls on the reference day.
func (i Info) IsToday() bool {
	return i.DaysUntil == 0
}

// Message returns the human-readable status line.
func (i Info) Message() string {
	if i.IsToday() {
		return fmt.Sprintf("🎉 Happy Birthday! Turning %d today!", i.Age)
	}
	return fmt.Sprintf("%d day(s) away – turning %d", i.DaysUntil, i.Age)
}

// Anniversary returns the birthday celebrated in year.
// Feb 29 birthdays are celebrated on Feb 28 in non-leap years.
func Anniversary(birth model.Date, year int) model.Date {
	if birth.Month == time.February && birth.Day == 29 && !model.IsLeapYear(year) {
		return model.NewDate(year, time.February, 28)
	}
	return model.NewDate(year, birth.Month, birth.Day)
}

// Compute returns the next birthday for birth as seen from today.
func Compute(birth, today model.Date) Info {
	candidate := Anniversary(birth, today.Year)

	if candidate.SameDay(today) {
		return Info{
			Next: candidate,
			Age:  today.Year - birth.Year,
		}
	}

	if candidate.Before(today) {
		candidate = Anniversary(birth, today.Year+1)
	}

	return Info{
		Next:      candidate,
		DaysUntil: today.DaysUntil(candidate),
		Age:       candidate.Year - birth.Year,
	}
}

// Entry pairs a member with their computed birthday info.
type Entry struct {
	Member model.Member
	Info   Info
}

// Annotate computes Info for every member, preserving roster order.
func Annotate(members []model.Member, today model.Date) []Entry {
	entries := make([]Entry, len(members))
	for i, m := range members {
		entries[i] = Entry{Member: m, Info: Compute(m.Birthdate, today)}
	}
	return entries
}

// SortByNext orders entries soonest-first. Ties keep their roster order.
func SortByNext(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Info.DaysUntil < entries[j].Info.DaysUntil
	})
}

// Within returns the entries whose birthday is at most days away.
func Within(entries []Entry, days int) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Info.DaysUntil <= days {
			out = append(out, e)
		}
	}
	return out
}
