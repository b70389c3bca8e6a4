// Package booking holds the cabin date-selection core: availability checks against
// booked days, the stay-length policy, the selection held for one booking session,
// and the price summary derived from it. Nothing here performs I/O.
package booking

import (
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

const hoursPerDay = 24

// Day returns the calendar day of t as midnight UTC. The year, month and day are
// read in t's own location, so time-of-day and zone never shift the day.
func Day(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// DaysBetween is the number of whole calendar days from `from` to `to`.
// It is negative when to is before from.
func DaysBetween(to, from time.Time) int {
	return int(Day(to).Sub(Day(from)).Hours() / hoursPerDay)
}

// ParseDay parses "YYYY-MM-DD". RFC3339 timestamps are accepted too and reduced to
// their calendar day.
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dayLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// FormatDay renders a calendar day as "YYYY-MM-DD"; unset days render empty.
func FormatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return Day(t).Format(dayLayout)
}

// EachDay lists every calendar day from start to end inclusive.
func EachDay(start, end time.Time) []time.Time {
	start, end = Day(start), Day(end)
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil
	}
	days := make([]time.Time, 0, DaysBetween(end, start)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Range is a possibly partial date selection. A zero endpoint means "not chosen yet".
type Range struct {
	From time.Time
	To   time.Time
}

// NewRange builds a range normalized to calendar days, with endpoints in order.
func NewRange(from, to time.Time) Range {
	return Range{From: Day(from), To: Day(to)}.ordered()
}

func (r Range) ordered() Range {
	if r.IsComplete() && r.To.Before(r.From) {
		r.From, r.To = r.To, r.From
	}
	return r
}

// IsEmpty reports whether neither endpoint is set.
func (r Range) IsEmpty() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// IsComplete reports whether both endpoints are set.
func (r Range) IsComplete() bool {
	return !r.From.IsZero() && !r.To.IsZero()
}

// Nights is the night count of a complete range, never negative.
func (r Range) Nights() int {
	if !r.IsComplete() {
		return 0
	}
	n := DaysBetween(r.To, r.From)
	if n < 0 {
		return 0
	}
	return n
}

// Contains reports whether day lies in the closed interval [From, To].
func (r Range) Contains(day time.Time) bool {
	if !r.IsComplete() {
		return false
	}
	d := Day(day)
	return !d.Before(Day(r.From)) && !d.After(Day(r.To))
}

func (r Range) String() string {
	return FormatDay(r.From) + ".." + FormatDay(r.To)
}
