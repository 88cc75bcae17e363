// Package dates parses marketplace timestamps and walks calendar-day ranges.
package dates

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// Timestamp layouts used by the transactions API, tried in order.
// All are UTC with a literal Z suffix.
var layouts = []string{
	"2006-01-02T15:04:05.000000Z",
	"2006-01-02T15:04:05Z",
}

// DayFormat is the layout accepted for calendar-day flags and query params.
const DayFormat = "2006-01-02"

// Parse returns the instant encoded in s. It reports false for empty input
// or when no known layout matches; it never returns an error.
func Parse(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ParseDate returns the UTC calendar day of s, see Parse.
func ParseDate(s string) (civil.Date, bool) {
	t, ok := Parse(s)
	if !ok {
		return civil.Date{}, false
	}
	return civil.DateOf(t), true
}

// ParseDay parses a "YYYY-MM-DD" string.
func ParseDay(s string) (civil.Date, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return civil.Date{}, fmt.Errorf("parsing day %q: %w", s, err)
	}
	return civil.DateOf(t), nil
}

// InRange reports whether start <= d <= end.
func InRange(d, start, end civil.Date) bool {
	return !d.Before(start) && !d.After(end)
}

// Range returns every day from start to end inclusive, ascending.
// It is empty when end is before start.
func Range(start, end civil.Date) []civil.Date {
	if end.Before(start) {
		return nil
	}
	days := make([]civil.Date, 0, end.DaysSince(start)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// Today returns the current UTC calendar day.
func Today() civil.Date {
	return civil.DateOf(time.Now().UTC())
}

// Window resolves a report date range relative to today. An explicit from or
// to wins. Otherwise last > 0 selects today-last..today, and the fallback is
// the defaultDays days ending yesterday.
func Window(today civil.Date, from, to string, last, defaultDays int) (start, end civil.Date, err error) {
	switch {
	case last > 0:
		start, end = today.AddDays(-last), today
	default:
		start, end = today.AddDays(-defaultDays), today.AddDays(-1)
	}
	if from != "" {
		if start, err = ParseDay(from); err != nil {
			return civil.Date{}, civil.Date{}, err
		}
	}
	if to != "" {
		if end, err = ParseDay(to); err != nil {
			return civil.Date{}, civil.Date{}, err
		}
	}
	if end.Before(start) {
		return civil.Date{}, civil.Date{}, fmt.Errorf("end date %s is before start date %s", end, start)
	}
	return start, end, nil
}
