package timeseries

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the layout used for every date this package writes.
const DateLayout = "2006-01-02"

// dateLayouts are tried in order when parsing input dates.
var dateLayouts = []string{
	DateLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// DaysFrom returns n consecutive days beginning at start.
func DaysFrom(start time.Time, n int) []time.Time {
	days := make([]time.Time, n)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// FutureDates returns the n calendar days that follow last.
func FutureDates(last time.Time, n int) []time.Time {
	return DaysFrom(Day(last).AddDate(0, 0, 1), n)
}

// ParseDate parses s with the preferred layout first, then the fallbacks.
func ParseDate(s, preferred string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if preferred != "" {
		if ts, err := time.Parse(preferred, s); err == nil {
			return Day(ts), nil
		}
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return Day(ts), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
