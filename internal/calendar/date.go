// Package calendar implements the layout engine behind the dashboard's
// calendar-and-gantt view: visible range resolution, the padded month grid,
// greedy packing of overlapping project bars into week rows, and the two
// interaction state machines (range selection, click disambiguation).
//
// Everything here is pure with respect to its inputs. The current date is
// always passed in explicitly; nothing reads the ambient clock except the
// default timer of the click disambiguator, which is injectable.
package calendar

import (
	"time"

	"github.com/ganttlabs/ganttlog/internal/constants"
)

// DayKey formats a time as the canonical YYYY-MM-DD local-day key. Time of
// day is discarded; two instants on the same calendar day map to the same key.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDayKey parses a YYYY-MM-DD key into a normalized day value.
func ParseDayKey(s string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// StartOfDay truncates a time to midnight of its calendar day, preserving the
// location so day arithmetic stays on local calendar boundaries.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween returns the whole-day distance from a to b (negative when b is
// earlier). Both are normalized to UTC midnights first so daylight-saving
// transitions cannot skew the division.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua) / (24 * time.Hour))
}

// sameDay reports whether two times fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// dayBefore reports whether a's calendar day is strictly before b's.
func dayBefore(a, b time.Time) bool {
	return daysBetween(a, b) > 0
}
