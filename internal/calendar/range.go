package calendar

import "time"

// Granularity selects how wide a visible window Resolve computes.
type Granularity string

const (
	ViewMonth   Granularity = "month"
	ViewQuarter Granularity = "quarter"
	ViewYear    Granularity = "year"
)

// Valid reports whether g is one of the supported view granularities.
func (g Granularity) Valid() bool {
	switch g {
	case ViewMonth, ViewQuarter, ViewYear:
		return true
	}
	return false
}

// VisibleRange is the inclusive start/end window currently rendered, plus its
// whole-day count. It is derived per render pass and never stored.
type VisibleRange struct {
	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
	Days  int       `json:"days"`
}

// Contains reports whether the given day falls inside the range.
func (r VisibleRange) Contains(t time.Time) bool {
	return !dayBefore(t, r.Start) && !dayBefore(r.End, t)
}

// Resolve computes the visible window for a reference date at the given
// granularity. It succeeds for any valid calendar date.
//
//	month:   first through last day of the reference's month
//	quarter: first day of the quarter's first month through last day of its third
//	year:    Jan 1 through Dec 31, 365 or 366 days
func Resolve(ref time.Time, g Granularity) VisibleRange {
	year, month, _ := ref.Date()
	loc := ref.Location()

	switch g {
	case ViewYear:
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		end := time.Date(year, time.December, 31, 0, 0, 0, 0, loc)
		days := 365
		// Feb 29 normalizes to Mar 1 in non-leap years.
		if time.Date(year, time.February, 29, 0, 0, 0, 0, loc).Month() == time.February {
			days = 366
		}
		return VisibleRange{Start: start, End: end, Days: days}

	case ViewQuarter:
		quarterStart := time.Month((int(month)-1)/3*3 + 1)
		start := time.Date(year, quarterStart, 1, 0, 0, 0, 0, loc)
		end := time.Date(year, quarterStart+3, 0, 0, 0, 0, 0, loc)
		return VisibleRange{Start: start, End: end, Days: daysBetween(start, end) + 1}

	default: // month
		start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
		end := time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
		return VisibleRange{Start: start, End: end, Days: end.Day()}
	}
}
