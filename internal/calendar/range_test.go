package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveMonth(t *testing.T) {
	r := Resolve(date(2024, time.March, 15), ViewMonth)

	if got := DayKey(r.Start); got != "2024-03-01" {
		t.Errorf("start = %s, want 2024-03-01", got)
	}
	if got := DayKey(r.End); got != "2024-03-31" {
		t.Errorf("end = %s, want 2024-03-31", got)
	}
	if r.Days != 31 {
		t.Errorf("days = %d, want 31", r.Days)
	}
}

func TestResolveMonthFebruary(t *testing.T) {
	t.Run("leap year", func(t *testing.T) {
		r := Resolve(date(2024, time.February, 10), ViewMonth)
		if r.Days != 29 {
			t.Errorf("days = %d, want 29", r.Days)
		}
		if got := DayKey(r.End); got != "2024-02-29" {
			t.Errorf("end = %s, want 2024-02-29", got)
		}
	})

	t.Run("non-leap year", func(t *testing.T) {
		r := Resolve(date(2023, time.February, 10), ViewMonth)
		if r.Days != 28 {
			t.Errorf("days = %d, want 28", r.Days)
		}
	})
}

func TestResolveQuarter(t *testing.T) {
	tests := []struct {
		ref        time.Time
		start, end string
		days       int
	}{
		{date(2024, time.January, 20), "2024-01-01", "2024-03-31", 91},
		{date(2024, time.May, 1), "2024-04-01", "2024-06-30", 91},
		{date(2024, time.September, 30), "2024-07-01", "2024-09-30", 92},
		{date(2024, time.December, 31), "2024-10-01", "2024-12-31", 92},
		// Q1 of a non-leap year is one day shorter
		{date(2023, time.February, 14), "2023-01-01", "2023-03-31", 90},
	}

	for _, tt := range tests {
		r := Resolve(tt.ref, ViewQuarter)
		if got := DayKey(r.Start); got != tt.start {
			t.Errorf("Resolve(%s, quarter) start = %s, want %s", DayKey(tt.ref), got, tt.start)
		}
		if got := DayKey(r.End); got != tt.end {
			t.Errorf("Resolve(%s, quarter) end = %s, want %s", DayKey(tt.ref), got, tt.end)
		}
		if r.Days != tt.days {
			t.Errorf("Resolve(%s, quarter) days = %d, want %d", DayKey(tt.ref), r.Days, tt.days)
		}
	}
}

func TestResolveYear(t *testing.T) {
	t.Run("leap year has 366 days", func(t *testing.T) {
		r := Resolve(date(2024, time.June, 1), ViewYear)
		if r.Days != 366 {
			t.Errorf("days = %d, want 366", r.Days)
		}
		if DayKey(r.Start) != "2024-01-01" || DayKey(r.End) != "2024-12-31" {
			t.Errorf("range = %s..%s, want full year", DayKey(r.Start), DayKey(r.End))
		}
	})

	t.Run("non-leap year has 365 days", func(t *testing.T) {
		r := Resolve(date(2023, time.June, 1), ViewYear)
		if r.Days != 365 {
			t.Errorf("days = %d, want 365", r.Days)
		}
	})

	t.Run("century non-leap year", func(t *testing.T) {
		r := Resolve(date(1900, time.June, 1), ViewYear)
		if r.Days != 365 {
			t.Errorf("days = %d, want 365", r.Days)
		}
	})
}

// Day count must always equal the exact inclusive span between start and end,
// for every granularity and a spread of reference dates.
func TestResolveDayCountMatchesSpan(t *testing.T) {
	refs := []time.Time{
		date(2020, time.February, 29),
		date(2023, time.January, 1),
		date(2024, time.July, 4),
		date(2025, time.December, 31),
		date(1999, time.October, 9),
	}

	for _, ref := range refs {
		for _, g := range []Granularity{ViewMonth, ViewQuarter, ViewYear} {
			r := Resolve(ref, g)
			if r.End.Before(r.Start) {
				t.Errorf("Resolve(%s, %s): end before start", DayKey(ref), g)
			}
			if span := daysBetween(r.Start, r.End) + 1; r.Days != span {
				t.Errorf("Resolve(%s, %s): days = %d, span = %d", DayKey(ref), g, r.Days, span)
			}
		}
	}
}

func TestResolveIsPure(t *testing.T) {
	ref := date(2024, time.March, 15)
	a := Resolve(ref, ViewQuarter)
	b := Resolve(ref, ViewQuarter)
	if a != b {
		t.Errorf("repeated Resolve differs: %+v vs %+v", a, b)
	}
}

func TestGranularityValid(t *testing.T) {
	for _, g := range []Granularity{ViewMonth, ViewQuarter, ViewYear} {
		if !g.Valid() {
			t.Errorf("%s should be valid", g)
		}
	}
	if Granularity("week").Valid() {
		t.Error("week should not be valid")
	}
}
