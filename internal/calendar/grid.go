package calendar

import "time"

// Cell is one slot of the month grid: either a blank used to pad the first
// and last rows to full weeks, or a concrete day of the month.
type Cell struct {
	Blank bool
	Day   int
	Date  time.Time
}

// WeekSpan is the date window covered by one grid row. In the month grid it
// is clipped to the month (first through last non-blank day of the row); the
// whole-range gantt computation does not use week spans at all.
type WeekSpan struct {
	Start time.Time
	End   time.Time
}

// Week is one row of the month grid: exactly seven cells plus the clipped
// span of real days it covers.
type Week struct {
	Cells []Cell
	Span  WeekSpan
}

// MonthGrid lays out the month containing anchor as week rows of seven cells.
// Leading blanks align day 1 to its weekday column (Sunday first), trailing
// blanks pad the final row, so the matrix is always rectangular and the total
// cell count is a multiple of seven.
func MonthGrid(anchor time.Time) []Week {
	year, month, _ := anchor.Date()
	loc := anchor.Location()

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	totalDays := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	leading := int(first.Weekday())

	cellCount := leading + totalDays
	if rem := cellCount % 7; rem != 0 {
		cellCount += 7 - rem
	}

	cells := make([]Cell, cellCount)
	for day := 1; day <= totalDays; day++ {
		cells[leading+day-1] = Cell{
			Day:  day,
			Date: time.Date(year, month, day, 0, 0, 0, 0, loc),
		}
	}
	for i := 0; i < leading; i++ {
		cells[i].Blank = true
	}
	for i := leading + totalDays; i < cellCount; i++ {
		cells[i].Blank = true
	}

	weeks := make([]Week, 0, cellCount/7)
	for i := 0; i < cellCount; i += 7 {
		row := cells[i : i+7]
		weeks = append(weeks, Week{Cells: row, Span: rowSpan(row)})
	}
	return weeks
}

// rowSpan finds the first and last non-blank days of a row. Padding never
// fills an entire row, so every row has a valid span.
func rowSpan(row []Cell) WeekSpan {
	var span WeekSpan
	for _, c := range row {
		if !c.Blank {
			span.Start = c.Date
			break
		}
	}
	for i := len(row) - 1; i >= 0; i-- {
		if !row[i].Blank {
			span.End = row[i].Date
			break
		}
	}
	return span
}
