package calendar

import (
	"sort"
	"time"

	"github.com/ganttlabs/ganttlog/internal/constants"
	"github.com/ganttlabs/ganttlog/internal/models"
)

// BarItem is a date-ranged item to be packed into week rows. Start and End
// are inclusive calendar days.
type BarItem struct {
	ID    string
	Start time.Time
	End   time.Time
}

// PackedBar is an item's clipped column span plus its assigned visual row
// within one week. Columns are 1-based and inclusive on both ends.
type PackedBar struct {
	ID       string `json:"id"`
	StartCol int    `json:"start_col"`
	EndCol   int    `json:"end_col"`
	Row      int    `json:"row"`
}

// PackWeek assigns every item overlapping the week span to the lowest-indexed
// visual row that is free by the time the item begins, returning the packed
// bars and the number of rows used. Items are processed in start-date order
// (stable, so identical starts keep their given order, which decides who gets
// the lower row). Row state is per call: packing deliberately resets each
// week rather than carrying rows across the whole visible range, matching the
// visual grouping by week rows.
//
// Items whose end precedes their start are treated as zero-width and dropped.
func PackWeek(span WeekSpan, items []BarItem) ([]PackedBar, int) {
	sorted := make([]BarItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return dayBefore(sorted[i].Start, sorted[j].Start)
	})

	var bars []PackedBar
	var rowEnds []time.Time
	for _, item := range sorted {
		if dayBefore(item.End, item.Start) {
			continue
		}
		if dayBefore(item.End, span.Start) || dayBefore(span.End, item.Start) {
			continue
		}

		clampedStart := item.Start
		if dayBefore(clampedStart, span.Start) {
			clampedStart = span.Start
		}
		clampedEnd := item.End
		if dayBefore(span.End, clampedEnd) {
			clampedEnd = span.End
		}

		row := -1
		for i, end := range rowEnds {
			if dayBefore(end, clampedStart) {
				row = i
				break
			}
		}
		if row == -1 {
			row = len(rowEnds)
			rowEnds = append(rowEnds, clampedEnd)
		} else {
			rowEnds[row] = clampedEnd
		}

		bars = append(bars, PackedBar{
			ID:       item.ID,
			StartCol: daysBetween(span.Start, clampedStart) + 1,
			EndCol:   daysBetween(span.Start, clampedEnd) + 1,
			Row:      row,
		})
	}
	return bars, len(rowEnds)
}

// GanttRow is one project bar across the full visible range: no row packing,
// one track per project, with display-time progress clamping.
type GanttRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Progress int    `json:"progress"`
	StartCol int    `json:"start_col"`
	EndCol   int    `json:"end_col"`
}

// GanttRows clips each project to the visible range and converts it to
// 1-based column spans. Projects outside the range, with unparsable dates, or
// with reversed ranges are skipped. The stored progress value is untouched;
// clamping applies to the rendered row only.
func GanttRows(rng VisibleRange, projects []models.Project) []GanttRow {
	var rows []GanttRow
	for _, p := range projects {
		item, ok := projectBar(p)
		if !ok {
			continue
		}
		if dayBefore(item.End, rng.Start) || dayBefore(rng.End, item.Start) {
			continue
		}

		clampedStart := item.Start
		if dayBefore(clampedStart, rng.Start) {
			clampedStart = rng.Start
		}
		clampedEnd := item.End
		if dayBefore(rng.End, clampedEnd) {
			clampedEnd = rng.End
		}

		rows = append(rows, GanttRow{
			ID:       p.ID,
			Name:     p.Name,
			Color:    displayColor(p.Color),
			Progress: ClampProgress(p.Progress),
			StartCol: daysBetween(rng.Start, clampedStart) + 1,
			EndCol:   daysBetween(rng.Start, clampedEnd) + 1,
		})
	}
	return rows
}

// ClampProgress bounds a progress value to [0, 100] for display.
func ClampProgress(p int) int {
	if p < constants.MinProgress {
		return constants.MinProgress
	}
	if p > constants.MaxProgress {
		return constants.MaxProgress
	}
	return p
}

// projectBar converts a project to a packable item. Unparsable or reversed
// date ranges yield ok=false; layout degrades rather than failing.
func projectBar(p models.Project) (BarItem, bool) {
	start, err := ParseDayKey(p.StartDate)
	if err != nil {
		return BarItem{}, false
	}
	end, err := ParseDayKey(p.EndDate)
	if err != nil {
		return BarItem{}, false
	}
	if dayBefore(end, start) {
		return BarItem{}, false
	}
	return BarItem{ID: p.ID, Start: start, End: end}, true
}

func displayColor(c string) string {
	if c == "" {
		return constants.DefaultProjectColor
	}
	return c
}

// ProjectBars converts projects to packable items, dropping any whose dates
// cannot be parsed or whose end precedes their start.
func ProjectBars(projects []models.Project) []BarItem {
	items := make([]BarItem, 0, len(projects))
	for _, p := range projects {
		if item, ok := projectBar(p); ok {
			items = append(items, item)
		}
	}
	return items
}
