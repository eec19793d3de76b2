package calendar

import (
	"fmt"
	"time"

	"github.com/ganttlabs/ganttlog/internal/models"
)

// CellView is one rendered grid cell with everything the display layer needs
// to style it. Derived fresh each render pass; never stored.
type CellView struct {
	Blank          bool   `json:"blank,omitempty"`
	Day            int    `json:"day,omitempty"`
	Date           string `json:"date,omitempty"`
	Weekday        string `json:"weekday,omitempty"`
	HasEntry       bool   `json:"has_entry,omitempty"`
	Today          bool   `json:"today,omitempty"`
	InSelection    bool   `json:"in_selection,omitempty"`
	SelectionStart bool   `json:"selection_start,omitempty"`
}

// WeekView is one grid row plus the project bars packed beneath it.
type WeekView struct {
	Cells   []CellView  `json:"cells"`
	Bars    []PackedBar `json:"bars,omitempty"`
	BarRows int         `json:"bar_rows"`
}

// MonthView is one month's grid.
type MonthView struct {
	Anchor string     `json:"anchor"` // first day of the month
	Label  string     `json:"label"`
	Weeks  []WeekView `json:"weeks"`
}

// RangeView is the visible window in wire form.
type RangeView struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

// View is the full calendar-and-gantt view model for one render pass.
type View struct {
	Granularity Granularity `json:"view"`
	Label       string      `json:"label"`
	Range       RangeView   `json:"range"`
	Months      []MonthView `json:"months"`
	Gantt       []GanttRow  `json:"gantt"`
}

// BuildView derives the complete view model from the current snapshot. The
// caller supplies today explicitly so rendering stays pure; running BuildView
// twice on identical inputs yields identical output.
func BuildView(anchor, today time.Time, g Granularity, projects []models.Project, entries []models.DailyEntry, sel *Selection) View {
	rng := Resolve(anchor, g)
	bars := ProjectBars(projects)

	entryDays := make(map[string]bool, len(entries))
	for _, e := range entries {
		entryDays[e.Date] = true
	}

	var months []MonthView
	for _, monthAnchor := range monthAnchors(anchor, g) {
		months = append(months, buildMonth(monthAnchor, today, bars, entryDays, sel))
	}

	return View{
		Granularity: g,
		Label:       rangeLabel(anchor, g),
		Range:       RangeView{Start: DayKey(rng.Start), End: DayKey(rng.End), Days: rng.Days},
		Months:      months,
		Gantt:       GanttRows(rng, projects),
	}
}

func buildMonth(anchor, today time.Time, bars []BarItem, entryDays map[string]bool, sel *Selection) MonthView {
	year, month, _ := anchor.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, anchor.Location())

	var weeks []WeekView
	for _, week := range MonthGrid(anchor) {
		wv := WeekView{Cells: make([]CellView, 0, len(week.Cells))}
		for _, cell := range week.Cells {
			if cell.Blank {
				wv.Cells = append(wv.Cells, CellView{Blank: true})
				continue
			}
			key := DayKey(cell.Date)
			wv.Cells = append(wv.Cells, CellView{
				Day:            cell.Day,
				Date:           key,
				Weekday:        cell.Date.Weekday().String()[:3],
				HasEntry:       entryDays[key],
				Today:          sameDay(cell.Date, today),
				InSelection:    sel != nil && sel.Contains(key),
				SelectionStart: sel != nil && sel.IsStart(key),
			})
		}
		wv.Bars, wv.BarRows = PackWeek(week.Span, bars)
		weeks = append(weeks, wv)
	}

	return MonthView{
		Anchor: DayKey(first),
		Label:  first.Format("January 2006"),
		Weeks:  weeks,
	}
}

// monthAnchors lists the first day of every month the view shows: one for
// month view, three for quarter, twelve for year.
func monthAnchors(anchor time.Time, g Granularity) []time.Time {
	year, month, _ := anchor.Date()
	loc := anchor.Location()

	switch g {
	case ViewYear:
		anchors := make([]time.Time, 12)
		for i := range anchors {
			anchors[i] = time.Date(year, time.Month(i+1), 1, 0, 0, 0, 0, loc)
		}
		return anchors
	case ViewQuarter:
		quarterStart := time.Month((int(month)-1)/3*3 + 1)
		anchors := make([]time.Time, 3)
		for i := range anchors {
			anchors[i] = time.Date(year, quarterStart+time.Month(i), 1, 0, 0, 0, 0, loc)
		}
		return anchors
	default:
		return []time.Time{time.Date(year, month, 1, 0, 0, 0, 0, loc)}
	}
}

func rangeLabel(anchor time.Time, g Granularity) string {
	switch g {
	case ViewYear:
		return fmt.Sprintf("%d", anchor.Year())
	case ViewQuarter:
		return fmt.Sprintf("%d Q%d", anchor.Year(), (int(anchor.Month())-1)/3+1)
	default:
		return anchor.Format("January 2006")
	}
}
