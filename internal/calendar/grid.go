// Package calendar builds the Monday-aligned month grid behind the calendar
// view: every day of the target month plus the trailing days of the previous
// month and leading days of the next month needed to fill complete weeks.
package calendar

import "time"

// Cell is one day-cell of a month grid.
type Cell struct {
	Date    time.Time `json:"date"`
	Day     int       `json:"day"`
	InMonth bool      `json:"in_month"`
}

// MonthGrid returns the ordered day-cells for rendering the given month,
// weeks starting Monday. The result length is always a positive multiple of
// seven, and every day of the target month appears exactly once with InMonth
// set.
func MonthGrid(year int, month time.Month) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// time.Weekday has Sunday = 0; shift so Monday maps to offset 0.
	startOffset := (int(first.Weekday()) + 6) % 7
	totalCells := ((startOffset + daysInMonth + 6) / 7) * 7

	cells := make([]Cell, totalCells)
	for i := range cells {
		d := first.AddDate(0, 0, i-startOffset)
		cells[i] = Cell{
			Date:    d,
			Day:     d.Day(),
			InMonth: d.Year() == year && d.Month() == month,
		}
	}
	return cells
}

// SameDay reports whether two instants fall on the same calendar day,
// ignoring time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
