package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func daysIn(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}

// TestMonthGrid_March2024 walks a worked example: March 2024 has 31 days and
// starts on a Friday, so the grid opens with four February cells (26..29,
// 2024 is a leap year) and lands on exactly five full weeks.
func TestMonthGrid_March2024(t *testing.T) {
	cells := MonthGrid(2024, time.March)

	require.Len(t, cells, 35)

	for i, want := range []int{26, 27, 28, 29} {
		assert.Equal(t, want, cells[i].Day)
		assert.False(t, cells[i].InMonth)
		assert.Equal(t, time.February, cells[i].Date.Month())
	}

	for i := 0; i < 31; i++ {
		cell := cells[4+i]
		assert.Equal(t, i+1, cell.Day)
		assert.True(t, cell.InMonth)
		assert.Equal(t, time.March, cell.Date.Month())
	}

	// 4 + 31 is already a multiple of 7, so no trailing April cells.
	assert.Equal(t, 31, cells[34].Day)
	assert.True(t, cells[34].InMonth)
}

func TestMonthGrid_TrailingNextMonth(t *testing.T) {
	// May 2024 starts on a Wednesday and ends on a Friday, so the grid
	// carries both leading April and trailing June cells.
	cells := MonthGrid(2024, time.May)

	require.Len(t, cells, 35)
	assert.Equal(t, 29, cells[0].Day)
	assert.Equal(t, time.April, cells[0].Date.Month())
	assert.Equal(t, 2, cells[34].Day)
	assert.Equal(t, time.June, cells[34].Date.Month())
	assert.False(t, cells[34].InMonth)
}

func TestMonthGrid_Properties(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		for month := time.January; month <= time.December; month++ {
			cells := MonthGrid(year, month)

			require.NotEmpty(t, cells)
			require.Zero(t, len(cells)%7, "%d-%d: length %d not a multiple of 7", year, month, len(cells))

			// The first cell is Monday-aligned.
			assert.Equal(t, time.Monday, cells[0].Date.Weekday())

			// Every day of the target month appears exactly once, in
			// order, marked as current.
			var current []int
			firstCurrent := -1
			for i, cell := range cells {
				if cell.InMonth {
					if firstCurrent == -1 {
						firstCurrent = i
					}
					current = append(current, cell.Day)
				}
				assert.Equal(t, cell.Date.Day(), cell.Day)
			}

			days := daysIn(year, month)
			require.Len(t, current, days)
			for i, day := range current {
				assert.Equal(t, i+1, day)
			}

			// Leading cells count the last startOffset days of the
			// previous month, in order.
			prev := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
			prevDays := daysIn(prev.Year(), prev.Month())
			for i := 0; i < firstCurrent; i++ {
				assert.Equal(t, prevDays-firstCurrent+i+1, cells[i].Day)
				assert.False(t, cells[i].InMonth)
			}
		}
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, time.March, 5, 8, 0, 0, 0, time.UTC)
	night := time.Date(2024, time.March, 5, 23, 59, 59, 0, time.UTC)
	next := time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, night))
	assert.False(t, SameDay(night, next))
}
