package calendar

import (
	"errors"
	"time"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/diary"
)

const (
	// GridCells is the fixed size of a month grid: 5 weeks of 7 days.
	GridCells   = 35
	DaysPerWeek = 7
)

var ErrInvalidMonth = errors.New("month index must be in range 0..11")

// Day is one cell of a month grid. Filler cells from the neighbouring
// months are never current and never carry records.
type Day[T diary.LoggedItem] struct {
	DayNumber      int  `json:"dayNumber"`
	IsCurrentMonth bool `json:"isCurrentMonth"`
	Records        []T  `json:"records"`
}

// BuildMonthGrid lays out a month (monthIndex is zero-based) on a
// Monday-first grid of exactly GridCells cells: trailing days of the
// previous month, every day of the month with its records, then leading
// days of the next month. Months that would spill into a sixth week are
// cut off at GridCells.
func BuildMonthGrid[T diary.LoggedItem](year, monthIndex int, recordsByDay map[int][]T) ([]Day[T], error) {
	if err := ValidateMonth(monthIndex); err != nil {
		return nil, err
	}

	first := firstOfMonth(year, monthIndex)
	leading := (int(first.Weekday()) + 6) % DaysPerWeek
	lastOfPrev := first.AddDate(0, 0, -1).Day()
	days := DaysInMonth(year, monthIndex)

	grid := make([]Day[T], 0, GridCells)
	for i := leading - 1; i >= 0; i-- {
		grid = append(grid, Day[T]{
			DayNumber: lastOfPrev - i,
			Records:   []T{},
		})
	}

	for d := 1; d <= days && len(grid) < GridCells; d++ {
		records := make([]T, len(recordsByDay[d]))
		copy(records, recordsByDay[d])
		grid = append(grid, Day[T]{
			DayNumber:      d,
			IsCurrentMonth: true,
			Records:        records,
		})
	}

	for next := 1; len(grid) < GridCells; next++ {
		grid = append(grid, Day[T]{
			DayNumber: next,
			Records:   []T{},
		})
	}

	return grid, nil
}

// Weeks splits a grid into rows of DaysPerWeek cells.
func Weeks[T diary.LoggedItem](grid []Day[T]) [][]Day[T] {
	var weeks [][]Day[T]
	for start := 0; start < len(grid); start += DaysPerWeek {
		end := min(start+DaysPerWeek, len(grid))
		weeks = append(weeks, grid[start:end])
	}
	return weeks
}

// BucketByDay groups items falling into the given month by day of month.
// Items of other months are dropped.
func BucketByDay[T diary.LoggedItem](items []T, year, monthIndex int) map[int][]T {
	buckets := make(map[int][]T)
	for _, item := range items {
		day := item.Day()
		if day.Year() != year || int(day.Month())-1 != monthIndex {
			continue
		}
		buckets[day.Day()] = append(buckets[day.Day()], item)
	}
	return buckets
}

func firstOfMonth(year, monthIndex int) time.Time {
	return time.Date(year, time.Month(monthIndex+1), 1, 0, 0, 0, 0, time.UTC)
}

// AggregateDays computes the nutrient totals of every cell of a meal grid.
// Filler cells carry no records and so always total zero.
func AggregateDays(grid []Day[*diary.MealRecord]) []diary.NutrientTotals {
	totals := make([]diary.NutrientTotals, len(grid))
	for i, d := range grid {
		totals[i] = diary.AggregateMeals(d.Records)
	}
	return totals
}
