package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/calendar"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/dashboard"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/diary"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/period"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/progress"

	"github.com/spf13/cobra"
)

var (
	monthYear  int
	monthMonth int
	monthDay   int
	monthPick  bool
)

var weekdayHeader = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Show a month calendar",
}

var monthNutritionCmd = &cobra.Command{
	Use:   "nutrition",
	Short: "Meals calendar with daily calories and progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		year, monthIndex, err := periodFlags()
		if err != nil {
			return err
		}
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}

		page := dashboard.NewPage(a.service, year, monthIndex)
		page.SelectDay(monthDay)
		if monthPick {
			if err := pickPeriod(cmd.InOrStdin(), cmd.OutOrStdout(), page.Selector()); err != nil {
				return err
			}
		}

		month, err := page.Load(cmd.Context())
		if err != nil {
			return err
		}
		renderNutritionMonth(cmd.OutOrStdout(), month)
		return nil
	},
}

var monthWorkoutsCmd = &cobra.Command{
	Use:   "workouts",
	Short: "Workout calendar with completed sessions per day",
	RunE: func(cmd *cobra.Command, args []string) error {
		year, monthIndex, err := periodFlags()
		if err != nil {
			return err
		}
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}

		if monthPick {
			selector := period.NewSelector(year, func(y, m int) {
				year, monthIndex = y, m
			})
			if err := pickPeriod(cmd.InOrStdin(), cmd.OutOrStdout(), selector); err != nil {
				return err
			}
		}

		month, err := a.service.WorkoutMonth(cmd.Context(), year, monthIndex)
		if err != nil {
			return err
		}
		renderWorkoutMonth(cmd.OutOrStdout(), month)
		return nil
	},
}

// periodFlags resolves --year/--month (1..12) against the current month.
func periodFlags() (year, monthIndex int, err error) {
	now := time.Now()
	year, monthIndex = now.Year(), int(now.Month())-1
	if monthYear != 0 {
		year = monthYear
	}
	if monthMonth != 0 {
		monthIndex = monthMonth - 1
	}
	if err := calendar.ValidateMonth(monthIndex); err != nil {
		return 0, 0, fmt.Errorf("--month %d: %w", monthMonth, err)
	}
	return year, monthIndex, nil
}

// pickPeriod walks the selector through its year and month steps from input lines.
func pickPeriod(in io.Reader, out io.Writer, selector *period.Selector) error {
	reader := bufio.NewReader(in)
	readLine := func(prompt string) (string, error) {
		fmt.Fprint(out, prompt)
		line, err := reader.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			selector.Close()
			return "", fmt.Errorf("pick period: %w", err)
		}
		return strings.TrimSpace(line), nil
	}

	selector.Open()
	for selector.Step() != period.StepClosed {
		switch selector.Step() {
		case period.StepYear:
			years := period.YearOptions(selector.Year(), 3)
			fmt.Fprintf(out, "Years: %s\n", joinInts(years))
			line, err := readLine("Year: ")
			if err != nil {
				return err
			}
			year, err := strconv.Atoi(line)
			if err != nil {
				fmt.Fprintf(out, "invalid year %q\n", line)
				continue
			}
			if err := selector.SelectYear(year); err != nil {
				return err
			}
		case period.StepMonth:
			for i := 0; i < 12; i++ {
				fmt.Fprintf(out, "%2d %s\n", i+1, calendar.MonthName(i))
			}
			line, err := readLine(fmt.Sprintf("Month of %d (1-12, b = back): ", selector.Year()))
			if err != nil {
				return err
			}
			if line == "b" {
				if err := selector.BackToYear(); err != nil {
					return err
				}
				continue
			}
			month, err := strconv.Atoi(line)
			if err != nil {
				fmt.Fprintf(out, "invalid month %q\n", line)
				continue
			}
			if err := selector.SelectMonth(month - 1); errors.Is(err, period.ErrInvalidMonth) {
				fmt.Fprintf(out, "invalid month %d\n", month)
			} else if err != nil {
				return err
			}
		}
	}
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func renderNutritionMonth(out io.Writer, month *dashboard.NutritionMonth) {
	fmt.Fprintln(out, month.Title)
	grid := make([]calendar.Day[*diary.MealRecord], len(month.Days))
	for i, d := range month.Days {
		grid[i] = d.Day
	}
	renderWeeks(out, grid, func(i int) string {
		d := month.Days[i]
		switch {
		case !d.IsCurrentMonth:
			return fmt.Sprintf("(%2d)     ", d.DayNumber)
		case d.Totals.IsZero():
			return fmt.Sprintf(" %2d      ", d.DayNumber)
		default:
			return fmt.Sprintf(" %2d %5.0f", d.DayNumber, d.Totals.Calories)
		}
	})

	fmt.Fprintf(out, "Month: %s\n", formatTotals(month.Totals))
	fmt.Fprintf(out, "Day %d vs goal: %s\n", month.SelectedDay, formatReport(month.Progress))
}

func renderWorkoutMonth(out io.Writer, month *dashboard.WorkoutMonth) {
	fmt.Fprintln(out, month.Title)
	grid := make([]calendar.Day[*diary.WorkoutSession], len(month.Days))
	for i, d := range month.Days {
		grid[i] = d.Day
	}
	renderWeeks(out, grid, func(i int) string {
		d := month.Days[i]
		switch {
		case !d.IsCurrentMonth:
			return fmt.Sprintf("(%2d)     ", d.DayNumber)
		case d.Counts.TotalCount == 0:
			return fmt.Sprintf(" %2d      ", d.DayNumber)
		default:
			return fmt.Sprintf(" %2d %2d/%-2d", d.DayNumber, d.Counts.CompletedCount, d.Counts.TotalCount)
		}
	})
	fmt.Fprintf(out, "Sessions: %d completed of %d\n", month.Counts.CompletedCount, month.Counts.TotalCount)
}

// renderWeeks prints the weekday header and one line per grid week, cell
// renders the grid cell at index i.
func renderWeeks[T diary.LoggedItem](out io.Writer, grid []calendar.Day[T], cell func(i int) string) {
	for _, name := range weekdayHeader {
		fmt.Fprintf(out, " %-9s", name)
	}
	fmt.Fprintln(out)
	for w, week := range calendar.Weeks(grid) {
		cells := make([]string, len(week))
		for j := range week {
			cells[j] = cell(w*calendar.DaysPerWeek + j)
		}
		fmt.Fprintln(out, strings.Join(cells, " "))
	}
}

func formatTotals(t diary.NutrientTotals) string {
	return fmt.Sprintf("%.0f kcal | P %.1fg | C %.1fg | F %.1fg | Fiber %.1fg | Water %.0fml",
		t.Calories, t.Protein, t.Carbs, t.Fats, t.Fiber, t.Water)
}

func formatReport(r progress.Report) string {
	return fmt.Sprintf("kcal %d%% | P %d%% | C %d%% | F %d%% | Fiber %d%% | Water %d%%",
		progress.DisplayRound(r.Calories),
		progress.DisplayRound(r.Protein),
		progress.DisplayRound(r.Carbs),
		progress.DisplayRound(r.Fats),
		progress.DisplayRound(r.Fiber),
		progress.DisplayRound(r.Water),
	)
}

func init() {
	for _, cmd := range []*cobra.Command{monthNutritionCmd, monthWorkoutsCmd} {
		cmd.Flags().IntVar(&monthYear, "year", 0, "year (default current)")
		cmd.Flags().IntVar(&monthMonth, "month", 0, "month 1-12 (default current)")
		cmd.Flags().BoolVar(&monthPick, "pick", false, "pick the year and month interactively")
		monthCmd.AddCommand(cmd)
	}
	monthNutritionCmd.Flags().IntVar(&monthDay, "day", 0, "day whose progress is shown (default today or the 1st)")
	rootCmd.AddCommand(monthCmd)
}
