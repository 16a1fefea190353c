package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the day's intake and goal progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := time.Now()
		if todayDate != "" {
			parsed, err := time.Parse("2006-01-02", todayDate)
			if err != nil {
				return fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", todayDate)
			}
			target = parsed
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}

		intake, err := a.service.Today(cmd.Context(), target)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Date: %s\n", intake.Date)
		fmt.Fprintf(out, "Intake: %s\n", formatTotals(intake.Totals))
		fmt.Fprintf(out, "Goal: %.0f kcal | P %.0fg | C %.0fg | F %.0fg | Fiber %.0fg | Water %.0fml\n",
			intake.Goal.Calories, intake.Goal.Protein, intake.Goal.Carbs, intake.Goal.Fats, intake.Goal.Fiber, intake.Goal.Water)
		fmt.Fprintf(out, "Progress: %s\n", formatReport(intake.Progress))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
