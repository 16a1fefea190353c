package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/dashboard"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/diary"

	"github.com/spf13/cobra"
)

var (
	mealName   string
	mealType   string
	mealDate   string
	mealTime   string
	mealFoods  []string
	mealDryRun bool
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Meal commands",
}

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Compose a meal from catalog foods and log it",
	Example: "  traindiary meal add --type lunch --food 7:150 --food 9:200\n" +
		"  traindiary meal add --type dinner --name \"Post gym\" --food 7:150 --dry-run",
	RunE: func(cmd *cobra.Command, args []string) error {
		logDate := time.Now()
		if mealDate != "" {
			parsed, err := time.Parse("2006-01-02", mealDate)
			if err != nil {
				return fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", mealDate)
			}
			logDate = parsed
		}
		entries, err := parseFoodEntries(mealFoods)
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

		meal, err := a.service.LogMeal(cmd.Context(), dashboard.LogMealInput{
			Name:     mealName,
			MealType: diary.ParseMealType(mealType),
			Date:     logDate,
			Time:     mealTime,
			Entries:  entries,
			DryRun:   mealDryRun,
		})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if meal.IsLocal() {
			fmt.Fprintln(out, "Draft (not saved):")
		} else {
			fmt.Fprintf(out, "Logged meal %s:\n", meal.ID)
		}
		renderMeal(out, meal.Name, meal.Items, meal.Totals())
		return nil
	},
}

var mealShowCmd = &cobra.Command{
	Use:   "show <meal-id>",
	Short: "Show the food lines and nutrition of a saved meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}

		lines, err := a.client.MealDetails(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		totals, err := a.client.MealNutrition(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		renderMeal(cmd.OutOrStdout(), "Meal "+args[0], lines, totals)
		return nil
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:   "delete <meal-id>",
	Short: "Delete a saved meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}
		if err := a.service.DeleteMeal(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted meal %s\n", args[0])
		return nil
	},
}

// parseFoodEntries reads "<food-id>:<grams>" pairs.
func parseFoodEntries(raw []string) ([]dashboard.MealEntry, error) {
	entries := make([]dashboard.MealEntry, 0, len(raw))
	for _, r := range raw {
		foodID, amount, ok := strings.Cut(r, ":")
		if !ok || strings.TrimSpace(foodID) == "" {
			return nil, fmt.Errorf("invalid --food %q (expected <food-id>:<grams>)", r)
		}
		grams, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
		if err != nil || grams <= 0 {
			return nil, fmt.Errorf("invalid --food %q: grams must be a positive number", r)
		}
		entries = append(entries, dashboard.MealEntry{FoodID: strings.TrimSpace(foodID), AmountGrams: grams})
	}
	return entries, nil
}

func renderMeal(out io.Writer, title string, lines []diary.FoodLine, totals diary.NutrientTotals) {
	fmt.Fprintln(out, title)
	for _, line := range lines {
		name := line.Name
		if name == "" {
			name = "food " + line.FoodID
		}
		fmt.Fprintf(out, "  %-24s %6.0fg %6.0f kcal\n", name, line.AmountGrams, line.Contribution().Calories)
	}
	fmt.Fprintf(out, "Total: %s\n", formatTotals(totals))
}

func init() {
	mealAddCmd.Flags().StringVar(&mealName, "name", "", "meal name (default the meal type)")
	mealAddCmd.Flags().StringVar(&mealType, "type", "", "meal type, e.g. breakfast, lunch, snack, post-workout")
	mealAddCmd.Flags().StringVar(&mealDate, "date", "", "log date YYYY-MM-DD (default today)")
	mealAddCmd.Flags().StringVar(&mealTime, "time", "", "meal time HH:MM")
	mealAddCmd.Flags().StringArrayVar(&mealFoods, "food", nil, "food line as <food-id>:<grams>, repeatable")
	mealAddCmd.Flags().BoolVar(&mealDryRun, "dry-run", false, "compose and print the meal without saving it")
	_ = mealAddCmd.MarkFlagRequired("type")

	mealCmd.AddCommand(mealAddCmd, mealShowCmd, mealDeleteCmd)
	rootCmd.AddCommand(mealCmd)
}
