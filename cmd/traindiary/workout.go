package main

import (
	"errors"
	"fmt"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/diary"

	"github.com/spf13/cobra"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Workout session commands",
}

var workoutCompleteCmd = &cobra.Command{
	Use:   "complete <session-id>",
	Short: "Mark a session completed once all its sets are done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}

		completed, err := a.service.CompleteSession(cmd.Context(), args[0])
		if errors.Is(err, diary.ErrSessionNotCompletable) {
			return fmt.Errorf("cannot complete session %s: %w", args[0], err)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Session %s: %s (volume %.1f kg)\n", completed.ID, completed.Status, completed.Volume())
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a workout session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}
		if err := a.client.DeleteWorkoutSession(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s\n", args[0])
		return nil
	},
}

func init() {
	workoutCmd.AddCommand(workoutCompleteCmd, workoutDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}
