package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/calendar"
)

type ProgressPoint struct {
	Date    time.Time `json:"date"`
	GRScore float64   `json:"grScore"`
}

// Progress is the user's long-term training progress.
type Progress struct {
	GRScore           float64         `json:"grScore"`
	WorkoutsCompleted int             `json:"workoutsCompleted"`
	CurrentStreakDays int             `json:"currentStreakDays"`
	History           []ProgressPoint `json:"history"`
}

type progressWire struct {
	GRScore           Number `json:"gr_score"`
	WorkoutsCompleted Number `json:"workouts_completed"`
	CurrentStreak     Number `json:"current_streak"`
	History           []struct {
		Date    string `json:"date"`
		GRScore Number `json:"gr_score"`
	} `json:"history"`
}

// Summary is the server-side monthly summary.
type Summary struct {
	TotalWorkouts     int     `json:"totalWorkouts"`
	CompletedWorkouts int     `json:"completedWorkouts"`
	TotalCalories     float64 `json:"totalCalories"`
	AvgCalories       float64 `json:"avgCalories"`
	AvgProtein        float64 `json:"avgProtein"`
	GRScore           float64 `json:"grScore"`
}

type summaryWire struct {
	TotalWorkouts     Number `json:"total_workouts"`
	CompletedWorkouts Number `json:"completed_workouts"`
	TotalCalories     Number `json:"total_calories"`
	AvgCalories       Number `json:"avg_calories"`
	AvgProtein        Number `json:"avg_protein"`
	GRScore           Number `json:"gr_score"`
}

type PlanExercise struct {
	ExerciseID string `json:"exerciseId"`
	Name       string `json:"name"`
	Sets       int    `json:"sets"`
	Reps       int    `json:"reps"`
}

type WorkoutPlan struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	DurationWeeks int            `json:"durationWeeks"`
	Exercises     []PlanExercise `json:"exercises"`
}

type workoutPlanWire struct {
	PlanID        ID     `json:"plan_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	DurationWeeks Number `json:"duration_weeks"`
	Exercises     []struct {
		ExerciseID ID     `json:"exercise_id"`
		Name       string `json:"name"`
		Sets       Number `json:"sets"`
		Reps       Number `json:"reps"`
	} `json:"exercises"`
}

func (c *Client) Progress(ctx context.Context) (*Progress, error) {
	var data progressWire
	if err := c.call(ctx, "progress.get", http.MethodGet, "/progress", nil, nil, &data); err != nil {
		return nil, err
	}
	p := &Progress{
		GRScore:           data.GRScore.Float(),
		WorkoutsCompleted: data.WorkoutsCompleted.Int(),
		CurrentStreakDays: data.CurrentStreak.Int(),
		History:           make([]ProgressPoint, 0, len(data.History)),
	}
	for _, h := range data.History {
		p.History = append(p.History, ProgressPoint{Date: parseDate(h.Date), GRScore: h.GRScore.Float()})
	}
	return p, nil
}

// Summary returns the monthly summary (monthIndex is zero-based).
func (c *Client) Summary(ctx context.Context, year, monthIndex int) (*Summary, error) {
	if err := calendar.ValidateMonth(monthIndex); err != nil {
		return nil, err
	}
	query := url.Values{}
	query.Set("month", strconv.Itoa(monthIndex+1))
	query.Set("year", strconv.Itoa(year))

	var data summaryWire
	if err := c.call(ctx, "summary.get", http.MethodGet, "/summary", query, nil, &data); err != nil {
		return nil, err
	}
	return &Summary{
		TotalWorkouts:     data.TotalWorkouts.Int(),
		CompletedWorkouts: data.CompletedWorkouts.Int(),
		TotalCalories:     data.TotalCalories.Float(),
		AvgCalories:       data.AvgCalories.Float(),
		AvgProtein:        data.AvgProtein.Float(),
		GRScore:           data.GRScore.Float(),
	}, nil
}

func (c *Client) ListWorkoutPlans(ctx context.Context) ([]WorkoutPlan, error) {
	var data []workoutPlanWire
	if err := c.call(ctx, "plans.list", http.MethodGet, "/workout-plans", nil, nil, &data); err != nil {
		return nil, err
	}
	plans := make([]WorkoutPlan, 0, len(data))
	for _, p := range data {
		plan := WorkoutPlan{
			ID:            p.PlanID.String(),
			Name:          p.Name,
			Description:   p.Description,
			DurationWeeks: p.DurationWeeks.Int(),
			Exercises:     make([]PlanExercise, 0, len(p.Exercises)),
		}
		for _, e := range p.Exercises {
			plan.Exercises = append(plan.Exercises, PlanExercise{
				ExerciseID: e.ExerciseID.String(),
				Name:       e.Name,
				Sets:       e.Sets.Int(),
				Reps:       e.Reps.Int(),
			})
		}
		plans = append(plans, plan)
	}
	return plans, nil
}
