package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/apiclient"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/calendar"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/diary"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/progress"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/telemetry/metrics"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=dashboard_test

type diaryClient interface {
	ListMeals(ctx context.Context, year, monthIndex int) ([]*diary.MealRecord, error)
	ListWorkoutSessions(ctx context.Context, year, monthIndex int) ([]*diary.WorkoutSession, error)
	DailyIntake(ctx context.Context, date time.Time) (*apiclient.DailyIntake, error)
	GetWorkoutSession(ctx context.Context, sessionID string) (*diary.WorkoutSession, error)
	CompleteWorkoutSession(ctx context.Context, workout *diary.WorkoutSession) (*diary.WorkoutSession, error)
	ListFoods(ctx context.Context, search string) ([]apiclient.Food, error)
	CreateMeal(ctx context.Context, input apiclient.CreateMealInput) (*diary.MealRecord, error)
	DeleteMeal(ctx context.Context, mealID string) error
}

type NutritionDay struct {
	calendar.Day[*diary.MealRecord]
	Totals diary.NutrientTotals `json:"totals"`
}

type NutritionMonth struct {
	Year        int                  `json:"year"`
	Month       int                  `json:"month"`
	Title       string               `json:"title"`
	Days        []NutritionDay       `json:"days"`
	Totals      diary.NutrientTotals `json:"totals"`
	Goal        progress.Goal        `json:"goal"`
	SelectedDay int                  `json:"selectedDay"`
	// Progress compares the selected day against the daily goal.
	Progress progress.Report `json:"progress"`
}

type WorkoutDay struct {
	calendar.Day[*diary.WorkoutSession]
	Counts diary.WorkoutCounts `json:"counts"`
}

type WorkoutMonth struct {
	Year   int                 `json:"year"`
	Month  int                 `json:"month"`
	Title  string              `json:"title"`
	Days   []WorkoutDay        `json:"days"`
	Counts diary.WorkoutCounts `json:"counts"`
}

type DayIntake struct {
	Date     string               `json:"date"`
	Totals   diary.NutrientTotals `json:"totals"`
	Goal     progress.Goal        `json:"goal"`
	Progress progress.Report      `json:"progress"`
}

// Service builds the dashboard views: fetch, bucket by day, lay out the
// grid, aggregate and normalise against the goal.
type Service struct {
	client         diaryClient
	goal           progress.Goal
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(client diaryClient, goal progress.Goal, metricsManager *metrics.Manager) *Service {
	return &Service{
		client:         client,
		goal:           goal.WithDefaults(),
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (s *Service) Goal() progress.Goal {
	return s.goal
}

// NutritionMonth builds the meal calendar of a month (monthIndex is zero-based).
// selectedDay picks the day whose progress is reported; out of range values
// fall back to today when it is in the month, else to the 1st.
func (s *Service) NutritionMonth(ctx context.Context, year, monthIndex, selectedDay int) (_ *NutritionMonth, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.nutritionMonth")
	span.SetAttributes(attribute.Int("year", year), attribute.Int("month", monthIndex))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := calendar.ValidateMonth(monthIndex); err != nil {
		return nil, err
	}

	meals, err := s.client.ListMeals(ctx, year, monthIndex)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}

	buckets := calendar.BucketByDay(meals, year, monthIndex)
	grid, err := calendar.BuildMonthGrid(year, monthIndex, buckets)
	if err != nil {
		return nil, err
	}

	dayTotals := calendar.AggregateDays(grid)
	selectedDay = s.selectDay(year, monthIndex, selectedDay)

	// totals come from the buckets, the grid may cut the last days of the month
	monthTotals := make([]diary.NutrientTotals, 0, len(buckets))
	for day := 1; day <= calendar.DaysInMonth(year, monthIndex); day++ {
		if dayMeals, ok := buckets[day]; ok {
			monthTotals = append(monthTotals, diary.AggregateMeals(dayMeals))
		}
	}

	month := &NutritionMonth{
		Year:        year,
		Month:       monthIndex,
		Title:       calendar.Title(year, monthIndex),
		Days:        make([]NutritionDay, len(grid)),
		Totals:      diary.Combine(monthTotals...),
		Goal:        s.goal,
		SelectedDay: selectedDay,
		Progress:    progress.NewReport(diary.AggregateMeals(buckets[selectedDay]), s.goal),
	}
	for i, d := range grid {
		month.Days[i] = NutritionDay{Day: d, Totals: dayTotals[i]}
	}

	log.Debugf("nutrition month %s: %d meals", month.Title, len(meals))
	return month, nil
}

// WorkoutMonth builds the workout calendar of a month (monthIndex is zero-based).
func (s *Service) WorkoutMonth(ctx context.Context, year, monthIndex int) (_ *WorkoutMonth, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.workoutMonth")
	span.SetAttributes(attribute.Int("year", year), attribute.Int("month", monthIndex))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := calendar.ValidateMonth(monthIndex); err != nil {
		return nil, err
	}

	sessions, err := s.client.ListWorkoutSessions(ctx, year, monthIndex)
	if err != nil {
		return nil, fmt.Errorf("list workout sessions: %w", err)
	}

	buckets := calendar.BucketByDay(sessions, year, monthIndex)
	grid, err := calendar.BuildMonthGrid(year, monthIndex, buckets)
	if err != nil {
		return nil, err
	}

	month := &WorkoutMonth{
		Year:  year,
		Month: monthIndex,
		Title: calendar.Title(year, monthIndex),
		Days:  make([]WorkoutDay, len(grid)),
	}
	for i, d := range grid {
		month.Days[i] = WorkoutDay{Day: d, Counts: diary.AggregateWorkouts(d.Records)}
	}
	for _, daySessions := range buckets {
		month.Counts = month.Counts.Add(diary.AggregateWorkouts(daySessions))
	}
	return month, nil
}

// Today reports what was consumed on date against the daily goal.
func (s *Service) Today(ctx context.Context, date time.Time) (_ *DayIntake, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.today")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	intake, err := s.client.DailyIntake(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("daily intake: %w", err)
	}
	totals := diary.Combine(intake.Totals)
	return &DayIntake{
		Date:     date.Format("2006-01-02"),
		Totals:   totals,
		Goal:     s.goal,
		Progress: progress.NewReport(totals, s.goal),
	}, nil
}

// CompleteSession fetches the session and marks it completed when every set is done.
func (s *Service) CompleteSession(ctx context.Context, sessionID string) (_ *diary.WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.completeSession")
	span.SetAttributes(attribute.String("session.id", sessionID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	workout, err := s.client.GetWorkoutSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get workout session %s: %w", sessionID, err)
	}
	if workout.Status == diary.StatusCompleted {
		return workout, nil
	}
	if err := workout.CheckCompletable(); err != nil {
		return nil, err
	}
	completed, err := s.client.CompleteWorkoutSession(ctx, workout)
	if err != nil {
		return nil, fmt.Errorf("complete workout session %s: %w", sessionID, err)
	}
	return completed, nil
}

func (s *Service) selectDay(year, monthIndex, day int) int {
	if day >= 1 && day <= calendar.DaysInMonth(year, monthIndex) {
		return day
	}
	now := s.now()
	if now.Year() == year && int(now.Month())-1 == monthIndex {
		return now.Day()
	}
	return 1
}
