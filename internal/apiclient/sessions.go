package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/calendar"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/diary"

	log "github.com/sirupsen/logrus"
)

// DefaultSessionTypes is used when the API cannot list session types.
var DefaultSessionTypes = []string{"Strength", "Cardio", "Hypertrophy", "Mobility", "Other"}

type exerciseLogWire struct {
	SetID           ID      `json:"set_id"`
	ActualSets      Number  `json:"actual_sets"`
	ActualReps      Number  `json:"actual_reps"`
	WeightKg        *Number `json:"weight_kg"`
	DurationSeconds *Number `json:"duration_seconds"`
	Status          Bool    `json:"status"`
}

func (l exerciseLogWire) toLog() diary.ExerciseLog {
	return diary.ExerciseLog{
		ID:              l.SetID.String(),
		ActualSets:      l.ActualSets.Int(),
		ActualReps:      l.ActualReps.Int(),
		WeightKg:        optionalFloat(l.WeightKg),
		DurationSeconds: optionalFloat(l.DurationSeconds),
		Status:          bool(l.Status),
	}
}

type sessionDetailWire struct {
	SessionDetailID ID     `json:"session_detail_id"`
	ExerciseID      ID     `json:"exercise_id"`
	PlannedSets     Number `json:"planned_sets"`
	PlannedReps     Number `json:"planned_reps"`
	Exercise        struct {
		Name     string `json:"name"`
		Category string `json:"category"`
	} `json:"exercise"`
	Logs []exerciseLogWire `json:"logs"`
}

func (d sessionDetailWire) toDetail() diary.SessionDetail {
	logs := make([]diary.ExerciseLog, 0, len(d.Logs))
	for _, l := range d.Logs {
		logs = append(logs, l.toLog())
	}
	return diary.SessionDetail{
		ID:          d.SessionDetailID.String(),
		ExerciseID:  d.ExerciseID.String(),
		PlannedSets: d.PlannedSets.Int(),
		PlannedReps: d.PlannedReps.Int(),
		Exercise: diary.ExerciseMeta{
			Name:     d.Exercise.Name,
			Category: d.Exercise.Category,
		},
		Logs: logs,
	}
}

type sessionWire struct {
	SessionID     ID                  `json:"session_id"`
	ScheduledDate string              `json:"scheduled_date"`
	Status        string              `json:"status"`
	Type          string              `json:"type"`
	Notes         string              `json:"notes"`
	Details       []sessionDetailWire `json:"details"`
}

func (s sessionWire) toSession() *diary.WorkoutSession {
	details := make([]diary.SessionDetail, 0, len(s.Details))
	for _, d := range s.Details {
		details = append(details, d.toDetail())
	}
	return &diary.WorkoutSession{
		ID:            s.SessionID.String(),
		ScheduledDate: parseDate(s.ScheduledDate),
		Status:        diary.ParseSessionStatus(s.Status),
		Type:          s.Type,
		Notes:         s.Notes,
		Exercises:     details,
	}
}

type PlannedExercise struct {
	ExerciseID  string `json:"exercise_id"`
	PlannedSets int    `json:"planned_sets"`
	PlannedReps int    `json:"planned_reps"`
}

type CreateSessionInput struct {
	ScheduledDate time.Time
	Type          string
	Notes         string
	Exercises     []PlannedExercise
}

type SetInput struct {
	ActualReps      int      `json:"actual_reps"`
	WeightKg        *float64 `json:"weight_kg,omitempty"`
	DurationSeconds *float64 `json:"duration_seconds,omitempty"`
	Status          bool     `json:"status"`
}

func sessionPath(sessionID string) string {
	return "/workout-sessions/" + url.PathEscape(sessionID)
}

// ListWorkoutSessions lists the sessions scheduled in a month (monthIndex is zero-based).
func (c *Client) ListWorkoutSessions(ctx context.Context, year, monthIndex int) ([]*diary.WorkoutSession, error) {
	if err := calendar.ValidateMonth(monthIndex); err != nil {
		return nil, err
	}
	query := url.Values{}
	query.Set("month", strconv.Itoa(monthIndex+1))
	query.Set("year", strconv.Itoa(year))

	var data []sessionWire
	if err := c.call(ctx, "sessions.list", http.MethodGet, "/workout-sessions", query, nil, &data); err != nil {
		return nil, err
	}
	sessions := make([]*diary.WorkoutSession, 0, len(data))
	for _, s := range data {
		sessions = append(sessions, s.toSession())
	}
	return sessions, nil
}

func (c *Client) GetWorkoutSession(ctx context.Context, sessionID string) (*diary.WorkoutSession, error) {
	var data sessionWire
	if err := c.call(ctx, "sessions.get", http.MethodGet, sessionPath(sessionID), nil, nil, &data); err != nil {
		return nil, err
	}
	return data.toSession(), nil
}

func (c *Client) CreateWorkoutSession(ctx context.Context, input CreateSessionInput) (*diary.WorkoutSession, error) {
	if input.ScheduledDate.IsZero() {
		return nil, fmt.Errorf("session scheduled date is required")
	}
	body := map[string]any{
		"scheduled_date": formatDate(input.ScheduledDate),
		"type":           input.Type,
		"notes":          input.Notes,
		"exercises":      input.Exercises,
	}
	var data sessionWire
	if err := c.call(ctx, "sessions.create", http.MethodPost, "/workout-sessions", nil, body, &data); err != nil {
		return nil, err
	}
	return data.toSession(), nil
}

func (c *Client) AddSessionExercise(ctx context.Context, sessionID string, exercise PlannedExercise) (*diary.SessionDetail, error) {
	var data sessionDetailWire
	path := sessionPath(sessionID) + "/exercises"
	if err := c.call(ctx, "sessions.add_exercise", http.MethodPost, path, nil, exercise, &data); err != nil {
		return nil, err
	}
	detail := data.toDetail()
	return &detail, nil
}

func (c *Client) AddSet(ctx context.Context, sessionID, detailID string, set SetInput) (*diary.ExerciseLog, error) {
	var data exerciseLogWire
	path := sessionPath(sessionID) + "/exercises/" + url.PathEscape(detailID) + "/sets"
	if err := c.call(ctx, "sessions.add_set", http.MethodPost, path, nil, set, &data); err != nil {
		return nil, err
	}
	l := data.toLog()
	return &l, nil
}

// LogSet records the outcome of a set, e.g. marks it finished.
func (c *Client) LogSet(ctx context.Context, sessionID, setID string, set SetInput) (*diary.ExerciseLog, error) {
	var data exerciseLogWire
	path := sessionPath(sessionID) + "/sets/" + url.PathEscape(setID)
	if err := c.call(ctx, "sessions.log_set", http.MethodPut, path, nil, set, &data); err != nil {
		return nil, err
	}
	l := data.toLog()
	return &l, nil
}

func (c *Client) UpdateSessionStatus(ctx context.Context, sessionID string, status diary.SessionStatus) (*diary.WorkoutSession, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown session status %q", status)
	}
	body := map[string]string{"status": status.String()}
	var data sessionWire
	if err := c.call(ctx, "sessions.update_status", http.MethodPut, sessionPath(sessionID), nil, body, &data); err != nil {
		return nil, err
	}
	return data.toSession(), nil
}

// CompleteWorkoutSession marks the session COMPLETED. Sessions with unfinished
// sets are refused with diary.ErrSessionNotCompletable before any request.
func (c *Client) CompleteWorkoutSession(ctx context.Context, workout *diary.WorkoutSession) (*diary.WorkoutSession, error) {
	if err := workout.CheckCompletable(); err != nil {
		return nil, err
	}
	return c.UpdateSessionStatus(ctx, workout.ID, diary.StatusCompleted)
}

func (c *Client) DeleteWorkoutSession(ctx context.Context, sessionID string) error {
	return c.call(ctx, "sessions.delete", http.MethodDelete, sessionPath(sessionID), nil, nil, nil)
}

// SessionTypes is a soft-fail read: DefaultSessionTypes is returned on any error.
func (c *Client) SessionTypes(ctx context.Context) []string {
	var data []string
	if err := c.call(ctx, "sessions.types", http.MethodGet, "/workout-sessions/types", nil, nil, &data); err != nil {
		log.Warnf("get session types, using defaults: %s", err)
		return DefaultSessionTypes
	}
	if len(data) == 0 {
		return DefaultSessionTypes
	}
	return data
}
