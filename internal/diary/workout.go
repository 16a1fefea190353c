package diary

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrSessionNotCompletable = errors.New("workout session has unfinished sets")

type SessionStatus string

const (
	StatusPending    SessionStatus = "PENDING"
	StatusInProgress SessionStatus = "IN_PROGRESS"
	StatusCompleted  SessionStatus = "COMPLETED"
	StatusUnfinished SessionStatus = "UNFINISHED"
	StatusMissed     SessionStatus = "MISSED"
)

func (s SessionStatus) String() string {
	return string(s)
}

func (s SessionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusUnfinished, StatusMissed:
		return true
	default:
		return false
	}
}

// ParseSessionStatus normalizes server status strings ("completed",
// "in progress"). Unknown values are treated as pending.
func ParseSessionStatus(raw string) SessionStatus {
	s := SessionStatus(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), " ", "_")))
	if !s.IsValid() {
		return StatusPending
	}
	return s
}

type ExerciseMeta struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// ExerciseLog is one performed set.
type ExerciseLog struct {
	ID              string   `json:"id"`
	ActualSets      int      `json:"actualSets"`
	ActualReps      int      `json:"actualReps"`
	WeightKg        *float64 `json:"weightKg,omitempty"`
	DurationSeconds *float64 `json:"durationSeconds,omitempty"`
	Status          bool     `json:"status"`
}

// SessionDetail is an exercise planned within a session, with its logged sets.
type SessionDetail struct {
	ID          string        `json:"id"`
	ExerciseID  string        `json:"exerciseId"`
	PlannedSets int           `json:"plannedSets"`
	PlannedReps int           `json:"plannedReps"`
	Exercise    ExerciseMeta  `json:"exercise"`
	Logs        []ExerciseLog `json:"logs"`
}

// Done reports whether the exercise has at least one set and every set is finished.
func (d SessionDetail) Done() bool {
	if len(d.Logs) == 0 {
		return false
	}
	for _, l := range d.Logs {
		if !l.Status {
			return false
		}
	}
	return true
}

// Volume is the sum of reps x weight over finished sets.
func (d SessionDetail) Volume() float64 {
	var volume float64
	for _, l := range d.Logs {
		if !l.Status || l.WeightKg == nil {
			continue
		}
		volume += float64(l.ActualReps) * nonNegative(*l.WeightKg)
	}
	return volume
}

type WorkoutSession struct {
	ID            string          `json:"id"`
	ScheduledDate time.Time       `json:"scheduledDate"`
	Status        SessionStatus   `json:"status"`
	Type          string          `json:"type,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	Exercises     []SessionDetail `json:"exercises"`
}

func (w *WorkoutSession) Day() time.Time {
	return w.ScheduledDate
}

func (w *WorkoutSession) loggedItem() {}

// CanComplete holds when every exercise is Done. A session without
// exercises has nothing left to finish and can be completed.
func (w *WorkoutSession) CanComplete() bool {
	for _, d := range w.Exercises {
		if !d.Done() {
			return false
		}
	}
	return true
}

// CompletionBlockers names the exercises that keep the session from completing.
func (w *WorkoutSession) CompletionBlockers() []string {
	var blockers []string
	for _, d := range w.Exercises {
		if d.Done() {
			continue
		}
		name := d.Exercise.Name
		if name == "" {
			name = "exercise " + d.ExerciseID
		}
		blockers = append(blockers, name)
	}
	return blockers
}

// CheckCompletable returns ErrSessionNotCompletable, wrapped with the blocking
// exercise names, when the session cannot be marked completed.
func (w *WorkoutSession) CheckCompletable() error {
	if w.CanComplete() {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrSessionNotCompletable, strings.Join(w.CompletionBlockers(), ", "))
}

// Volume is the total lifted volume of the session in kg.
func (w *WorkoutSession) Volume() float64 {
	var volume float64
	for _, d := range w.Exercises {
		volume += d.Volume()
	}
	return volume
}
