package period

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrInvalidTransition = errors.New("invalid period selector transition")
	ErrStepDisabled      = errors.New("period selector step is disabled")
	ErrInvalidMonth      = errors.New("month index must be in range 0..11")
)

type Step int

const (
	StepClosed Step = iota
	StepYear
	StepMonth
	// StepDay is reserved, no transition leads to it.
	StepDay
)

func (s Step) String() string {
	switch s {
	case StepClosed:
		return "closed"
	case StepYear:
		return "year"
	case StepMonth:
		return "month"
	case StepDay:
		return "day"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// ChangeFunc is notified with the chosen year and zero-based month.
type ChangeFunc func(year, monthIndex int)

// Selector walks a user through picking a year, then a month.
type Selector struct {
	mu       sync.Mutex
	step     Step
	year     int
	onChange ChangeFunc
}

func NewSelector(initialYear int, onChange ChangeFunc) *Selector {
	return &Selector{
		step:     StepClosed,
		year:     initialYear,
		onChange: onChange,
	}
}

func (s *Selector) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Year is the year chosen last (or the initial one).
func (s *Selector) Year() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.year
}

// Open shows the year step. Opening an already open selector restarts it.
func (s *Selector) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = StepYear
}

func (s *Selector) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = StepClosed
}

func (s *Selector) SelectYear(year int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepYear {
		return fmt.Errorf("select year in step %s: %w", s.step, ErrInvalidTransition)
	}
	s.year = year
	s.step = StepMonth
	return nil
}

// SelectMonth finishes the selection: the change callback runs synchronously
// before SelectMonth returns, and the selector closes.
func (s *Selector) SelectMonth(monthIndex int) error {
	s.mu.Lock()
	if s.step != StepMonth {
		step := s.step
		s.mu.Unlock()
		return fmt.Errorf("select month in step %s: %w", step, ErrInvalidTransition)
	}
	if monthIndex < 0 || monthIndex > 11 {
		s.mu.Unlock()
		return ErrInvalidMonth
	}
	year := s.year
	onChange := s.onChange
	s.step = StepClosed
	s.mu.Unlock()

	if onChange != nil {
		onChange(year, monthIndex)
	}
	return nil
}

// CanGoBack tells whether the year breadcrumb is enabled.
func (s *Selector) CanGoBack() bool {
	return s.Step() == StepMonth
}

// BackToYear is the breadcrumb from the month step back to the year step.
func (s *Selector) BackToYear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.step {
	case StepMonth:
		s.step = StepYear
		return nil
	case StepYear:
		return ErrStepDisabled
	default:
		return fmt.Errorf("back to year in step %s: %w", s.step, ErrInvalidTransition)
	}
}

// YearOptions lists the years center-span .. center+span in ascending order.
func YearOptions(center, span int) []int {
	if span < 0 {
		span = 0
	}
	years := make([]int, 0, 2*span+1)
	for y := center - span; y <= center+span; y++ {
		years = append(years, y)
	}
	return years
}
