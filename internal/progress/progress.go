package progress

import (
	"math"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/diary"
)

// Goal holds the daily nutrition targets.
type Goal struct {
	Protein  float64 `toml:"protein" json:"protein"`
	Carbs    float64 `toml:"carbs" json:"carbs"`
	Fats     float64 `toml:"fats" json:"fats"`
	Fiber    float64 `toml:"fiber" json:"fiber"`
	Calories float64 `toml:"calories" json:"calories"`
	Water    float64 `toml:"water" json:"water"`
}

var DefaultGoal = Goal{
	Protein:  150,
	Carbs:    250,
	Fats:     70,
	Fiber:    30,
	Calories: 2500,
	Water:    2500,
}

// WithDefaults fills every unset target from DefaultGoal.
func (g Goal) WithDefaults() Goal {
	pick := func(v, def float64) float64 {
		if v <= 0 || math.IsNaN(v) {
			return def
		}
		return v
	}
	return Goal{
		Protein:  pick(g.Protein, DefaultGoal.Protein),
		Carbs:    pick(g.Carbs, DefaultGoal.Carbs),
		Fats:     pick(g.Fats, DefaultGoal.Fats),
		Fiber:    pick(g.Fiber, DefaultGoal.Fiber),
		Calories: pick(g.Calories, DefaultGoal.Calories),
		Water:    pick(g.Water, DefaultGoal.Water),
	}
}

// Percentage is current/goal as a percentage clamped to [0, 100].
// A non-positive goal yields 0.
func Percentage(current, goal float64) float64 {
	if goal <= 0 || math.IsNaN(goal) {
		return 0
	}
	p := current / goal * 100
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	return math.Min(p, 100)
}

// DisplayRound rounds a percentage for display.
func DisplayRound(p float64) int {
	return int(math.Round(p))
}

// Report has one clamped percentage per nutrient.
type Report struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
	Calories float64 `json:"calories"`
	Water    float64 `json:"water"`
}

func NewReport(totals diary.NutrientTotals, goal Goal) Report {
	return Report{
		Protein:  Percentage(totals.Protein, goal.Protein),
		Carbs:    Percentage(totals.Carbs, goal.Carbs),
		Fats:     Percentage(totals.Fats, goal.Fats),
		Fiber:    Percentage(totals.Fiber, goal.Fiber),
		Calories: Percentage(totals.Calories, goal.Calories),
		Water:    Percentage(totals.Water, goal.Water),
	}
}
