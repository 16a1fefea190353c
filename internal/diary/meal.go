package diary

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type MealType string

const (
	MealTypeBreakfast   MealType = "Breakfast"
	MealTypeLunch       MealType = "Lunch"
	MealTypeDinner      MealType = "Dinner"
	MealTypeSnacks      MealType = "Snacks"
	MealTypePreWorkout  MealType = "Pre-Workout"
	MealTypePostWorkout MealType = "Post-Workout"
	MealTypeOther       MealType = "Other"
)

// MealTypes lists meal types in the order they are shown in a day.
var MealTypes = []MealType{
	MealTypeBreakfast,
	MealTypeLunch,
	MealTypeDinner,
	MealTypeSnacks,
	MealTypePreWorkout,
	MealTypePostWorkout,
	MealTypeOther,
}

func (mt MealType) String() string {
	return string(mt)
}

func (mt MealType) IsValid() bool {
	for _, known := range MealTypes {
		if mt == known {
			return true
		}
	}
	return false
}

// ParseMealType maps free-form meal type names ("snack", "pre_workout",
// "POST WORKOUT") to a MealType. Unknown names map to MealTypeOther.
func ParseMealType(raw string) MealType {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)
	switch key {
	case "breakfast":
		return MealTypeBreakfast
	case "lunch":
		return MealTypeLunch
	case "dinner":
		return MealTypeDinner
	case "snack", "snacks":
		return MealTypeSnacks
	case "preworkout":
		return MealTypePreWorkout
	case "postworkout":
		return MealTypePostWorkout
	default:
		return MealTypeOther
	}
}

// FoodLine is one food eaten as part of a meal, with its per-serving values.
type FoodLine struct {
	FoodID             string  `json:"foodId"`
	Name               string  `json:"name"`
	AmountGrams        float64 `json:"amountGrams"`
	CaloriesPerServing float64 `json:"caloriesPerServing"`
	ProteinPerServing  float64 `json:"proteinPerServing"`
	CarbsPerServing    float64 `json:"carbsPerServing"`
	FatPerServing      float64 `json:"fatPerServing"`
	FiberPerServing    float64 `json:"fiberPerServing"`
	ServingType        string  `json:"servingType"`
}

// Contribution is what the line adds to its meal:
// amountGrams / ServingGrams(servingType) * perServing, for every nutrient.
func (l FoodLine) Contribution() NutrientTotals {
	perServing := NutrientTotals{
		Protein:  l.ProteinPerServing,
		Carbs:    l.CarbsPerServing,
		Fats:     l.FatPerServing,
		Fiber:    l.FiberPerServing,
		Calories: l.CaloriesPerServing,
	}
	return perServing.Scale(l.AmountGrams / ServingGrams(l.ServingType))
}

type MealRecord struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	MealType MealType  `json:"mealType"`
	Time     string    `json:"time,omitempty"`
	LogDate  time.Time `json:"logDate"`
	// Nutrients is used as-is only when the meal carries no food lines.
	Nutrients NutrientTotals `json:"nutrients"`
	Items     []FoodLine     `json:"items"`
}

// NewLocalMeal starts a meal on the client side, before the server assigned it an id.
func NewLocalMeal(name string, mealType MealType, logDate time.Time) *MealRecord {
	if strings.TrimSpace(name) == "" {
		name = mealType.String()
	}
	return &MealRecord{
		ID:       "local-" + uuid.NewString(),
		Name:     name,
		MealType: mealType,
		LogDate:  logDate,
		Items:    []FoodLine{},
	}
}

// IsLocal reports whether the meal was never saved to the server.
func (m *MealRecord) IsLocal() bool {
	return strings.HasPrefix(m.ID, "local-")
}

func (m *MealRecord) Day() time.Time {
	return m.LogDate
}

func (m *MealRecord) loggedItem() {}

// Totals sums the food line contributions, or falls back to the meal's own
// nutrients when it has no lines. Meals never carry water.
func (m *MealRecord) Totals() NutrientTotals {
	if len(m.Items) == 0 {
		totals := NutrientTotals{}.Add(m.Nutrients)
		totals.Water = 0
		return totals
	}
	var totals NutrientTotals
	for _, item := range m.Items {
		totals = totals.Add(item.Contribution())
	}
	return totals
}

// ValidateMealTime checks the optional "HH:MM" meal time.
func ValidateMealTime(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse("15:04", value); err != nil {
		return fmt.Errorf("invalid meal time %q (expected HH:MM)", value)
	}
	return nil
}
