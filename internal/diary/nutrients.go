package diary

import "math"

// NutrientTotals holds macro totals in grams, energy in kcal and water in ml.
type NutrientTotals struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
	Calories float64 `json:"calories"`
	Water    float64 `json:"water"`
}

// Add returns the field-wise sum of t and other.
// Negative, NaN and infinite values count as 0.
func (t NutrientTotals) Add(other NutrientTotals) NutrientTotals {
	return NutrientTotals{
		Protein:  nonNegative(t.Protein) + nonNegative(other.Protein),
		Carbs:    nonNegative(t.Carbs) + nonNegative(other.Carbs),
		Fats:     nonNegative(t.Fats) + nonNegative(other.Fats),
		Fiber:    nonNegative(t.Fiber) + nonNegative(other.Fiber),
		Calories: nonNegative(t.Calories) + nonNegative(other.Calories),
		Water:    nonNegative(t.Water) + nonNegative(other.Water),
	}
}

// Scale multiplies every field by factor.
func (t NutrientTotals) Scale(factor float64) NutrientTotals {
	factor = nonNegative(factor)
	return NutrientTotals{
		Protein:  nonNegative(t.Protein) * factor,
		Carbs:    nonNegative(t.Carbs) * factor,
		Fats:     nonNegative(t.Fats) * factor,
		Fiber:    nonNegative(t.Fiber) * factor,
		Calories: nonNegative(t.Calories) * factor,
		Water:    nonNegative(t.Water) * factor,
	}
}

// IsZero reports whether nothing was logged.
func (t NutrientTotals) IsZero() bool {
	return t == NutrientTotals{}
}

// Combine folds any number of totals into one.
func Combine(totals ...NutrientTotals) NutrientTotals {
	var out NutrientTotals
	for _, t := range totals {
		out = out.Add(t)
	}
	return out
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
