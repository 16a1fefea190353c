package diary

// WorkoutCounts summarizes the sessions of a day or a month.
type WorkoutCounts struct {
	TotalCount     int `json:"totalCount"`
	CompletedCount int `json:"completedCount"`
}

func (c WorkoutCounts) Add(other WorkoutCounts) WorkoutCounts {
	return WorkoutCounts{
		TotalCount:     c.TotalCount + other.TotalCount,
		CompletedCount: c.CompletedCount + other.CompletedCount,
	}
}

// AggregateMeals sums the nutrient totals of all given meals. Nil meals are skipped.
func AggregateMeals(meals []*MealRecord) NutrientTotals {
	var totals NutrientTotals
	for _, m := range meals {
		if m == nil {
			continue
		}
		totals = totals.Add(m.Totals())
	}
	return totals
}

// AggregateWorkouts counts sessions, and those of them with status COMPLETED.
func AggregateWorkouts(sessions []*WorkoutSession) WorkoutCounts {
	var counts WorkoutCounts
	for _, s := range sessions {
		if s == nil {
			continue
		}
		counts.TotalCount++
		if s.Status == StatusCompleted {
			counts.CompletedCount++
		}
	}
	return counts
}
