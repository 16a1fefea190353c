package diary

import "time"

// LoggedItem is anything that can be placed on a calendar day.
// The set is closed: only *MealRecord and *WorkoutSession implement it.
type LoggedItem interface {
	// Day is the date the item belongs to, in the item's own location.
	Day() time.Time
	loggedItem()
}

var (
	_ LoggedItem = (*MealRecord)(nil)
	_ LoggedItem = (*WorkoutSession)(nil)
)
