package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/diary"
)

type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

type exerciseWire struct {
	ExerciseID  ID     `json:"exercise_id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Food is a catalog entry with its nutrients per serving.
type Food struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fat          float64 `json:"fat"`
	Fiber        float64 `json:"fiber"`
	ServingType  string  `json:"servingType"`
	ServingGrams float64 `json:"servingGrams"`
	Image        string  `json:"image,omitempty"`
}

// Line turns the food into a meal line for the given eaten amount.
func (f Food) Line(amountGrams float64) diary.FoodLine {
	return diary.FoodLine{
		FoodID:             f.ID,
		Name:               f.Name,
		AmountGrams:        amountGrams,
		CaloriesPerServing: f.Calories,
		ProteinPerServing:  f.Protein,
		CarbsPerServing:    f.Carbs,
		FatPerServing:      f.Fat,
		FiberPerServing:    f.Fiber,
		ServingType:        f.ServingType,
	}
}

type foodWire struct {
	FoodID             ID     `json:"food_id"`
	Name               string `json:"name"`
	CaloriesPerServing Number `json:"calories_per_serving"`
	ProteinPerServing  Number `json:"protein_per_serving"`
	CarbsPerServing    Number `json:"carbs_per_serving"`
	FatPerServing      Number `json:"fat_per_serving"`
	FiberPerServing    Number `json:"fiber_per_serving"`
	ServingType        string `json:"serving_type"`
	Image              string `json:"image"`
}

func (f foodWire) toFood() Food {
	return Food{
		ID:           f.FoodID.String(),
		Name:         f.Name,
		Calories:     f.CaloriesPerServing.Float(),
		Protein:      f.ProteinPerServing.Float(),
		Carbs:        f.CarbsPerServing.Float(),
		Fat:          f.FatPerServing.Float(),
		Fiber:        f.FiberPerServing.Float(),
		ServingType:  f.ServingType,
		ServingGrams: diary.ServingGrams(f.ServingType),
		Image:        f.Image,
	}
}

// ListExercises lists the exercise catalog, optionally filtered by category.
func (c *Client) ListExercises(ctx context.Context, category string) ([]Exercise, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	var data []exerciseWire
	if err := c.call(ctx, "exercises.list", http.MethodGet, "/exercises", query, nil, &data); err != nil {
		return nil, err
	}
	exercises := make([]Exercise, 0, len(data))
	for _, e := range data {
		exercises = append(exercises, Exercise{
			ID:          e.ExerciseID.String(),
			Name:        e.Name,
			Category:    e.Category,
			Description: e.Description,
		})
	}
	return exercises, nil
}

// ListFoods lists the food catalog, optionally filtered by a name search.
func (c *Client) ListFoods(ctx context.Context, search string) ([]Food, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	var data []foodWire
	if err := c.call(ctx, "foods.list", http.MethodGet, "/foods", query, nil, &data); err != nil {
		return nil, err
	}
	foods := make([]Food, 0, len(data))
	for _, f := range data {
		foods = append(foods, f.toFood())
	}
	return foods, nil
}
