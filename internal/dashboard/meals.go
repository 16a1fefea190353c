package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/apiclient"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/diary"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrInvalidMeal = errors.New("invalid meal")
	ErrUnknownFood = errors.New("unknown food")
)

type MealEntry struct {
	FoodID      string  `json:"foodId"`
	AmountGrams float64 `json:"amountGrams"`
}

type LogMealInput struct {
	Name     string
	MealType diary.MealType
	Date     time.Time
	Time     string
	Entries  []MealEntry
	// DryRun composes the meal without saving it.
	DryRun bool
}

// LogMeal composes a meal from catalog foods and saves it. A dry run returns
// the local draft, its id is not known to the server.
func (s *Service) LogMeal(ctx context.Context, in LogMealInput) (_ *diary.MealRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.logMeal")
	span.SetAttributes(attribute.String("meal.type", in.MealType.String()), attribute.Int("meal.items", len(in.Entries)))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	create := apiclient.CreateMealInput{
		LogDate:  in.Date,
		MealType: in.MealType,
		Time:     in.Time,
		Items:    make([]apiclient.MealItemInput, 0, len(in.Entries)),
	}
	for _, e := range in.Entries {
		create.Items = append(create.Items, apiclient.MealItemInput{FoodID: e.FoodID, AmountGrams: e.AmountGrams})
	}
	if err := create.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMeal, err)
	}

	draft := diary.NewLocalMeal(in.Name, in.MealType, in.Date)
	draft.Time = in.Time
	if len(in.Entries) > 0 {
		foods, err := s.client.ListFoods(ctx, "")
		if err != nil {
			return nil, fmt.Errorf("list foods: %w", err)
		}
		byID := make(map[string]apiclient.Food, len(foods))
		for _, f := range foods {
			byID[f.ID] = f
		}
		for _, e := range in.Entries {
			food, ok := byID[e.FoodID]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownFood, e.FoodID)
			}
			draft.Items = append(draft.Items, food.Line(e.AmountGrams))
		}
	}
	if in.DryRun {
		return draft, nil
	}

	saved, err := s.client.CreateMeal(ctx, create)
	if err != nil {
		return nil, fmt.Errorf("create meal: %w", err)
	}
	if len(saved.Items) == 0 {
		saved.Items = draft.Items
	}
	if saved.Name == saved.MealType.String() {
		saved.Name = draft.Name
	}
	log.Debugf("meal %s logged on %s with %d items", saved.ID, in.Date.Format("2006-01-02"), len(saved.Items))
	return saved, nil
}

// DeleteMeal removes a saved meal. Local drafts never reached the server.
func (s *Service) DeleteMeal(ctx context.Context, mealID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.deleteMeal")
	span.SetAttributes(attribute.String("meal.id", mealID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if (&diary.MealRecord{ID: mealID}).IsLocal() {
		return fmt.Errorf("%w: %s was never saved", ErrInvalidMeal, mealID)
	}
	if err := s.client.DeleteMeal(ctx, mealID); err != nil {
		return fmt.Errorf("delete meal %s: %w", mealID, err)
	}
	return nil
}
