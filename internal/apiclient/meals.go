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

type mealDetailWire struct {
	MealDetailID ID        `json:"meal_detail_id"`
	FoodID       ID        `json:"food_id"`
	AmountGrams  Number    `json:"amount_grams"`
	Food         *foodWire `json:"food"`
}

func (d mealDetailWire) toLine() diary.FoodLine {
	food := Food{ID: d.FoodID.String()}
	if d.Food != nil {
		food = d.Food.toFood()
		if food.ID == "" {
			food.ID = d.FoodID.String()
		}
	}
	return food.Line(d.AmountGrams.Float())
}

type mealWire struct {
	LogID         ID               `json:"log_id"`
	LogDate       string           `json:"log_date"`
	MealType      string           `json:"meal_type"`
	Name          string           `json:"name"`
	Time          string           `json:"time"`
	TotalCalories Number           `json:"total_calories"`
	TotalProtein  Number           `json:"total_protein"`
	TotalCarbs    Number           `json:"total_carbs"`
	TotalFat      Number           `json:"total_fat"`
	TotalFibers   Number           `json:"total_fibers"`
	Details       []mealDetailWire `json:"details"`
}

func (m mealWire) toMeal() *diary.MealRecord {
	mealType := diary.ParseMealType(m.MealType)
	name := m.Name
	if name == "" {
		name = mealType.String()
	}
	// lines without their food carry no per-serving values, the meal totals
	// from the server are the better source then
	items := make([]diary.FoodLine, 0, len(m.Details))
	for _, d := range m.Details {
		if d.Food == nil {
			items = items[:0]
			break
		}
		items = append(items, d.toLine())
	}
	return &diary.MealRecord{
		ID:       m.LogID.String(),
		Name:     name,
		MealType: mealType,
		Time:     m.Time,
		LogDate:  parseDate(m.LogDate),
		Nutrients: diary.NutrientTotals{
			Protein:  m.TotalProtein.Float(),
			Carbs:    m.TotalCarbs.Float(),
			Fats:     m.TotalFat.Float(),
			Fiber:    m.TotalFibers.Float(),
			Calories: m.TotalCalories.Float(),
		},
		Items: items,
	}
}

type nutritionWire struct {
	TotalCalories Number `json:"total_calories"`
	TotalProtein  Number `json:"total_protein"`
	TotalCarbs    Number `json:"total_carbs"`
	TotalFat      Number `json:"total_fat"`
	TotalFibers   Number `json:"total_fibers"`
	TotalWater    Number `json:"total_water"`
	WaterMl       Number `json:"water_ml"`
}

func (n nutritionWire) toTotals() diary.NutrientTotals {
	water := n.WaterMl
	if water == 0 {
		water = n.TotalWater
	}
	return diary.NutrientTotals{
		Protein:  n.TotalProtein.Float(),
		Carbs:    n.TotalCarbs.Float(),
		Fats:     n.TotalFat.Float(),
		Fiber:    n.TotalFibers.Float(),
		Calories: n.TotalCalories.Float(),
		Water:    water.Float(),
	}
}

// DailyIntake is what was consumed on one day, water included.
type DailyIntake struct {
	Date   time.Time            `json:"date"`
	Totals diary.NutrientTotals `json:"totals"`
}

type MealItemInput struct {
	FoodID      string  `json:"food_id"`
	AmountGrams float64 `json:"amount_grams"`
}

type CreateMealInput struct {
	LogDate  time.Time
	MealType diary.MealType
	Time     string
	Items    []MealItemInput
}

func (in CreateMealInput) Validate() error {
	if in.LogDate.IsZero() {
		return fmt.Errorf("meal log date is required")
	}
	if !in.MealType.IsValid() {
		return fmt.Errorf("unknown meal type %q", in.MealType)
	}
	for _, item := range in.Items {
		if item.FoodID == "" || item.AmountGrams <= 0 {
			return fmt.Errorf("meal items need a food and a positive amount")
		}
	}
	return diary.ValidateMealTime(in.Time)
}

// ListMeals lists the meals logged in a month (monthIndex is zero-based).
func (c *Client) ListMeals(ctx context.Context, year, monthIndex int) ([]*diary.MealRecord, error) {
	if err := calendar.ValidateMonth(monthIndex); err != nil {
		return nil, err
	}
	query := url.Values{}
	query.Set("month", strconv.Itoa(monthIndex+1))
	query.Set("year", strconv.Itoa(year))

	var data []mealWire
	if err := c.call(ctx, "meals.list", http.MethodGet, "/food-logs", query, nil, &data); err != nil {
		return nil, err
	}
	meals := make([]*diary.MealRecord, 0, len(data))
	for _, m := range data {
		meals = append(meals, m.toMeal())
	}
	return meals, nil
}

func (c *Client) CreateMeal(ctx context.Context, input CreateMealInput) (*diary.MealRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	body := map[string]any{
		"log_date":  formatDate(input.LogDate),
		"meal_type": input.MealType.String(),
		"details":   input.Items,
	}
	if input.Time != "" {
		body["time"] = input.Time
	}
	var data mealWire
	if err := c.call(ctx, "meals.create", http.MethodPost, "/food-logs", nil, body, &data); err != nil {
		return nil, err
	}
	return data.toMeal(), nil
}

func (c *Client) DeleteMeal(ctx context.Context, mealID string) error {
	return c.call(ctx, "meals.delete", http.MethodDelete, "/food-logs/"+url.PathEscape(mealID), nil, nil, nil)
}

func (c *Client) DailyIntake(ctx context.Context, date time.Time) (*DailyIntake, error) {
	query := url.Values{}
	query.Set("date", formatDate(date))
	var data nutritionWire
	if err := c.call(ctx, "meals.daily_intake", http.MethodGet, "/food-logs/daily-intake", query, nil, &data); err != nil {
		return nil, err
	}
	return &DailyIntake{Date: date, Totals: data.toTotals()}, nil
}

func (c *Client) MealDetails(ctx context.Context, mealID string) ([]diary.FoodLine, error) {
	query := url.Values{}
	query.Set("log_id", mealID)
	var data []mealDetailWire
	if err := c.call(ctx, "meals.details", http.MethodGet, "/meal-details", query, nil, &data); err != nil {
		return nil, err
	}
	lines := make([]diary.FoodLine, 0, len(data))
	for _, d := range data {
		lines = append(lines, d.toLine())
	}
	return lines, nil
}

func (c *Client) AddMealDetail(ctx context.Context, mealID string, item MealItemInput) (*diary.FoodLine, error) {
	if item.FoodID == "" || item.AmountGrams <= 0 {
		return nil, fmt.Errorf("meal items need a food and a positive amount")
	}
	body := map[string]any{
		"log_id":       mealID,
		"food_id":      item.FoodID,
		"amount_grams": item.AmountGrams,
	}
	var data mealDetailWire
	if err := c.call(ctx, "meals.add_detail", http.MethodPost, "/meal-details", nil, body, &data); err != nil {
		return nil, err
	}
	line := data.toLine()
	return &line, nil
}

func (c *Client) MealNutrition(ctx context.Context, mealID string) (diary.NutrientTotals, error) {
	query := url.Values{}
	query.Set("log_id", mealID)
	var data nutritionWire
	if err := c.call(ctx, "meals.nutrition", http.MethodGet, "/meal-details/nutrition", query, nil, &data); err != nil {
		return diary.NutrientTotals{}, err
	}
	totals := data.toTotals()
	totals.Water = 0
	return totals, nil
}

// MealTypes is a soft-fail read: the built-in list is returned on any error.
func (c *Client) MealTypes(ctx context.Context) []diary.MealType {
	var data []string
	if err := c.call(ctx, "meals.types", http.MethodGet, "/food-logs/meal-types", nil, nil, &data); err != nil {
		log.Warnf("get meal types, using defaults: %s", err)
		return diary.MealTypes
	}
	seen := map[diary.MealType]bool{}
	var types []diary.MealType
	for _, raw := range data {
		mt := diary.ParseMealType(raw)
		if seen[mt] {
			continue
		}
		seen[mt] = true
		types = append(types, mt)
	}
	if len(types) == 0 {
		return diary.MealTypes
	}
	return types
}
