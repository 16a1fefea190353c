package apiclient_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/apiclient"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/calendar"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/diary"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Login(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusOK, `{
		"success": true,
		"data": {
			"token": "jwt-token",
			"user": {"user_id": 42, "email": "ana@traindiary.app", "username": "ana"}
		}
	}`)

	res, err := newTestClient(srv, "").Login(context.Background(), apiclient.Credentials{
		Email:    "ana@traindiary.app",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", res.Token)
	assert.Equal(t, "42", res.User.ID)
	assert.Equal(t, "ana", res.User.Username)

	require.Len(t, *requests, 1)
	assert.Equal(t, http.MethodPost, (*requests)[0].Method)
	assert.Equal(t, "/api/auth/login", (*requests)[0].Path)
	assert.Equal(t, map[string]any{"email": "ana@traindiary.app", "password": "secret"}, (*requests)[0].Body)
}

func TestClient_Login_ValidationBeforeRequest(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusOK, `{"success":true}`)
	client := newTestClient(srv, "")

	_, err := client.Login(context.Background(), apiclient.Credentials{Password: "x"})
	assert.ErrorIs(t, err, apiclient.ErrMissingEmail)
	_, err = client.Login(context.Background(), apiclient.Credentials{Email: "a@b.c"})
	assert.ErrorIs(t, err, apiclient.ErrMissingPassword)
	err = client.ChangePassword(context.Background(), apiclient.ChangePasswordInput{CurrentPassword: "x"})
	assert.ErrorIs(t, err, apiclient.ErrMissingNewPassword)

	assert.Empty(t, *requests)
}

func TestClient_Register_Conflict(t *testing.T) {
	srv, _ := newTestAPI(t, http.StatusConflict, `{"success":false,"message":"Email already in use."}`)
	_, err := newTestClient(srv, "").Register(context.Background(), apiclient.RegisterInput{
		Credentials: apiclient.Credentials{Email: "ana@traindiary.app", Password: "secret"},
		Username:    "ana",
	})
	require.Error(t, err)
	assert.Equal(t, "Email already in use.", err.Error())
}

func TestClient_ListFoods_Normalised(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusOK, `{
		"success": true,
		"data": [
			{
				"food_id": 3,
				"name": "Chicken breast",
				"calories_per_serving": 165,
				"protein_per_serving": "31",
				"carbs_per_serving": null,
				"fat_per_serving": 3.6,
				"fiber_per_serving": "n/a",
				"serving_type": "100 g"
			}
		]
	}`)

	foods, err := newTestClient(srv, "").ListFoods(context.Background(), "chicken")
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, apiclient.Food{
		ID:           "3",
		Name:         "Chicken breast",
		Calories:     165,
		Protein:      31,
		Carbs:        0,
		Fat:          3.6,
		Fiber:        0,
		ServingType:  "100 g",
		ServingGrams: 100,
	}, foods[0])
	assert.Equal(t, "search=chicken", (*requests)[0].Query)

	// 150 g of a 165 kcal per 100 g food
	meal := &diary.MealRecord{Items: []diary.FoodLine{foods[0].Line(150)}}
	assert.InDelta(t, 247.5, diary.AggregateMeals([]*diary.MealRecord{meal}).Calories, 1e-9)
}

func TestClient_ListMeals(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusOK, `{
		"success": true,
		"data": [
			{
				"log_id": 11,
				"log_date": "2024-02-29T00:00:00.000Z",
				"meal_type": "lunch",
				"time": "12:30",
				"total_calories": 400,
				"details": [
					{
						"meal_detail_id": 1,
						"food_id": 3,
						"amount_grams": "150",
						"food": {"food_id": 3, "name": "Chicken breast", "calories_per_serving": 165, "serving_type": "100 g"}
					}
				]
			},
			{
				"log_id": "12",
				"log_date": "2024-02-03",
				"meal_type": "Brunch",
				"total_calories": "300",
				"total_protein": 20,
				"total_fibers": 4,
				"details": [{"meal_detail_id": 2, "food_id": 9, "amount_grams": 50}]
			}
		]
	}`)

	meals, err := newTestClient(srv, "tok").ListMeals(context.Background(), 2024, 1)
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, "month=2&year=2024", (*requests)[0].Query)

	lunch := meals[0]
	assert.Equal(t, "11", lunch.ID)
	assert.Equal(t, diary.MealTypeLunch, lunch.MealType)
	assert.Equal(t, "Lunch", lunch.Name)
	assert.Equal(t, 29, lunch.Day().Day())
	require.Len(t, lunch.Items, 1)
	assert.InDelta(t, 247.5, lunch.Totals().Calories, 1e-9)

	other := meals[1]
	assert.Equal(t, diary.MealTypeOther, other.MealType)
	assert.Empty(t, other.Items)
	assert.Equal(t, diary.NutrientTotals{Calories: 300, Protein: 20, Fiber: 4}, other.Totals())

	buckets := calendar.BucketByDay(meals, 2024, 1)
	assert.Len(t, buckets[29], 1)
	assert.Len(t, buckets[3], 1)
}

func TestClient_ListMeals_InvalidMonth(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusOK, `{"success":true}`)
	_, err := newTestClient(srv, "").ListMeals(context.Background(), 2024, 12)
	assert.ErrorIs(t, err, calendar.ErrInvalidMonth)
	assert.Empty(t, *requests)
}

func TestClient_CreateMeal(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusCreated, `{
		"success": true,
		"data": {"log_id": 99, "log_date": "2024-03-01", "meal_type": "Dinner", "details": []}
	}`)

	meal, err := newTestClient(srv, "tok").CreateMeal(context.Background(), apiclient.CreateMealInput{
		LogDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		MealType: diary.MealTypeDinner,
		Time:     "19:00",
		Items:    []apiclient.MealItemInput{{FoodID: "3", AmountGrams: 200}},
	})
	require.NoError(t, err)
	assert.Equal(t, "99", meal.ID)

	body := (*requests)[0].Body
	assert.Equal(t, "2024-03-01", body["log_date"])
	assert.Equal(t, "Dinner", body["meal_type"])
	assert.Equal(t, "19:00", body["time"])
	assert.Equal(t, []any{map[string]any{"food_id": "3", "amount_grams": float64(200)}}, body["details"])

	_, err = newTestClient(srv, "tok").CreateMeal(context.Background(), apiclient.CreateMealInput{
		LogDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		MealType: diary.MealTypeDinner,
		Time:     "7pm",
	})
	assert.Error(t, err)
	assert.Len(t, *requests, 1)
}

func TestClient_DailyIntake(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusOK, `{
		"success": true,
		"data": {"total_calories": 1800, "total_protein": 120, "total_carbs": 200, "total_fat": 60, "total_fibers": 25, "water_ml": 1500}
	}`)

	day := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	intake, err := newTestClient(srv, "tok").DailyIntake(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, "date=2024-02-29", (*requests)[0].Query)
	assert.Equal(t, day, intake.Date)
	assert.Equal(t, diary.NutrientTotals{Protein: 120, Carbs: 200, Fats: 60, Fiber: 25, Calories: 1800, Water: 1500}, intake.Totals)
}

func TestClient_MealTypes_SoftFail(t *testing.T) {
	srv, _ := newTestAPI(t, http.StatusNotFound, `{"success":false}`)
	assert.Equal(t, diary.MealTypes, newTestClient(srv, "").MealTypes(context.Background()))

	srv, _ = newTestAPI(t, http.StatusOK, `{"success":true,"data":["breakfast","snack","snacks"]}`)
	assert.Equal(t,
		[]diary.MealType{diary.MealTypeBreakfast, diary.MealTypeSnacks},
		newTestClient(srv, "").MealTypes(context.Background()),
	)
}

const sessionJSON = `{
	"session_id": 7,
	"scheduled_date": "2024-02-12",
	"status": "in_progress",
	"type": "Strength",
	"details": [
		{
			"session_detail_id": 70,
			"exercise_id": 5,
			"planned_sets": 3,
			"planned_reps": "8",
			"exercise": {"name": "Squat", "category": "legs"},
			"logs": [
				{"set_id": 700, "actual_reps": 8, "weight_kg": 100, "duration_seconds": null, "status": 1},
				{"set_id": 701, "actual_reps": 8, "weight_kg": "100", "status": false}
			]
		}
	]
}`

func TestClient_GetWorkoutSession(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusOK, `{"success":true,"data":`+sessionJSON+`}`)

	s, err := newTestClient(srv, "tok").GetWorkoutSession(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "/api/workout-sessions/7", (*requests)[0].Path)

	assert.Equal(t, "7", s.ID)
	assert.Equal(t, diary.StatusInProgress, s.Status)
	assert.Equal(t, 12, s.Day().Day())
	require.Len(t, s.Exercises, 1)
	detail := s.Exercises[0]
	assert.Equal(t, "Squat", detail.Exercise.Name)
	assert.Equal(t, 8, detail.PlannedReps)
	require.Len(t, detail.Logs, 2)
	assert.True(t, detail.Logs[0].Status)
	require.NotNil(t, detail.Logs[0].WeightKg)
	assert.Equal(t, 100.0, *detail.Logs[0].WeightKg)
	assert.Nil(t, detail.Logs[0].DurationSeconds)
	assert.False(t, detail.Logs[1].Status)
	assert.False(t, s.CanComplete())
}

func TestClient_CompleteWorkoutSession(t *testing.T) {
	t.Run("not completable", func(t *testing.T) {
		srv, requests := newTestAPI(t, http.StatusOK, `{"success":true}`)
		workout := &diary.WorkoutSession{
			ID: "7",
			Exercises: []diary.SessionDetail{
				{Exercise: diary.ExerciseMeta{Name: "Squat"}, Logs: []diary.ExerciseLog{{Status: false}}},
			},
		}
		_, err := newTestClient(srv, "tok").CompleteWorkoutSession(context.Background(), workout)
		assert.True(t, errors.Is(err, diary.ErrSessionNotCompletable))
		assert.Empty(t, *requests)
	})

	t.Run("completable", func(t *testing.T) {
		srv, requests := newTestAPI(t, http.StatusOK, `{"success":true,"data":{"session_id":7,"status":"COMPLETED"}}`)
		workout := &diary.WorkoutSession{
			ID: "7",
			Exercises: []diary.SessionDetail{
				{Exercise: diary.ExerciseMeta{Name: "Squat"}, Logs: []diary.ExerciseLog{{Status: true}}},
			},
		}
		done, err := newTestClient(srv, "tok").CompleteWorkoutSession(context.Background(), workout)
		require.NoError(t, err)
		assert.Equal(t, diary.StatusCompleted, done.Status)

		require.Len(t, *requests, 1)
		assert.Equal(t, http.MethodPut, (*requests)[0].Method)
		assert.Equal(t, "/api/workout-sessions/7", (*requests)[0].Path)
		assert.Equal(t, map[string]any{"status": "COMPLETED"}, (*requests)[0].Body)
	})
}

func TestClient_SessionSets(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusOK, `{"success":true,"data":{"set_id":701,"actual_reps":10,"weight_kg":null,"duration_seconds":45,"status":true}}`)
	client := newTestClient(srv, "tok")

	logged, err := client.LogSet(context.Background(), "7", "701", apiclient.SetInput{ActualReps: 10, Status: true})
	require.NoError(t, err)
	assert.Equal(t, "701", logged.ID)
	assert.Nil(t, logged.WeightKg)
	require.NotNil(t, logged.DurationSeconds)
	assert.Equal(t, 45.0, *logged.DurationSeconds)

	_, err = client.AddSet(context.Background(), "7", "70", apiclient.SetInput{ActualReps: 10})
	require.NoError(t, err)

	assert.Equal(t, "/api/workout-sessions/7/sets/701", (*requests)[0].Path)
	assert.Equal(t, http.MethodPut, (*requests)[0].Method)
	assert.Equal(t, "/api/workout-sessions/7/exercises/70/sets", (*requests)[1].Path)
	assert.Equal(t, http.MethodPost, (*requests)[1].Method)
}

func TestClient_SessionTypes_SoftFail(t *testing.T) {
	srv, _ := newTestAPI(t, http.StatusInternalServerError, `{"success":false}`)
	assert.Equal(t, apiclient.DefaultSessionTypes, newTestClient(srv, "").SessionTypes(context.Background()))

	srv, _ = newTestAPI(t, http.StatusOK, `{"success":true,"data":["Push","Pull"]}`)
	assert.Equal(t, []string{"Push", "Pull"}, newTestClient(srv, "").SessionTypes(context.Background()))
}

func TestClient_MeOrDefault(t *testing.T) {
	srv, _ := newTestAPI(t, http.StatusUnauthorized, `{"success":false,"message":"Unauthorized"}`)
	client := newTestClient(srv, "tok")
	fallback := &session.User{ID: "42", Email: "ana@traindiary.app"}
	assert.Equal(t, fallback, client.MeOrDefault(context.Background(), fallback))
}

func TestClient_Summary(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusOK, `{"success":true,"data":{"total_workouts":"12","completed_workouts":9,"total_calories":54000.5,"gr_score":71}}`)
	summary, err := newTestClient(srv, "tok").Summary(context.Background(), 2024, 0)
	require.NoError(t, err)
	assert.Equal(t, "month=1&year=2024", (*requests)[0].Query)
	assert.Equal(t, &apiclient.Summary{TotalWorkouts: 12, CompletedWorkouts: 9, TotalCalories: 54000.5, GRScore: 71}, summary)
}

func TestClient_ListWorkoutPlans(t *testing.T) {
	srv, _ := newTestAPI(t, http.StatusOK, `{"success":true,"data":[{"plan_id":1,"name":"5x5","duration_weeks":12,"exercises":[{"exercise_id":5,"name":"Squat","sets":5,"reps":5}]}]}`)
	plans, err := newTestClient(srv, "tok").ListWorkoutPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "5x5", plans[0].Name)
	assert.Equal(t, 12, plans[0].DurationWeeks)
	assert.Equal(t, []apiclient.PlanExercise{{ExerciseID: "5", Name: "Squat", Sets: 5, Reps: 5}}, plans[0].Exercises)
}

func TestClient_Progress(t *testing.T) {
	srv, _ := newTestAPI(t, http.StatusOK, `{"success":true,"data":{"gr_score":64.5,"workouts_completed":40,"current_streak":3,"history":[{"date":"2024-02-01","gr_score":60}]}}`)
	p, err := newTestClient(srv, "tok").Progress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 64.5, p.GRScore)
	assert.Equal(t, 3, p.CurrentStreakDays)
	require.Len(t, p.History, 1)
	assert.Equal(t, 60.0, p.History[0].GRScore)
}

func TestClient_DeleteMeal(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusOK, `{"success":true,"message":"Deleted"}`)
	require.NoError(t, newTestClient(srv, "tok").DeleteMeal(context.Background(), "99"))

	require.Len(t, *requests, 1)
	assert.Equal(t, http.MethodDelete, (*requests)[0].Method)
	assert.Equal(t, "/api/food-logs/99", (*requests)[0].Path)
	assert.Nil(t, (*requests)[0].Body)
}

func TestClient_MealDetails(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusOK, `{
		"success": true,
		"data": [
			{"meal_detail_id": 1, "food_id": 7, "amount_grams": "150",
			 "food": {"food_id": 7, "name": "Chicken breast", "calories_per_serving": 165, "protein_per_serving": "31", "serving_type": "100g (cooked)"}},
			{"meal_detail_id": 2, "food_id": 9, "amount_grams": 50}
		]
	}`)

	lines, err := newTestClient(srv, "tok").MealDetails(context.Background(), "99")
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, (*requests)[0].Method)
	assert.Equal(t, "/api/meal-details", (*requests)[0].Path)
	assert.Equal(t, "log_id=99", (*requests)[0].Query)

	require.Len(t, lines, 2)
	assert.Equal(t, "7", lines[0].FoodID)
	assert.Equal(t, "Chicken breast", lines[0].Name)
	assert.Equal(t, 150.0, lines[0].AmountGrams)
	assert.InDelta(t, 247.5, lines[0].Contribution().Calories, 1e-9)
	assert.InDelta(t, 46.5, lines[0].Contribution().Protein, 1e-9)
	// line without its food keeps the id and amount only
	assert.Equal(t, diary.FoodLine{FoodID: "9", AmountGrams: 50}, lines[1])
}

func TestClient_AddMealDetail(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusCreated, `{"success":true,"data":{"meal_detail_id":3,"food_id":7,"amount_grams":80}}`)
	client := newTestClient(srv, "tok")

	line, err := client.AddMealDetail(context.Background(), "99", apiclient.MealItemInput{FoodID: "7", AmountGrams: 80})
	require.NoError(t, err)
	assert.Equal(t, "7", line.FoodID)
	assert.Equal(t, 80.0, line.AmountGrams)

	require.Len(t, *requests, 1)
	assert.Equal(t, http.MethodPost, (*requests)[0].Method)
	assert.Equal(t, "/api/meal-details", (*requests)[0].Path)
	assert.Equal(t, map[string]any{"log_id": "99", "food_id": "7", "amount_grams": float64(80)}, (*requests)[0].Body)

	for _, item := range []apiclient.MealItemInput{{AmountGrams: 80}, {FoodID: "7"}, {FoodID: "7", AmountGrams: -1}} {
		_, err := client.AddMealDetail(context.Background(), "99", item)
		assert.Error(t, err)
	}
	assert.Len(t, *requests, 1)
}

func TestClient_MealNutrition(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusOK, `{
		"success": true,
		"data": {"total_calories": "640", "total_protein": 40, "total_carbs": 70, "total_fat": 20, "total_fibers": 8, "water_ml": 300}
	}`)

	totals, err := newTestClient(srv, "tok").MealNutrition(context.Background(), "99")
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, (*requests)[0].Method)
	assert.Equal(t, "/api/meal-details/nutrition", (*requests)[0].Path)
	assert.Equal(t, "log_id=99", (*requests)[0].Query)
	assert.Equal(t, diary.NutrientTotals{Protein: 40, Carbs: 70, Fats: 20, Fiber: 8, Calories: 640}, totals)
}

func TestClient_ListWorkoutSessions(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusOK, `{"success":true,"data":[`+sessionJSON+`,{"session_id":8,"scheduled_date":"2024-02-14T00:00:00.000Z","status":"missed"}]}`)

	sessions, err := newTestClient(srv, "tok").ListWorkoutSessions(context.Background(), 2024, 1)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, (*requests)[0].Method)
	assert.Equal(t, "/api/workout-sessions", (*requests)[0].Path)
	assert.Equal(t, "month=2&year=2024", (*requests)[0].Query)

	require.Len(t, sessions, 2)
	assert.Equal(t, "7", sessions[0].ID)
	assert.Equal(t, "70", sessions[0].Exercises[0].ID)
	assert.Equal(t, 3, sessions[0].Exercises[0].PlannedSets)
	assert.Equal(t, diary.StatusMissed, sessions[1].Status)
	assert.Equal(t, 14, sessions[1].Day().Day())

	_, err = newTestClient(srv, "tok").ListWorkoutSessions(context.Background(), 2024, -1)
	assert.ErrorIs(t, err, calendar.ErrInvalidMonth)
	assert.Len(t, *requests, 1)
}

func TestClient_CreateWorkoutSession(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusCreated, `{"success":true,"data":{"session_id":12,"scheduled_date":"2024-03-05","status":"PENDING","type":"Strength"}}`)
	client := newTestClient(srv, "tok")

	created, err := client.CreateWorkoutSession(context.Background(), apiclient.CreateSessionInput{
		ScheduledDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Type:          "Strength",
		Notes:         "heavy day",
		Exercises:     []apiclient.PlannedExercise{{ExerciseID: "5", PlannedSets: 5, PlannedReps: 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, "12", created.ID)
	assert.Equal(t, diary.StatusPending, created.Status)

	require.Len(t, *requests, 1)
	assert.Equal(t, http.MethodPost, (*requests)[0].Method)
	assert.Equal(t, "/api/workout-sessions", (*requests)[0].Path)
	assert.Equal(t, map[string]any{
		"scheduled_date": "2024-03-05",
		"type":           "Strength",
		"notes":          "heavy day",
		"exercises": []any{
			map[string]any{"exercise_id": "5", "planned_sets": float64(5), "planned_reps": float64(5)},
		},
	}, (*requests)[0].Body)

	_, err = client.CreateWorkoutSession(context.Background(), apiclient.CreateSessionInput{Type: "Cardio"})
	assert.Error(t, err)
	assert.Len(t, *requests, 1)
}

func TestClient_AddSessionExercise(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusCreated, `{
		"success": true,
		"data": {"session_detail_id": 71, "exercise_id": 6, "planned_sets": "4", "planned_reps": 10,
		         "exercise": {"name": "Bench press", "category": "chest"}, "logs": []}
	}`)

	detail, err := newTestClient(srv, "tok").AddSessionExercise(context.Background(), "7",
		apiclient.PlannedExercise{ExerciseID: "6", PlannedSets: 4, PlannedReps: 10})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, (*requests)[0].Method)
	assert.Equal(t, "/api/workout-sessions/7/exercises", (*requests)[0].Path)
	assert.Equal(t, map[string]any{"exercise_id": "6", "planned_sets": float64(4), "planned_reps": float64(10)}, (*requests)[0].Body)

	assert.Equal(t, "71", detail.ID)
	assert.Equal(t, "6", detail.ExerciseID)
	assert.Equal(t, 4, detail.PlannedSets)
	assert.Equal(t, 10, detail.PlannedReps)
	assert.Equal(t, diary.ExerciseMeta{Name: "Bench press", Category: "chest"}, detail.Exercise)
	assert.Empty(t, detail.Logs)
}

func TestClient_SetInput_Weight(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusOK, `{"success":true,"data":{"set_id":702,"actual_reps":5,"weight_kg":"102.5","status":0}}`)
	client := newTestClient(srv, "tok")

	weight := 102.5
	logged, err := client.AddSet(context.Background(), "7", "70", apiclient.SetInput{ActualReps: 5, WeightKg: &weight})
	require.NoError(t, err)
	require.NotNil(t, logged.WeightKg)
	assert.Equal(t, 102.5, *logged.WeightKg)
	assert.Nil(t, logged.DurationSeconds)
	assert.False(t, logged.Status)

	_, err = client.LogSet(context.Background(), "7", "702", apiclient.SetInput{ActualReps: 5, Status: true})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"actual_reps": float64(5), "weight_kg": 102.5, "status": false}, (*requests)[0].Body)
	// unset weight is left out rather than sent as 0
	assert.Equal(t, map[string]any{"actual_reps": float64(5), "status": true}, (*requests)[1].Body)
}

func TestClient_UpdateSessionStatus(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusOK, `{"success":true,"data":{"session_id":7,"status":"MISSED"}}`)
	client := newTestClient(srv, "tok")

	updated, err := client.UpdateSessionStatus(context.Background(), "7", diary.StatusMissed)
	require.NoError(t, err)
	assert.Equal(t, diary.StatusMissed, updated.Status)
	assert.Equal(t, http.MethodPut, (*requests)[0].Method)
	assert.Equal(t, "/api/workout-sessions/7", (*requests)[0].Path)
	assert.Equal(t, map[string]any{"status": "MISSED"}, (*requests)[0].Body)

	_, err = client.UpdateSessionStatus(context.Background(), "7", diary.SessionStatus("PAUSED"))
	assert.Error(t, err)
	assert.Len(t, *requests, 1)
}

func TestClient_DeleteWorkoutSession(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusOK, `{"success":true}`)
	require.NoError(t, newTestClient(srv, "tok").DeleteWorkoutSession(context.Background(), "7"))
	assert.Equal(t, http.MethodDelete, (*requests)[0].Method)
	assert.Equal(t, "/api/workout-sessions/7", (*requests)[0].Path)

	srv, _ = newTestAPI(t, http.StatusNotFound, `{"success":false,"message":"Session not found"}`)
	err := newTestClient(srv, "tok").DeleteWorkoutSession(context.Background(), "404")
	assert.Equal(t, http.StatusNotFound, apiclient.ResponseStatus(err))
}

func TestClient_ListExercises(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusOK, `{"success":true,"data":[{"exercise_id":5,"name":"Squat","category":"legs","description":"Back squat"}]}`)
	client := newTestClient(srv, "tok")

	exercises, err := client.ListExercises(context.Background(), "legs")
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, (*requests)[0].Method)
	assert.Equal(t, "/api/exercises", (*requests)[0].Path)
	assert.Equal(t, "category=legs", (*requests)[0].Query)
	assert.Equal(t, []apiclient.Exercise{{ID: "5", Name: "Squat", Category: "legs", Description: "Back squat"}}, exercises)

	_, err = client.ListExercises(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, (*requests)[1].Query)
}

func TestClient_ListUsers(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusOK, `{"success":true,"data":[{"user_id":1,"email":"ana@example.com","full_name":"Ana Lima"},null,{"id":"2","email":"bo@example.com","username":"bo"}]}`)

	users, err := newTestClient(srv, "tok").ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, (*requests)[0].Method)
	assert.Equal(t, "/api/users", (*requests)[0].Path)
	assert.Equal(t, []*session.User{
		{ID: "1", Email: "ana@example.com", FullName: "Ana Lima"},
		{ID: "2", Email: "bo@example.com", Username: "bo"},
	}, users)
}

func TestClient_UpdateMe(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusOK, `{"success":true,"data":{"user_id":1,"email":"ana@example.com","full_name":"Ana L."}}`)

	user, err := newTestClient(srv, "tok").UpdateMe(context.Background(), apiclient.ProfileUpdate{FullName: "Ana L."})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, (*requests)[0].Method)
	assert.Equal(t, "/api/users/me", (*requests)[0].Path)
	assert.Equal(t, map[string]any{"full_name": "Ana L."}, (*requests)[0].Body)
	assert.Equal(t, &session.User{ID: "1", Email: "ana@example.com", FullName: "Ana L."}, user)
}

func TestClient_Verify(t *testing.T) {
	srv, requests := newTestAPI(t, http.StatusOK, `{"success":true,"data":{"user":{"id":3,"email":"ana@example.com","username":"ana"}}}`)

	user, err := newTestClient(srv, "tok").Verify(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, (*requests)[0].Method)
	assert.Equal(t, "/api/auth/verify", (*requests)[0].Path)
	assert.Equal(t, "Bearer tok", (*requests)[0].Auth)
	assert.Equal(t, &session.User{ID: "3", Email: "ana@example.com", Username: "ana"}, user)

	srv, _ = newTestAPI(t, http.StatusUnauthorized, `{"success":false,"message":"Invalid token"}`)
	_, err = newTestClient(srv, "stale").Verify(context.Background())
	assert.Equal(t, http.StatusUnauthorized, apiclient.ResponseStatus(err))
}
