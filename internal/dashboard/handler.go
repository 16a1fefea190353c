package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/apiclient"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/calendar"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/diary"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/telemetry/tracing"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/nutrition/month/{year}/{month}", h.handleNutritionMonth).Methods("GET", "OPTIONS").Name("nutrition-month")
	router.HandleFunc("/workouts/month/{year}/{month}", h.handleWorkoutMonth).Methods("GET", "OPTIONS").Name("workouts-month")
	router.HandleFunc("/today", h.handleToday).Methods("GET", "OPTIONS").Name("today")
	router.HandleFunc("/nutrition/meals", h.handleLogMeal).Methods("POST", "OPTIONS").Name("log-meal")
	router.HandleFunc("/nutrition/meals/{id}", h.handleDeleteMeal).Methods("DELETE", "OPTIONS").Name("delete-meal")
	router.HandleFunc("/workouts/sessions/{id}/complete", h.handleCompleteSession).Methods("POST", "OPTIONS").Name("complete-session")
}

// URL months are 1..12
func parseYearMonth(r *http.Request) (year, monthIndex int, err error) {
	vars := mux.Vars(r)
	year, err = strconv.Atoi(vars["year"])
	if err != nil {
		return 0, 0, errors.New("invalid year")
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		return 0, 0, errors.New("invalid month")
	}
	if err := calendar.ValidateMonth(month - 1); err != nil {
		return 0, 0, err
	}
	return year, month - 1, nil
}

func (h *Handler) handleNutritionMonth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.nutritionMonth")
	defer span.End()

	year, monthIndex, err := parseYearMonth(r)
	if err != nil {
		pkg.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	selectedDay := 0
	if dayParam := r.URL.Query().Get("day"); dayParam != "" {
		if selectedDay, err = strconv.Atoi(dayParam); err != nil {
			pkg.WriteError(w, http.StatusBadRequest, "invalid day")
			return
		}
	}

	month, err := h.service.NutritionMonth(ctx, year, monthIndex, selectedDay)
	if err != nil {
		writeServiceError(w, "nutrition month", err)
		return
	}
	pkg.WriteData(w, http.StatusOK, month)
}

func (h *Handler) handleWorkoutMonth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.workoutMonth")
	defer span.End()

	year, monthIndex, err := parseYearMonth(r)
	if err != nil {
		pkg.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	month, err := h.service.WorkoutMonth(ctx, year, monthIndex)
	if err != nil {
		writeServiceError(w, "workout month", err)
		return
	}
	pkg.WriteData(w, http.StatusOK, month)
}

func (h *Handler) handleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.today")
	defer span.End()

	date := h.service.now()
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		parsed, err := time.Parse("2006-01-02", dateParam)
		if err != nil {
			pkg.WriteError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	intake, err := h.service.Today(ctx, date)
	if err != nil {
		writeServiceError(w, "today", err)
		return
	}
	pkg.WriteData(w, http.StatusOK, intake)
}

func (h *Handler) handleCompleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.completeSession")
	defer span.End()

	sessionID := mux.Vars(r)["id"]
	if sessionID == "" {
		pkg.WriteError(w, http.StatusBadRequest, "missing session id")
		return
	}

	completed, err := h.service.CompleteSession(ctx, sessionID)
	if err != nil {
		writeServiceError(w, "complete session", err)
		return
	}
	pkg.WriteData(w, http.StatusOK, completed)
}

type logMealRequest struct {
	Name     string      `json:"name"`
	MealType string      `json:"mealType"`
	Date     string      `json:"date"`
	Time     string      `json:"time"`
	Items    []MealEntry `json:"items"`
	DryRun   bool        `json:"dryRun"`
}

func (h *Handler) handleLogMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.logMeal")
	defer span.End()

	var req logMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.WriteError(w, http.StatusBadRequest, "invalid meal body")
		return
	}
	logDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		pkg.WriteError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	meal, err := h.service.LogMeal(ctx, LogMealInput{
		Name:     req.Name,
		MealType: diary.ParseMealType(req.MealType),
		Date:     logDate,
		Time:     req.Time,
		Entries:  req.Items,
		DryRun:   req.DryRun,
	})
	if err != nil {
		writeServiceError(w, "log meal", err)
		return
	}
	status := http.StatusCreated
	if meal.IsLocal() {
		status = http.StatusOK
	}
	pkg.WriteData(w, status, meal)
}

func (h *Handler) handleDeleteMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.deleteMeal")
	defer span.End()

	if err := h.service.DeleteMeal(ctx, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, "delete meal", err)
		return
	}
	pkg.WriteData(w, http.StatusOK, nil)
}

func writeServiceError(w http.ResponseWriter, operation string, err error) {
	switch {
	case errors.Is(err, calendar.ErrInvalidMonth), errors.Is(err, ErrInvalidMeal):
		pkg.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnknownFood):
		pkg.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, diary.ErrSessionNotCompletable):
		pkg.WriteError(w, http.StatusConflict, err.Error())
	default:
		status := apiclient.ResponseStatus(err)
		if status >= http.StatusInternalServerError {
			log.Errorf("%s: %s", operation, err)
		} else {
			log.Debugf("%s: %s", operation, err)
		}
		var reqErr *apiclient.RequestError
		if errors.As(err, &reqErr) {
			pkg.WriteError(w, status, reqErr.Message)
			return
		}
		pkg.WriteError(w, status, "TrainDiary API is unavailable")
	}
}
