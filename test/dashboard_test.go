package test

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type totalsData struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Water    float64 `json:"water"`
}

type reportData struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Water    float64 `json:"water"`
}

func (s *IntegrationTestSuite) TestNutritionMonth() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resp := s.do(ctx, http.MethodGet, "/nutrition/month/2024/2", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	s.doLogin(ctx)

	resp = s.do(ctx, http.MethodGet, "/nutrition/month/2024/2?day=29", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var month struct {
		Title string `json:"title"`
		Days  []struct {
			DayNumber      int        `json:"dayNumber"`
			IsCurrentMonth bool       `json:"isCurrentMonth"`
			Totals         totalsData `json:"totals"`
		} `json:"days"`
		Totals      totalsData `json:"totals"`
		SelectedDay int        `json:"selectedDay"`
		Progress    reportData `json:"progress"`
	}
	envelope := s.readEnvelope(resp, &month)
	require.True(t, envelope.Success)

	assert.Equal(t, "February 2024", month.Title)
	assert.Len(t, month.Days, 35)
	assert.Equal(t, 1850.0, month.Totals.Calories)
	assert.Equal(t, 29, month.SelectedDay)
	assert.Equal(t, 50.0, month.Progress.Calories)
	assert.Equal(t, 50.0, month.Progress.Protein)

	var seen []int
	for _, d := range month.Days {
		if d.IsCurrentMonth && d.Totals.Calories > 0 {
			seen = append(seen, d.DayNumber)
		}
	}
	assert.Equal(t, []int{1, 29}, seen)
}

func (s *IntegrationTestSuite) TestToday() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.doLogin(ctx)

	resp := s.do(ctx, http.MethodGet, "/today?date=2024-02-29", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var today struct {
		Date     string     `json:"date"`
		Totals   totalsData `json:"totals"`
		Progress reportData `json:"progress"`
	}
	s.readEnvelope(resp, &today)
	assert.Equal(t, "2024-02-29", today.Date)
	assert.Equal(t, 1250.0, today.Totals.Calories)
	assert.Equal(t, 500.0, today.Totals.Water)
	assert.Equal(t, 50.0, today.Progress.Calories)
	assert.Equal(t, 20.0, today.Progress.Water)
}
