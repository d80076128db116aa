package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/tourneyhub/tourneyhub/internal/models"
)

func TestStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockStatsProvider(ctrl)
		mockSvc.EXPECT().GetPlatformStats(gomock.Any()).Return(&models.PlatformStats{
			TotalTournaments:  10,
			ActiveTournaments: 4,
			TotalPlayers:      25,
			TotalPrizePool:    "$1,500",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
		rr := httptest.NewRecorder()
		NewStatsHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{
			"totalTournaments": 10,
			"activeTournaments": 4,
			"totalPlayers": 25,
			"totalPrizePool": "$1,500"
		}`, rr.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc := NewMockStatsProvider(ctrl)
		mockSvc.EXPECT().GetPlatformStats(gomock.Any()).Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
		rr := httptest.NewRecorder()
		NewStatsHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	NewHealthHandler()(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"TourneyHub API is running"}`, rr.Body.String())
}
