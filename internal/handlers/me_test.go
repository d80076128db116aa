package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/tourneyhub/tourneyhub/internal/middlewares"
	"github.com/tourneyhub/tourneyhub/internal/models"
	"github.com/tourneyhub/tourneyhub/internal/services"
)

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "john"}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockCurrentUserProvider(ctrl)
		mockSvc.EXPECT().CurrentUser(gomock.Any(), userID).Return(user, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
		rr := httptest.NewRecorder()
		NewMeHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var body map[string]any
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "john", body["username"])
		assert.NotContains(t, body, "passwordHash")
	})

	t.Run("unauthenticated", func(t *testing.T) {
		mockSvc := NewMockCurrentUserProvider(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		rr := httptest.NewRecorder()
		NewMeHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("user not found", func(t *testing.T) {
		mockSvc := NewMockCurrentUserProvider(ctrl)
		mockSvc.EXPECT().CurrentUser(gomock.Any(), userID).Return(nil, services.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
		rr := httptest.NewRecorder()
		NewMeHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
