package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/tourneyhub/tourneyhub/internal/logger"
	"github.com/tourneyhub/tourneyhub/internal/middlewares"
	"github.com/tourneyhub/tourneyhub/internal/models"
	"github.com/tourneyhub/tourneyhub/internal/services"
)

// CurrentUserProvider defines the interface that the service must implement.
type CurrentUserProvider interface {
	CurrentUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// NewMeHandler returns an HTTP handler serving the authenticated user.
// @Summary Get the current user
// @Description Returns the account behind the supplied bearer token.
// @Tags auth
// @Produce json
// @Success 200 {object} models.UserDB
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /auth/me [get]
// @Security BearerAuth
func NewMeHandler(svc CurrentUserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := svc.CurrentUser(r.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
