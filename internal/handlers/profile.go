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

// ProfileProvider defines the interface that the service must implement.
type ProfileProvider interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*services.Profile, error)
}

// ProfileResponse represents a user profile with activity stats
// swagger:model ProfileResponse
type ProfileResponse struct {
	User        *models.UserDB        `json:"user"`
	Stats       models.ProfileStats   `json:"stats"`
	Tournaments []models.TournamentDB `json:"tournaments"`
}

// NewProfileHandler returns an HTTP handler serving the user's profile.
// @Summary Get the current user's profile
// @Description Returns the user together with tournaments they organized and activity counters.
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.ProfileResponse
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/profile [get]
// @Security BearerAuth
func NewProfileHandler(svc ProfileProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		profile, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		tournaments := profile.Tournaments
		if tournaments == nil {
			tournaments = []models.TournamentDB{}
		}

		writeJSON(w, http.StatusOK, ProfileResponse{
			User:        profile.User,
			Stats:       profile.Stats,
			Tournaments: tournaments,
		})
	}
}
