package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tourneyhub/tourneyhub/internal/logger"
	"github.com/tourneyhub/tourneyhub/internal/middlewares"
	"github.com/tourneyhub/tourneyhub/internal/models"
	"github.com/tourneyhub/tourneyhub/internal/services"
)

// TournamentJoiner defines the interface that the service must implement.
type TournamentJoiner interface {
	Join(ctx context.Context, id string, userID uuid.UUID) (*models.TournamentDB, error)
}

// JoinTournamentResponse represents a successful join
// swagger:model JoinTournamentResponse
type JoinTournamentResponse struct {
	// Success message
	// default: Successfully joined tournament!
	Message    string               `json:"message"`
	Tournament *models.TournamentDB `json:"tournament"`
}

// NewJoinTournamentHandler returns an HTTP handler for joining a tournament.
// @Summary Join a tournament
// @Description Registers the authenticated user as a participant. Rejected when registration is closed, the user already joined, or the tournament is full.
// @Tags tournaments
// @Produce json
// @Param id path string true "Tournament id"
// @Success 200 {object} handlers.JoinTournamentResponse "Joined"
// @Failure 400 {object} handlers.ErrorResponse "Closed, duplicate, full, or malformed id"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "Tournament not found"
// @Router /tournaments/{id}/join [post]
// @Security BearerAuth
func NewJoinTournamentHandler(svc TournamentJoiner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		tournament, err := svc.Join(r.Context(), chi.URLParam(r, "id"), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidTournamentID):
				writeError(w, http.StatusBadRequest, "Invalid tournament id")
			case errors.Is(err, services.ErrTournamentNotFound):
				writeError(w, http.StatusNotFound, "Tournament not found")
			case errors.Is(err, services.ErrTournamentNotOpen),
				errors.Is(err, services.ErrAlreadyJoined),
				errors.Is(err, services.ErrTournamentFull):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, JoinTournamentResponse{
			Message:    "Successfully joined tournament!",
			Tournament: tournament,
		})
	}
}
