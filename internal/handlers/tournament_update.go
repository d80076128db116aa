package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tourneyhub/tourneyhub/internal/logger"
	"github.com/tourneyhub/tourneyhub/internal/middlewares"
	"github.com/tourneyhub/tourneyhub/internal/models"
	"github.com/tourneyhub/tourneyhub/internal/services"
)

// TournamentUpdater defines the interface that the service must implement.
type TournamentUpdater interface {
	Update(ctx context.Context, id string, patch services.TournamentPatch) (*models.TournamentDB, error)
}

// UpdateTournamentRequest represents a partial tournament update. Absent
// fields are left untouched.
// swagger:model UpdateTournamentRequest
type UpdateTournamentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Rules       *string `json:"rules"`
	Status      *string `json:"status"`
}

// NewUpdateTournamentHandler returns an HTTP handler for editing a tournament.
// @Summary Update a tournament
// @Description Applies a partial update to name, description, rules, and status. Status may only move forward: registration, active, completed.
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path string true "Tournament id"
// @Param updateTournamentRequest body handlers.UpdateTournamentRequest true "Fields to change"
// @Success 200 {object} handlers.TournamentResponse "Updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input or status transition"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "Tournament not found"
// @Router /tournaments/{id} [put]
// @Security BearerAuth
func NewUpdateTournamentHandler(svc TournamentUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middlewares.GetUserIDFromContext(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req UpdateTournamentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		tournament, err := svc.Update(r.Context(), chi.URLParam(r, "id"), services.TournamentPatch{
			Name:        req.Name,
			Description: req.Description,
			Rules:       req.Rules,
			Status:      req.Status,
		})
		if err != nil {
			var vErr *services.ValidationError
			switch {
			case errors.As(err, &vErr):
				writeError(w, http.StatusBadRequest, vErr.Error())
			case errors.Is(err, services.ErrInvalidTournamentID),
				errors.Is(err, services.ErrInvalidStatus),
				errors.Is(err, services.ErrStatusMovesBackward):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrTournamentNotFound):
				writeError(w, http.StatusNotFound, "Tournament not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, TournamentResponse{Tournament: tournament})
	}
}
