package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tourneyhub/tourneyhub/internal/logger"
	"github.com/tourneyhub/tourneyhub/internal/models"
	"github.com/tourneyhub/tourneyhub/internal/services"
)

// TournamentGetter defines the interface that the service must implement.
type TournamentGetter interface {
	Get(ctx context.Context, id string) (*models.TournamentDB, error)
}

// NewGetTournamentHandler returns an HTTP handler serving a single tournament.
// @Summary Get a tournament
// @Description Returns one tournament by id.
// @Tags tournaments
// @Produce json
// @Param id path string true "Tournament id"
// @Success 200 {object} handlers.TournamentResponse
// @Failure 400 {object} handlers.ErrorResponse "Malformed id"
// @Failure 404 {object} handlers.ErrorResponse "Tournament not found"
// @Router /tournaments/{id} [get]
func NewGetTournamentHandler(svc TournamentGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tournament, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidTournamentID):
				writeError(w, http.StatusBadRequest, "Invalid tournament id")
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
