package handlers

import (
	"context"
	"net/http"

	"github.com/tourneyhub/tourneyhub/internal/logger"
	"github.com/tourneyhub/tourneyhub/internal/models"
)

// TournamentLister defines the interface that the service must implement.
type TournamentLister interface {
	List(ctx context.Context, game, status, search string) ([]models.TournamentDB, error)
}

// TournamentListResponse wraps a tournament listing
// swagger:model TournamentListResponse
type TournamentListResponse struct {
	Tournaments []models.TournamentDB `json:"tournaments"`
}

// NewListTournamentsHandler returns an HTTP handler for browsing tournaments.
// @Summary List tournaments
// @Description Lists tournaments newest first. Supports exact game and status filters plus a case-insensitive substring search over name, game, and organizer name. The value "all" disables a filter.
// @Tags tournaments
// @Produce json
// @Param game query string false "Exact game filter"
// @Param status query string false "Status filter: registration, active, or completed"
// @Param search query string false "Substring search"
// @Success 200 {object} handlers.TournamentListResponse
// @Router /tournaments [get]
func NewListTournamentsHandler(svc TournamentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		tournaments, err := svc.List(r.Context(), q.Get("game"), q.Get("status"), q.Get("search"))
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if tournaments == nil {
			tournaments = []models.TournamentDB{}
		}

		writeJSON(w, http.StatusOK, TournamentListResponse{Tournaments: tournaments})
	}
}
