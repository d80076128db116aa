package handlers

import (
	"context"
	"net/http"

	"github.com/tourneyhub/tourneyhub/internal/logger"
	"github.com/tourneyhub/tourneyhub/internal/models"
)

// StatsProvider defines the interface that the service must implement.
type StatsProvider interface {
	GetPlatformStats(ctx context.Context) (*models.PlatformStats, error)
}

// NewStatsHandler returns an HTTP handler serving platform statistics.
// @Summary Get platform statistics
// @Description Returns total and open tournament counts, the player count, and the combined prize pool.
// @Tags stats
// @Produce json
// @Success 200 {object} models.PlatformStats
// @Router /stats [get]
func NewStatsHandler(svc StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.GetPlatformStats(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}
