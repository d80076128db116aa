package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/tourneyhub/tourneyhub/internal/logger"
	"github.com/tourneyhub/tourneyhub/internal/models"
)

// prizeScanLimit caps the prize aggregation scan.
const prizeScanLimit = 1000

// StatsReadRepository serves platform-wide counters.
type StatsReadRepository struct {
	db *sqlx.DB
}

func NewStatsReadRepository(db *sqlx.DB) *StatsReadRepository {
	return &StatsReadRepository{db: db}
}

// CountTournaments returns the total number of tournaments.
func (r *StatsReadRepository) CountTournaments(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM tournaments`

	var count int64
	err := r.db.GetContext(ctx, &count, query)

	logger.Log.Infow("query executed",
		"query", query,
		"result", count,
		"error", err,
	)

	return count, err
}

// CountOpenTournaments returns tournaments still in registration or active.
func (r *StatsReadRepository) CountOpenTournaments(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM tournaments WHERE status IN ($1, $2)`

	var count int64
	err := r.db.GetContext(ctx, &count, query, models.StatusRegistration, models.StatusActive)

	logger.Log.Infow("query executed",
		"query", query,
		"result", count,
		"error", err,
	)

	return count, err
}

// ListPrizes returns the non-empty prize strings of up to prizeScanLimit
// tournaments for the heuristic prize-pool aggregation.
func (r *StatsReadRepository) ListPrizes(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT prize
		FROM tournaments
		WHERE prize <> ''
		LIMIT %d
	`, prizeScanLimit)

	prizes := []string{}
	err := r.db.SelectContext(ctx, &prizes, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(prizes),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return prizes, nil
}
