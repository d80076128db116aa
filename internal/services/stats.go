package services

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tourneyhub/tourneyhub/internal/logger"
	"github.com/tourneyhub/tourneyhub/internal/models"
)

// StatsReader serves platform-wide counters from the store.
type StatsReader interface {
	CountTournaments(ctx context.Context) (int64, error)
	CountOpenTournaments(ctx context.Context) (int64, error)
	ListPrizes(ctx context.Context) ([]string, error)
}

// UserCounter counts registered users.
type UserCounter interface {
	Count(ctx context.Context) (int64, error)
}

// StatsCache caches a computed stats snapshot.
type StatsCache interface {
	Get(ctx context.Context) (*models.PlatformStats, error)
	Set(ctx context.Context, stats *models.PlatformStats) error
}

// StatsService computes platform statistics with a read-through cache.
type StatsService struct {
	stats StatsReader
	users UserCounter
	cache StatsCache
}

func NewStatsService(stats StatsReader, users UserCounter, cache StatsCache) *StatsService {
	return &StatsService{
		stats: stats,
		users: users,
		cache: cache,
	}
}

// GetPlatformStats returns the platform counters plus the heuristic prize
// pool. Cache failures fall back to direct computation; cache writes are
// best effort.
func (s *StatsService) GetPlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	if cached, err := s.cache.Get(ctx); err == nil {
		return cached, nil
	}

	totalTournaments, err := s.stats.CountTournaments(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count tournaments", "err", err)
		return nil, err
	}

	activeTournaments, err := s.stats.CountOpenTournaments(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count open tournaments", "err", err)
		return nil, err
	}

	totalPlayers, err := s.users.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count users", "err", err)
		return nil, err
	}

	prizes, err := s.stats.ListPrizes(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list prizes", "err", err)
		return nil, err
	}

	stats := &models.PlatformStats{
		TotalTournaments:  totalTournaments,
		ActiveTournaments: activeTournaments,
		TotalPlayers:      totalPlayers,
		TotalPrizePool:    formatPrizePool(sumPrizes(prizes)),
	}

	if err := s.cache.Set(ctx, stats); err != nil {
		logger.Log.Errorw("failed to cache platform stats", "err", err)
	}

	return stats, nil
}

// prizePattern matches dollar amounts embedded in free-text prize strings,
// e.g. "$1,000 and a trophy".
var prizePattern = regexp.MustCompile(`\$([0-9,]+)`)

// sumPrizes extracts every dollar amount from the prize strings and sums the
// ones that parse. This is a lossy text heuristic, kept intentionally simple.
func sumPrizes(prizes []string) int64 {
	var total int64
	for _, prize := range prizes {
		for _, match := range prizePattern.FindAllStringSubmatch(prize, -1) {
			amount, err := strconv.ParseInt(strings.ReplaceAll(match[1], ",", ""), 10, 64)
			if err != nil {
				continue
			}
			total += amount
		}
	}
	return total
}

var prizePrinter = message.NewPrinter(language.English)

// formatPrizePool renders the total with digit grouping, e.g. "$1,500".
func formatPrizePool(total int64) string {
	return prizePrinter.Sprintf("$%d", total)
}
