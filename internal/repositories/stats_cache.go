package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tourneyhub/tourneyhub/internal/logger"
	"github.com/tourneyhub/tourneyhub/internal/models"
)

const statsCacheKey = "platform:stats"

// ErrStatsNotCached is returned when no stats snapshot is in the cache.
var ErrStatsNotCached = errors.New("platform stats not found in cache")

// StatsCacheRepository caches the platform stats snapshot in Redis under a
// short TTL so repeated dashboard hits skip the aggregation queries.
type StatsCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached snapshot
}

func NewStatsCacheRepository(client *redis.Client, expiration time.Duration) *StatsCacheRepository {
	return &StatsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches the cached stats snapshot.
func (r *StatsCacheRepository) Get(ctx context.Context) (*models.PlatformStats, error) {
	val, err := r.client.Get(ctx, statsCacheKey).Result()
	if err != nil {
		logger.Log.Infow("stats cache miss",
			"key", statsCacheKey,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrStatsNotCached
		}
		return nil, err
	}

	var stats models.PlatformStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		logger.Log.Errorw("stats cache entry corrupt",
			"key", statsCacheKey,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("stats cache hit", "key", statsCacheKey)
	return &stats, nil
}

// Set stores the stats snapshot with the configured TTL.
func (r *StatsCacheRepository) Set(ctx context.Context, stats *models.PlatformStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, statsCacheKey, data, r.exp).Err()

	logger.Log.Infow("stats cache set",
		"key", statsCacheKey,
		"ttl", r.exp,
		"error", err,
	)

	return err
}
