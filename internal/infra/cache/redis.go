package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"campus-reserve/internal/pkg/config"
	"campus-reserve/internal/pkg/errs"
	"campus-reserve/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const statsKey = "stats:reservations"

func NewClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, errs.Wrap(err, "failed to connect to redis")
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}

// StatsCache keeps the dashboard statistics snapshot in redis so repeated
// staff requests do not re-aggregate the reservations table.
type StatsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStatsCache(rdb *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{rdb: rdb, ttl: ttl}
}

// Remember returns the cached snapshot, filling it on a miss. Cache failures
// fall through to the fill function; a stale or missing cache never blocks
// the statistics endpoint.
func (c *StatsCache) Remember(ctx context.Context, fill func(ctx context.Context) (*queries.StatisticsView, error)) (*queries.StatisticsView, error) {
	raw, err := c.rdb.Get(ctx, statsKey).Bytes()
	if err == nil {
		var view queries.StatisticsView
		if unmarshalErr := json.Unmarshal(raw, &view); unmarshalErr == nil {
			return &view, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		return fill(ctx)
	}

	view, err := fill(ctx)
	if err != nil {
		return nil, err
	}

	if raw, marshalErr := json.Marshal(view); marshalErr == nil {
		_ = c.rdb.Set(ctx, statsKey, raw, c.ttl).Err()
	}
	return view, nil
}

// Forget drops the snapshot. Called after any reservation state change.
func (c *StatsCache) Forget(ctx context.Context) {
	_ = c.rdb.Del(ctx, statsKey).Err()
}
