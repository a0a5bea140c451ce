package queries

import (
	"context"
	"time"

	"campus-reserve/internal/pkg/clock"
)

const statsTopLimit = 5

// StatsSource computes the dashboard statistics from the database.
type StatsSource interface {
	Collect(ctx context.Context, topLimit int32, now time.Time) (*StatisticsView, error)
}

// StatsCache memoizes the computed view; commands invalidate it on writes.
type StatsCache interface {
	Remember(ctx context.Context, fill func(ctx context.Context) (*StatisticsView, error)) (*StatisticsView, error)
}

type StatisticsQueries interface {
	Get(ctx context.Context) (*StatisticsView, error)
}

type statisticsQueriesImpl struct {
	source StatsSource
	cache  StatsCache
	clock  clock.Clock
}

func NewStatisticsQueries(source StatsSource, cache StatsCache, clock clock.Clock) StatisticsQueries {
	return &statisticsQueriesImpl{
		source: source,
		cache:  cache,
		clock:  clock,
	}
}

func (q *statisticsQueriesImpl) Get(ctx context.Context) (*StatisticsView, error) {
	return q.cache.Remember(ctx, func(ctx context.Context) (*StatisticsView, error) {
		return q.source.Collect(ctx, statsTopLimit, q.clock.Now())
	})
}
