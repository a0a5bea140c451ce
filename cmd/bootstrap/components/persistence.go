package components

import (
	"campus-reserve/internal/infra/broadcast"
	"campus-reserve/internal/infra/cache"
	"campus-reserve/internal/infra/cart"
	"campus-reserve/internal/infra/readstore"
	"campus-reserve/internal/infra/repository"
	sqlc "campus-reserve/internal/infra/sqlc/generated"
	"campus-reserve/internal/infra/uow"
	"campus-reserve/internal/pkg/config"
	"campus-reserve/internal/usecase/commands"
	"campus-reserve/internal/usecase/queries"
	"campus-reserve/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	redisModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Equipment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.EquipmentViewQueries)),
		),
		fx.Annotate(
			readstore.NewEquipmentReadStore,
			fx.As(new(queries.EquipmentViewRepo)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		// Statistics
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.StatisticsQueries)),
		),
		fx.Annotate(
			readstore.NewStatisticsReadStore,
			fx.As(new(queries.StatsSource)),
		),
		// Notification outbox
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.NotificationReadQueries)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(worker.JobSource)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.UserQueries)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Notification outbox sink
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.NotificationWriteQueries)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(worker.JobSink)),
		),
	),
)

var redisModule = fx.Module("persistence/redis",
	fx.Provide(
		fx.Annotate(
			NewStatsCache,
			fx.As(new(queries.StatsCache)),
			fx.As(new(commands.StatsInvalidator)),
		),
		fx.Annotate(
			broadcast.NewPublisher,
			fx.As(new(commands.EventPublisher)),
			fx.As(new(worker.EventPublisher)),
		),
		fx.Annotate(
			NewCartStore,
			fx.As(new(commands.CartStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewStatsCache(cfg config.Config, rdb *redis.Client) *cache.StatsCache {
	return cache.NewStatsCache(rdb, cfg.Redis.StatsTTL)
}

func NewCartStore(cfg config.Config, rdb *redis.Client) *cart.Store {
	return cart.NewStore(rdb, cfg.Redis.CartTTL)
}
