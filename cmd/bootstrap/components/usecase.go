package components

import (
	"campus-reserve/internal/domain/reservation"
	"campus-reserve/internal/pkg/clock"
	"campus-reserve/internal/usecase"
	"campus-reserve/internal/usecase/commands"
	"campus-reserve/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewFactory,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewEquipmentQueries,
		queries.NewReservationQueries,
		queries.NewStatisticsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewEquipmentCommands,
		commands.NewReservationCommands,
		commands.NewWorkflowCommands,
		commands.NewScanCommands,
		commands.NewCartCommands,
	),
)
