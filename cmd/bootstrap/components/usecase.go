package components

import (
	"padel-booking/internal/pkg/clock"
	"padel-booking/internal/usecase/commands"
	"padel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewCourtCommands,
		commands.NewScheduleCommands,
		commands.NewUserCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewCourtQueries,
		queries.NewScheduleQueries,
		queries.NewUserQueries,
		queries.NewPaymentQueries,
	),
)
