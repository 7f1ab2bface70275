package components

import (
	"fitness-booking/internal/domain/pricing"
	"fitness-booking/internal/domain/refund"
	"fitness-booking/internal/pkg/clock"
	"fitness-booking/internal/usecase/commands"
	"fitness-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewEngine,
		fx.As(new(commands.PriceCalculator)),
		fx.As(new(queries.PriceCalculator)),
	),
	fx.Annotate(
		refund.NewPolicy,
		fx.As(new(commands.RefundCalculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewMemberCommands,
		commands.NewClassCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewMemberQueries,
		queries.NewClassQueries,
		queries.NewReservationQueries,
	),
)
