package components

import (
	"lookup-service/internal/pkg/clock"
	"lookup-service/internal/pkg/config"
	"lookup-service/internal/usecase"
	"lookup-service/internal/usecase/commands"
	"lookup-service/internal/usecase/queries"
	"lookup-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	clock.NewRealSleeper,
	shared.NewLedger,
	func(cfg config.Config) config.LookupConfig {
		return cfg.Lookup
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPricingEngine,
		commands.NewLookupCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewConsultationQueries,
		queries.NewBalanceQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
