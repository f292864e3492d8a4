package components

import (
	"expense-matching/internal/pkg/clock"
	"expense-matching/internal/pkg/guid"
	"expense-matching/internal/usecase/commands"
	"expense-matching/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	guid.NewULIDGenerator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewExpenseUseCase,
		commands.NewMatchingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewExpenseQueries,
		queries.NewMatchingQueries,
	),
)
