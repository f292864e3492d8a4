package components

import (
	"expense-matching/internal/handler"
	"expense-matching/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewExpenseHandler,
		api.NewMatchingHandler,
		func(u *api.UserHandler, e *api.ExpenseHandler, m *api.MatchingHandler) handler.Handlers {
			return handler.Handlers{User: u, Expense: e, Matching: m}
		},
	),
	fx.Invoke(handler.NewRouter),
)
