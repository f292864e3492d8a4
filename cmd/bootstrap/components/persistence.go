package components

import (
	"expense-matching/internal/infra/readstore"
	sqlc "expense-matching/internal/infra/sqlc/generated"
	"expense-matching/internal/infra/uow"
	"expense-matching/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Expense
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ExpenseReadQueries)),
		),
		fx.Annotate(
			readstore.NewExpenseReadStore,
			fx.As(new(queries.ExpenseReadStore)),
		),
		// Matching
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MatchingReadQueries)),
		),
		fx.Annotate(
			readstore.NewMatchingReadStore,
			fx.As(new(queries.MatchingReadStore)),
		),
	),
)

// Write repositories are built per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}
