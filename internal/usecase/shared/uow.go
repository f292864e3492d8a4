package shared

import (
	"context"

	"expense-matching/internal/domain/expense"
	"expense-matching/internal/domain/matching"
	"expense-matching/internal/domain/user"
	sqlc "expense-matching/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: one read-committed transaction per write operation. No retries;
	// a failed write is returned to the caller as is.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: repeatable-read snapshot for multi-table reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Users() UserRepository
	Expenses() ExpenseRepository
	Matchings() MatchingRepository
	Snapshots() SnapshotRepository
	DB() sqlc.DBTX
}

type UserRepository interface {
	FindByGUID(ctx context.Context, tx sqlc.DBTX, guid string) (*user.User, error)
}

type ExpenseRepository interface {
	FindByGUID(ctx context.Context, tx sqlc.DBTX, guid string) (*expense.Expense, error)
	FindByGUIDForUpdate(ctx context.Context, tx sqlc.DBTX, guid string) (*expense.Expense, error)
	Create(ctx context.Context, tx sqlc.DBTX, e *expense.Expense) error
	Update(ctx context.Context, tx sqlc.DBTX, e *expense.Expense) error
	Delete(ctx context.Context, tx sqlc.DBTX, guid string) error
}

type MatchingRepository interface {
	// FindByGUIDForUpdate locks the matching row until the transaction ends.
	FindByGUIDForUpdate(ctx context.Context, tx sqlc.DBTX, guid string) (*matching.Matching, error)
	Create(ctx context.Context, tx sqlc.DBTX, m *matching.Matching) error
	Update(ctx context.Context, tx sqlc.DBTX, m *matching.Matching) error
	Delete(ctx context.Context, tx sqlc.DBTX, guid string) error
}

type SnapshotRepository interface {
	Exists(ctx context.Context, tx sqlc.DBTX, matchingGUID, expenseGUID string) (bool, error)
	// Create stores the snapshot and returns its sequence number.
	Create(ctx context.Context, tx sqlc.DBTX, s *matching.Snapshot) (int64, error)
	DeleteByExpense(ctx context.Context, tx sqlc.DBTX, matchingGUID, expenseGUID string) error
	DeleteBySeq(ctx context.Context, tx sqlc.DBTX, matchingGUID string, seq int64) error
}
