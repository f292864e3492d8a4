package uow

import (
	"context"
	"errors"
	"log/slog"

	"expense-matching/internal/infra/repository"
	sqlc "expense-matching/internal/infra/sqlc/generated"
	"expense-matching/internal/pkg/errs"
	"expense-matching/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted plus row locks taken by the repositories. Errors are returned
// after rollback without retrying.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

// Repeatable read gives every query in fn the same snapshot.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.WarnContext(ctx, "failed to rollback transaction", "error", err.Error())
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	userRepo     shared.UserRepository
	expenseRepo  shared.ExpenseRepository
	matchingRepo shared.MatchingRepository
	snapshotRepo shared.SnapshotRepository
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) Expenses() shared.ExpenseRepository {
	if t.expenseRepo == nil {
		t.expenseRepo = repository.NewExpenseRepository(t.uow.q)
	}
	return t.expenseRepo
}

func (t *pgTx) Matchings() shared.MatchingRepository {
	if t.matchingRepo == nil {
		t.matchingRepo = repository.NewMatchingRepository(t.uow.q)
	}
	return t.matchingRepo
}

func (t *pgTx) Snapshots() shared.SnapshotRepository {
	if t.snapshotRepo == nil {
		t.snapshotRepo = repository.NewSnapshotRepository(t.uow.q)
	}
	return t.snapshotRepo
}
