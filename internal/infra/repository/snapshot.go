package repository

import (
	"context"

	"expense-matching/internal/domain/matching"
	"expense-matching/internal/infra"
	"expense-matching/internal/infra/repository/converter"
	sqlc "expense-matching/internal/infra/sqlc/generated"
)

type SnapshotWriteQueries interface {
	ExistsMatchingExpense(ctx context.Context, db sqlc.DBTX, matchingGuid, expenseGuid string) (bool, error)
	CreateMatchingExpense(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMatchingExpenseParams) (int64, error)
	DeleteMatchingExpenseByExpense(ctx context.Context, db sqlc.DBTX, matchingGuid, expenseGuid string) (int64, error)
	DeleteMatchingExpenseByID(ctx context.Context, db sqlc.DBTX, matchingGuid string, id int64) (int64, error)
}

type SnapshotRepository struct {
	queries SnapshotWriteQueries
}

func NewSnapshotRepository(queries SnapshotWriteQueries) *SnapshotRepository {
	return &SnapshotRepository{queries: queries}
}

func (r *SnapshotRepository) Exists(ctx context.Context, tx sqlc.DBTX, matchingGUID, expenseGUID string) (bool, error) {
	ok, err := r.queries.ExistsMatchingExpense(ctx, tx, matchingGUID, expenseGUID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check matching expense", err)
	}
	return ok, nil
}

// Create returns DUPLICATE_KEY when the (matching, expense) pair already exists.
func (r *SnapshotRepository) Create(ctx context.Context, tx sqlc.DBTX, s *matching.Snapshot) (int64, error) {
	seq, err := r.queries.CreateMatchingExpense(ctx, tx, converter.SnapshotToCreateParams(s))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create matching expense", err)
	}
	return seq, nil
}

func (r *SnapshotRepository) DeleteByExpense(ctx context.Context, tx sqlc.DBTX, matchingGUID, expenseGUID string) error {
	n, err := r.queries.DeleteMatchingExpenseByExpense(ctx, tx, matchingGUID, expenseGUID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete matching expense", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("matching expense not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SnapshotRepository) DeleteBySeq(ctx context.Context, tx sqlc.DBTX, matchingGUID string, seq int64) error {
	n, err := r.queries.DeleteMatchingExpenseByID(ctx, tx, matchingGUID, seq)
	if err != nil {
		return infra.WrapRepoErr("failed to delete matching expense", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("matching expense not found", nil, infra.KindNotFound)
	}
	return nil
}
