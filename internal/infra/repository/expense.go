package repository

import (
	"context"

	"expense-matching/internal/domain/expense"
	"expense-matching/internal/infra"
	"expense-matching/internal/infra/repository/converter"
	sqlc "expense-matching/internal/infra/sqlc/generated"
)

type ExpenseWriteQueries interface {
	GetExpenseByGUID(ctx context.Context, db sqlc.DBTX, guid string) (sqlc.GetExpenseByGUIDRow, error)
	GetExpenseByGUIDForUpdate(ctx context.Context, db sqlc.DBTX, guid string) (sqlc.GetExpenseByGUIDForUpdateRow, error)
	CreateExpense(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateExpenseParams) (int64, error)
	UpdateExpense(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateExpenseParams) (int64, error)
	DeleteExpense(ctx context.Context, db sqlc.DBTX, guid string) (int64, error)
}

type ExpenseRepository struct {
	queries ExpenseWriteQueries
}

func NewExpenseRepository(queries ExpenseWriteQueries) *ExpenseRepository {
	return &ExpenseRepository{queries: queries}
}

func (r *ExpenseRepository) FindByGUID(ctx context.Context, tx sqlc.DBTX, guid string) (*expense.Expense, error) {
	row, err := r.queries.GetExpenseByGUID(ctx, tx, guid)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find expense", err)
	}
	return converter.ExpenseFromRow(row), nil
}

func (r *ExpenseRepository) FindByGUIDForUpdate(ctx context.Context, tx sqlc.DBTX, guid string) (*expense.Expense, error) {
	row, err := r.queries.GetExpenseByGUIDForUpdate(ctx, tx, guid)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock expense", err)
	}
	return converter.ExpenseFromRow(sqlc.GetExpenseByGUIDRow(row)), nil
}

func (r *ExpenseRepository) Create(ctx context.Context, tx sqlc.DBTX, e *expense.Expense) error {
	if _, err := r.queries.CreateExpense(ctx, tx, converter.ExpenseToCreateParams(e)); err != nil {
		return infra.WrapRepoErr("failed to create expense", err)
	}
	return nil
}

func (r *ExpenseRepository) Update(ctx context.Context, tx sqlc.DBTX, e *expense.Expense) error {
	n, err := r.queries.UpdateExpense(ctx, tx, converter.ExpenseToUpdateParams(e))
	if err != nil {
		return infra.WrapRepoErr("failed to update expense", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("expense not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, tx sqlc.DBTX, guid string) error {
	n, err := r.queries.DeleteExpense(ctx, tx, guid)
	if err != nil {
		return infra.WrapRepoErr("failed to delete expense", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("expense not found", nil, infra.KindNotFound)
	}
	return nil
}
