package queries

import (
	"context"

	"expense-matching/internal/domain/expense"
	"expense-matching/internal/infra"
	sqlc "expense-matching/internal/infra/sqlc/generated"
	"expense-matching/internal/usecase/shared"
)

type ExpenseFilter struct {
	UserGUID *string
}

type ExpenseQueries interface {
	List(ctx context.Context, filter ExpenseFilter) ([]*ExpenseView, error)
	Get(ctx context.Context, guid string) (*ExpenseView, error)
}

// ExpenseReadStore returns views with LinkedMatchings populated (never nil).
type ExpenseReadStore interface {
	List(ctx context.Context, db sqlc.DBTX, userGUID *string) ([]*ExpenseView, error)
	FindByGUID(ctx context.Context, db sqlc.DBTX, guid string) (*ExpenseView, error)
}

type expenseQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore ExpenseReadStore
}

func NewExpenseQueries(uow shared.UnitOfWork, readStore ExpenseReadStore) ExpenseQueries {
	return &expenseQueriesImpl{uow: uow, readStore: readStore}
}

func (q *expenseQueriesImpl) List(ctx context.Context, filter ExpenseFilter) ([]*ExpenseView, error) {
	var out []*ExpenseView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx sqlc.DBTX) error {
		views, err := q.readStore.List(ctx, dbtx, filter.UserGUID)
		if err != nil {
			return err
		}
		out = views
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (q *expenseQueriesImpl) Get(ctx context.Context, guid string) (*ExpenseView, error) {
	var out *ExpenseView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx sqlc.DBTX) error {
		view, err := q.readStore.FindByGUID(ctx, dbtx, guid)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return expense.ErrExpenseNotFound
			}
			return err
		}
		out = view
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
