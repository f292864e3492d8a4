package commands

import (
	"context"
	"time"

	"expense-matching/internal/domain/expense"
	"expense-matching/internal/domain/user"
	"expense-matching/internal/infra/metrics"
	"expense-matching/internal/pkg/clock"
	"expense-matching/internal/pkg/guid"
	"expense-matching/internal/pkg/patch"
	"expense-matching/internal/usecase/shared"
)

type ExpenseCommands interface {
	Create(ctx context.Context, req CreateExpenseRequest) (*CreateExpenseResult, error)
	Update(ctx context.Context, expenseGUID string, req UpdateExpenseRequest) error
	Delete(ctx context.Context, expenseGUID string) error
}

type CreateExpenseRequest struct {
	UserGUID string
	Name     string
	Price    int64
	Note     *string
	PaidAt   time.Time
}

type CreateExpenseResult struct {
	ExpenseGUID string
}

type UpdateExpenseRequest struct {
	UserGUID *string
	Name     *string
	Price    *int64
	Note     patch.Field[string]
	PaidAt   *time.Time
}

type expenseUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	guids   guid.Generator
	metrics metrics.Recorder
}

func NewExpenseUseCase(uow shared.UnitOfWork, clk clock.Clock, guids guid.Generator, rec metrics.Recorder) ExpenseCommands {
	return &expenseUseCaseImpl{
		uow:     uow,
		clock:   clk,
		guids:   guids,
		metrics: rec,
	}
}

func (uc *expenseUseCaseImpl) Create(ctx context.Context, req CreateExpenseRequest) (*CreateExpenseResult, error) {
	e, err := expense.NewExpense(uc.guids.New(), expense.Params{
		UserGUID: req.UserGUID,
		Name:     req.Name,
		Price:    req.Price,
		Note:     req.Note,
		PaidAt:   req.PaidAt,
	}, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Users().FindByGUID(ctx, tx.DB(), e.UserGUID()); derr != nil {
			return asNotFound(derr, user.ErrUnknownUser)
		}
		return tx.Expenses().Create(ctx, tx.DB(), e)
	})
	if err != nil {
		return nil, err
	}
	return &CreateExpenseResult{ExpenseGUID: e.GUID()}, nil
}

// Update edits the live record only. Snapshots already taken keep the values
// they were created with.
func (uc *expenseUseCaseImpl) Update(ctx context.Context, expenseGUID string, req UpdateExpenseRequest) error {
	changes := expense.Changes{
		UserGUID: req.UserGUID,
		Name:     req.Name,
		Price:    req.Price,
		Note:     req.Note,
		PaidAt:   req.PaidAt,
	}
	if changes.IsEmpty() {
		return expense.ErrNoFieldsToEdit
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		e, derr := tx.Expenses().FindByGUIDForUpdate(ctx, tx.DB(), expenseGUID)
		if derr != nil {
			return asNotFound(derr, expense.ErrExpenseNotFound)
		}
		if req.UserGUID != nil && *req.UserGUID != "" {
			if _, derr = tx.Users().FindByGUID(ctx, tx.DB(), *req.UserGUID); derr != nil {
				return asNotFound(derr, user.ErrUnknownUser)
			}
		}
		if derr = e.Apply(changes, uc.clock.Now()); derr != nil {
			return derr
		}
		return asNotFound(tx.Expenses().Update(ctx, tx.DB(), e), expense.ErrExpenseNotFound)
	})
}

// Delete removes the live record. Snapshots referencing it stay in place with
// their expense reference nulled by the schema.
func (uc *expenseUseCaseImpl) Delete(ctx context.Context, expenseGUID string) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return asNotFound(tx.Expenses().Delete(ctx, tx.DB(), expenseGUID), expense.ErrExpenseNotFound)
	})
	if err != nil {
		return err
	}
	uc.metrics.IncExpenseDeleted()
	return nil
}
