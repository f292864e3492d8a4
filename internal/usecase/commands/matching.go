package commands

import (
	"context"
	"time"

	"expense-matching/internal/domain/expense"
	"expense-matching/internal/domain/matching"
	"expense-matching/internal/domain/user"
	"expense-matching/internal/infra"
	"expense-matching/internal/infra/metrics"
	"expense-matching/internal/pkg/clock"
	"expense-matching/internal/pkg/errs"
	"expense-matching/internal/pkg/guid"
	"expense-matching/internal/pkg/patch"
	"expense-matching/internal/usecase/shared"
)

var (
	ErrExpenseGUIDRequired  = errs.Validation("expense_guid is required")
	ErrDetachTargetRequired = errs.Validation("either expense_guid or matching_expense_id is required")
)

type MatchingCommands interface {
	Create(ctx context.Context, req CreateMatchingRequest) (*CreateMatchingResult, error)
	Update(ctx context.Context, matchingGUID string, req UpdateMatchingRequest) error
	Delete(ctx context.Context, matchingGUID string) error
	Settle(ctx context.Context, matchingGUID string) error
	AttachExpense(ctx context.Context, matchingGUID string, req AttachExpenseRequest) (*AttachExpenseResult, error)
	DetachExpense(ctx context.Context, matchingGUID string, req DetachExpenseRequest) error
}

type CreateMatchingRequest struct {
	Name            string
	CreatedUserGUID string
}

type CreateMatchingResult struct {
	MatchingGUID string
}

// UpdateMatchingRequest is the administrative correction path. SettledAt may
// be set to null to reopen a matching.
type UpdateMatchingRequest struct {
	Name            *string
	CreatedUserGUID *string
	SettledAt       patch.Field[time.Time]
}

type AttachExpenseRequest struct {
	ExpenseGUID   string
	RequestAmount *int64
}

type AttachExpenseResult struct {
	Seq int64
}

// DetachExpenseRequest names the snapshot by its source expense or, for
// snapshots whose expense was deleted, by its sequence number.
type DetachExpenseRequest struct {
	ExpenseGUID *string
	Seq         *int64
}

type matchingUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	guids   guid.Generator
	metrics metrics.Recorder
}

func NewMatchingUseCase(uow shared.UnitOfWork, clk clock.Clock, guids guid.Generator, rec metrics.Recorder) MatchingCommands {
	return &matchingUseCaseImpl{
		uow:     uow,
		clock:   clk,
		guids:   guids,
		metrics: rec,
	}
}

func (uc *matchingUseCaseImpl) Create(ctx context.Context, req CreateMatchingRequest) (*CreateMatchingResult, error) {
	m, err := matching.NewMatching(uc.guids.New(), req.Name, req.CreatedUserGUID, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Users().FindByGUID(ctx, tx.DB(), m.CreatedUserGUID()); derr != nil {
			return asNotFound(derr, user.ErrUnknownUser)
		}
		return tx.Matchings().Create(ctx, tx.DB(), m)
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.IncMatchingCreated()
	return &CreateMatchingResult{MatchingGUID: m.GUID()}, nil
}

func (uc *matchingUseCaseImpl) Update(ctx context.Context, matchingGUID string, req UpdateMatchingRequest) error {
	correction := matching.Correction{
		Name:            req.Name,
		CreatedUserGUID: req.CreatedUserGUID,
	}
	if req.SettledAt.Set {
		correction.SettledAt = req.SettledAt.Ptr()
		correction.ClearSettledAt = req.SettledAt.Null
	}
	if correction.IsEmpty() {
		return matching.ErrNoFieldsToEdit
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, derr := tx.Matchings().FindByGUIDForUpdate(ctx, tx.DB(), matchingGUID)
		if derr != nil {
			return asNotFound(derr, matching.ErrMatchingNotFound)
		}
		if req.CreatedUserGUID != nil && *req.CreatedUserGUID != "" {
			if _, derr = tx.Users().FindByGUID(ctx, tx.DB(), *req.CreatedUserGUID); derr != nil {
				return asNotFound(derr, user.ErrUnknownUser)
			}
		}
		if derr = m.Correct(correction, uc.clock.Now()); derr != nil {
			return derr
		}
		return asNotFound(tx.Matchings().Update(ctx, tx.DB(), m), matching.ErrMatchingNotFound)
	})
}

func (uc *matchingUseCaseImpl) Delete(ctx context.Context, matchingGUID string) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return asNotFound(tx.Matchings().Delete(ctx, tx.DB(), matchingGUID), matching.ErrMatchingNotFound)
	})
	if err != nil {
		return err
	}
	uc.metrics.IncMatchingDeleted()
	return nil
}

func (uc *matchingUseCaseImpl) Settle(ctx context.Context, matchingGUID string) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, derr := tx.Matchings().FindByGUIDForUpdate(ctx, tx.DB(), matchingGUID)
		if derr != nil {
			return asNotFound(derr, matching.ErrMatchingNotFound)
		}
		if derr = m.Settle(uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Matchings().Update(ctx, tx.DB(), m)
	})
	if err != nil {
		return err
	}
	uc.metrics.IncMatchingSettled()
	return nil
}

// AttachExpense checks, in order: matching exists, matching is open, expense
// exists, pair not yet linked. The matching row stays locked until commit, so
// concurrent attaches to the same matching are serialized.
func (uc *matchingUseCaseImpl) AttachExpense(ctx context.Context, matchingGUID string, req AttachExpenseRequest) (*AttachExpenseResult, error) {
	if req.ExpenseGUID == "" {
		return nil, ErrExpenseGUIDRequired
	}
	if req.RequestAmount != nil && *req.RequestAmount < 0 {
		return nil, matching.ErrNegativeRequest
	}

	var seq int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, derr := tx.Matchings().FindByGUIDForUpdate(ctx, tx.DB(), matchingGUID)
		if derr != nil {
			return asNotFound(derr, matching.ErrMatchingNotFound)
		}
		if derr = m.EnsureOpen(); derr != nil {
			return derr
		}

		e, derr := tx.Expenses().FindByGUIDForUpdate(ctx, tx.DB(), req.ExpenseGUID)
		if derr != nil {
			return asNotFound(derr, expense.ErrExpenseNotFound)
		}

		linked, derr := tx.Snapshots().Exists(ctx, tx.DB(), m.GUID(), e.GUID())
		if derr != nil {
			return derr
		}
		if linked {
			return matching.ErrAlreadyLinked
		}

		snap, derr := matching.NewSnapshot(m, e, req.RequestAmount, uc.clock.Now())
		if derr != nil {
			return derr
		}
		seq, derr = tx.Snapshots().Create(ctx, tx.DB(), snap)
		if infra.IsKind(derr, infra.KindDuplicateKey) {
			return matching.ErrAlreadyLinked
		}
		return asNotFound(derr, expense.ErrExpenseNotFound)
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.IncExpenseAttached()
	return &AttachExpenseResult{Seq: seq}, nil
}

func (uc *matchingUseCaseImpl) DetachExpense(ctx context.Context, matchingGUID string, req DetachExpenseRequest) error {
	byExpense := req.ExpenseGUID != nil && *req.ExpenseGUID != ""
	if !byExpense && req.Seq == nil {
		return ErrDetachTargetRequired
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, derr := tx.Matchings().FindByGUIDForUpdate(ctx, tx.DB(), matchingGUID)
		if derr != nil {
			return asNotFound(derr, matching.ErrMatchingNotFound)
		}
		if derr = m.EnsureOpen(); derr != nil {
			return derr
		}

		if !byExpense {
			return asNotFound(tx.Snapshots().DeleteBySeq(ctx, tx.DB(), m.GUID(), *req.Seq), matching.ErrNotLinked)
		}

		if _, derr = tx.Expenses().FindByGUID(ctx, tx.DB(), *req.ExpenseGUID); derr != nil {
			return asNotFound(derr, expense.ErrExpenseNotFound)
		}
		return asNotFound(tx.Snapshots().DeleteByExpense(ctx, tx.DB(), m.GUID(), *req.ExpenseGUID), matching.ErrNotLinked)
	})
	if err != nil {
		return err
	}

	uc.metrics.IncExpenseDetached()
	return nil
}
