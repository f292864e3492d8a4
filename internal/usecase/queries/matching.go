package queries

import (
	"context"

	"expense-matching/internal/domain/matching"
	"expense-matching/internal/infra"
	sqlc "expense-matching/internal/infra/sqlc/generated"
	"expense-matching/internal/usecase/shared"
)

type MatchingQueries interface {
	List(ctx context.Context) ([]*MatchingView, error)
	Get(ctx context.Context, guid string) (*MatchingDetailView, error)
}

type MatchingReadStore interface {
	List(ctx context.Context, db sqlc.DBTX) ([]*MatchingView, error)
	FindByGUID(ctx context.Context, db sqlc.DBTX, guid string) (*MatchingView, error)
	// ListSnapshots returns snapshots ordered by expense_paid_at desc.
	ListSnapshots(ctx context.Context, db sqlc.DBTX, matchingGUID string) ([]*matching.Snapshot, error)
}

type matchingQueriesImpl struct {
	uow      shared.UnitOfWork
	matches  MatchingReadStore
	expenses ExpenseReadStore
	users    UserReadStore
}

func NewMatchingQueries(uow shared.UnitOfWork, matches MatchingReadStore, expenses ExpenseReadStore, users UserReadStore) MatchingQueries {
	return &matchingQueriesImpl{
		uow:      uow,
		matches:  matches,
		expenses: expenses,
		users:    users,
	}
}

func (q *matchingQueriesImpl) List(ctx context.Context) ([]*MatchingView, error) {
	var out []*MatchingView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx sqlc.DBTX) error {
		views, err := q.matches.List(ctx, dbtx)
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

// Get reads the matching, its snapshots, the live expenses and the users in one
// read-only transaction and derives the reconciled list and the balance from them.
func (q *matchingQueriesImpl) Get(ctx context.Context, guid string) (*MatchingDetailView, error) {
	var (
		view      *MatchingView
		snapshots []*matching.Snapshot
		live      []*ExpenseView
		users     []*UserView
	)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx sqlc.DBTX) error {
		var err error
		view, err = q.matches.FindByGUID(ctx, dbtx, guid)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return matching.ErrMatchingNotFound
			}
			return err
		}
		if snapshots, err = q.matches.ListSnapshots(ctx, dbtx, guid); err != nil {
			return err
		}
		if live, err = q.expenses.List(ctx, dbtx, nil); err != nil {
			return err
		}
		users, err = q.users.List(ctx, dbtx)
		return err
	})
	if err != nil {
		return nil, err
	}

	liveGUIDs := make(map[string]struct{}, len(live))
	for _, e := range live {
		liveGUIDs[e.GUID] = struct{}{}
	}

	detail := &MatchingDetailView{
		Matching:          *view,
		Expenses:          toSnapshotViews(matching.Reconcile(snapshots, liveGUIDs)),
		AvailableExpenses: matching.AvailableToAttach(live, func(e *ExpenseView) string { return e.GUID }, snapshots),
	}

	participants := make([]matching.Participant, 0, len(users))
	for _, u := range users {
		participants = append(participants, matching.Participant{GUID: u.GUID, Name: u.Name})
	}
	if b, ok := matching.CalculateBalance(snapshots, participants); ok {
		detail.Balance = toBalanceView(b)
	}
	return detail, nil
}

func toSnapshotViews(in []matching.ReconciledSnapshot) []SnapshotView {
	out := make([]SnapshotView, 0, len(in))
	for _, s := range in {
		out = append(out, SnapshotView{
			Seq:           s.Seq(),
			ExpenseGUID:   s.ExpenseGUID(),
			UserGUID:      s.UserGUID(),
			Name:          s.ExpenseName(),
			Price:         s.ExpensePrice(),
			PaidAt:        s.ExpensePaidAt(),
			RequestAmount: s.RequestAmount(),
			ClaimAmount:   s.ClaimAmount(),
			IsDeleted:     s.IsDeleted,
		})
	}
	return out
}

func toBalanceView(b *matching.Balance) *BalanceView {
	out := &BalanceView{
		UserTotals:          make([]UserTotalView, 0, len(b.UserTotals)),
		GrandTotal:          b.GrandTotal,
		PairwiseUnsupported: b.PairwiseUnsupported,
	}
	for _, t := range b.UserTotals {
		out.UserTotals = append(out.UserTotals, UserTotalView{UserGUID: t.UserGUID, Name: t.Name, Total: t.Total})
	}
	if p := b.Pairwise; p != nil {
		out.Pairwise = &PairwiseView{
			Balance:      p.Balance,
			PayerGUID:    p.PayerGUID,
			ReceiverGUID: p.ReceiverGUID,
			Amount:       p.Amount,
			SettledEven:  p.SettledEven,
		}
	}
	return out
}
