//go:build unit || e2e

package builder

import (
	"time"

	"expense-matching/internal/domain/matching"
	sqlc "expense-matching/internal/infra/sqlc/generated"
	"expense-matching/internal/pkg/pgconv"
)

type SnapshotBuilder struct {
	Seq           int64
	MatchingGUID  string
	ExpenseGUID   *string
	UserGUID      string
	Name          string
	Price         int64
	PaidAt        time.Time
	RequestAmount *int64
	CreatedAt     time.Time
}

func NewSnapshotBuilder() *SnapshotBuilder {
	e := NewExpenseBuilder()
	expenseGUID := e.GUID
	return &SnapshotBuilder{
		Seq:          1,
		MatchingGUID: NewMatchingBuilder().GUID,
		ExpenseGUID:  &expenseGUID,
		UserGUID:     e.UserGUID,
		Name:         e.Name,
		Price:        e.Price,
		PaidAt:       e.PaidAt,
		CreatedAt:    fixedNow,
	}
}

func (s *SnapshotBuilder) With(mutate func(*SnapshotBuilder)) *SnapshotBuilder {
	mutate(s)
	return s
}

// Orphaned drops the source expense link, as after the expense is deleted.
func (s *SnapshotBuilder) Orphaned() *SnapshotBuilder {
	s.ExpenseGUID = nil
	return s
}

func (s *SnapshotBuilder) BuildDomain() *matching.Snapshot {
	return matching.ReconstructSnapshot(s.Seq, s.MatchingGUID, s.ExpenseGUID, s.UserGUID, s.Name, s.Price, s.PaidAt, s.RequestAmount, s.CreatedAt)
}

func (s *SnapshotBuilder) BuildInfra() sqlc.ListMatchingExpensesRow {
	return sqlc.ListMatchingExpensesRow{
		ID:            s.Seq,
		MatchingGuid:  s.MatchingGUID,
		ExpenseGuid:   pgconv.StringPtrToPgtype(s.ExpenseGUID),
		UserGuid:      s.UserGUID,
		ExpenseName:   s.Name,
		ExpensePrice:  s.Price,
		ExpensePaidAt: pgconv.DateToPgtype(s.PaidAt),
		RequestAmount: pgconv.Int64PtrToPgtype(s.RequestAmount),
		CreatedAt:     pgconv.TimeToPgtype(s.CreatedAt),
	}
}
