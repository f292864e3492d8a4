package converter

import (
	"expense-matching/internal/domain/matching"
	sqlc "expense-matching/internal/infra/sqlc/generated"
	"expense-matching/internal/pkg/pgconv"
)

func MatchingFromRow(row sqlc.GetMatchingByGUIDRow) *matching.Matching {
	return matching.ReconstructMatching(
		row.Guid,
		row.Name,
		row.CreatedUserGuid,
		pgconv.TimePtrFromPgtype(row.SettledAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func MatchingToCreateParams(m *matching.Matching) sqlc.CreateMatchingParams {
	return sqlc.CreateMatchingParams{
		Guid:            m.GUID(),
		Name:            m.Name(),
		CreatedUserGuid: m.CreatedUserGUID(),
		SettledAt:       pgconv.TimePtrToPgtype(m.SettledAt()),
		CreatedAt:       pgconv.TimeToPgtype(m.CreatedAt()),
	}
}

func MatchingToUpdateParams(m *matching.Matching) sqlc.UpdateMatchingParams {
	return sqlc.UpdateMatchingParams{
		Guid:            m.GUID(),
		Name:            m.Name(),
		CreatedUserGuid: m.CreatedUserGUID(),
		SettledAt:       pgconv.TimePtrToPgtype(m.SettledAt()),
		UpdatedAt:       pgconv.TimeToPgtype(m.UpdatedAt()),
	}
}

func SnapshotFromRow(row sqlc.ListMatchingExpensesRow) *matching.Snapshot {
	return matching.ReconstructSnapshot(
		row.ID,
		row.MatchingGuid,
		pgconv.StringPtrFromPgtype(row.ExpenseGuid),
		row.UserGuid,
		row.ExpenseName,
		row.ExpensePrice,
		pgconv.DateFromPgtype(row.ExpensePaidAt),
		pgconv.Int64PtrFromPgtype(row.RequestAmount),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

// A snapshot without a source expense maps to an empty guid, which the insert
// cannot resolve. Only freshly attached snapshots are inserted.
func SnapshotToCreateParams(s *matching.Snapshot) sqlc.CreateMatchingExpenseParams {
	var expenseGUID string
	if g := s.ExpenseGUID(); g != nil {
		expenseGUID = *g
	}
	return sqlc.CreateMatchingExpenseParams{
		MatchingGuid:  s.MatchingGUID(),
		ExpenseGuid:   expenseGUID,
		UserGuid:      s.UserGUID(),
		ExpenseName:   s.ExpenseName(),
		ExpensePrice:  s.ExpensePrice(),
		ExpensePaidAt: pgconv.DateToPgtype(s.ExpensePaidAt()),
		RequestAmount: pgconv.Int64PtrToPgtype(s.RequestAmount()),
		CreatedAt:     pgconv.TimeToPgtype(s.CreatedAt()),
	}
}
