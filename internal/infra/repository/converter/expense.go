package converter

import (
	"expense-matching/internal/domain/expense"
	sqlc "expense-matching/internal/infra/sqlc/generated"
	"expense-matching/internal/pkg/pgconv"
)

func ExpenseFromRow(row sqlc.GetExpenseByGUIDRow) *expense.Expense {
	return expense.ReconstructExpense(
		row.Guid,
		row.UserGuid,
		row.Name,
		row.Price,
		pgconv.StringPtrFromPgtype(row.Note),
		pgconv.DateFromPgtype(row.PaidAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func ExpenseToCreateParams(e *expense.Expense) sqlc.CreateExpenseParams {
	return sqlc.CreateExpenseParams{
		Guid:      e.GUID(),
		UserGuid:  e.UserGUID(),
		Name:      e.Name().String(),
		Price:     e.Price().Int64(),
		Note:      pgconv.StringPtrToPgtype(e.Note()),
		PaidAt:    pgconv.DateToPgtype(e.PaidAt().Time()),
		CreatedAt: pgconv.TimeToPgtype(e.CreatedAt()),
	}
}

func ExpenseToUpdateParams(e *expense.Expense) sqlc.UpdateExpenseParams {
	return sqlc.UpdateExpenseParams{
		Guid:      e.GUID(),
		UserGuid:  e.UserGUID(),
		Name:      e.Name().String(),
		Price:     e.Price().Int64(),
		Note:      pgconv.StringPtrToPgtype(e.Note()),
		PaidAt:    pgconv.DateToPgtype(e.PaidAt().Time()),
		UpdatedAt: pgconv.TimeToPgtype(e.UpdatedAt()),
	}
}
