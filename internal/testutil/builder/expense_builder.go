//go:build unit || e2e

package builder

import (
	"time"

	"expense-matching/internal/domain/expense"
	sqlc "expense-matching/internal/infra/sqlc/generated"
	"expense-matching/internal/pkg/pgconv"
	"expense-matching/internal/usecase/queries"
)

type ExpenseBuilder struct {
	ID        int64
	GUID      string
	UserGUID  string
	Name      string
	Price     int64
	Note      *string
	PaidAt    time.Time
	CreatedAt time.Time
}

func NewExpenseBuilder() *ExpenseBuilder {
	return &ExpenseBuilder{
		ID:        1,
		GUID:      "01JQ00000000000000EXPENSE1",
		UserGUID:  NewUserBuilder().GUID,
		Name:      "Groceries",
		Price:     1000,
		PaidAt:    time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		CreatedAt: fixedNow,
	}
}

func (e *ExpenseBuilder) With(mutate func(*ExpenseBuilder)) *ExpenseBuilder {
	mutate(e)
	return e
}

func (e *ExpenseBuilder) BuildDomain() *expense.Expense {
	return expense.ReconstructExpense(e.GUID, e.UserGUID, e.Name, e.Price, e.Note, e.PaidAt, e.CreatedAt, e.CreatedAt)
}

func (e *ExpenseBuilder) BuildInfra() sqlc.GetExpenseByGUIDRow {
	return sqlc.GetExpenseByGUIDRow{
		ID:        e.ID,
		Guid:      e.GUID,
		UserGuid:  e.UserGUID,
		Name:      e.Name,
		Price:     e.Price,
		Note:      pgconv.StringPtrToPgtype(e.Note),
		PaidAt:    pgconv.DateToPgtype(e.PaidAt),
		CreatedAt: pgconv.TimeToPgtype(e.CreatedAt),
		UpdatedAt: pgconv.TimeToPgtype(e.CreatedAt),
	}
}

func (e *ExpenseBuilder) BuildView() *queries.ExpenseView {
	return &queries.ExpenseView{
		GUID:            e.GUID,
		UserGUID:        e.UserGUID,
		Name:            e.Name,
		Price:           e.Price,
		Note:            e.Note,
		PaidAt:          e.PaidAt,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.CreatedAt,
		LinkedMatchings: []queries.LinkedMatching{},
	}
}

// BuildCreateRequestDTO returns the JSON body accepted by POST /api/expenses.
func (e *ExpenseBuilder) BuildCreateRequestDTO() map[string]any {
	body := map[string]any{
		"user_guid": e.UserGUID,
		"name":      e.Name,
		"price":     e.Price,
		"paid_at":   e.PaidAt.Format(time.DateOnly),
	}
	if e.Note != nil {
		body["note"] = *e.Note
	}
	return body
}
