package readstore

import (
	"context"

	"expense-matching/internal/infra"
	sqlc "expense-matching/internal/infra/sqlc/generated"
	"expense-matching/internal/pkg/pgconv"
	"expense-matching/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ExpenseReadQueries interface {
	GetExpenseByGUID(ctx context.Context, db sqlc.DBTX, guid string) (sqlc.GetExpenseByGUIDRow, error)
	ListExpenses(ctx context.Context, db sqlc.DBTX, userGuid pgtype.Text) ([]sqlc.ListExpensesRow, error)
	ListLinkedMatchings(ctx context.Context, db sqlc.DBTX, expenseGuids []string) ([]sqlc.ListLinkedMatchingsRow, error)
}

type ExpenseReadStore struct {
	queries ExpenseReadQueries
}

func NewExpenseReadStore(queries ExpenseReadQueries) *ExpenseReadStore {
	return &ExpenseReadStore{queries: queries}
}

func (r *ExpenseReadStore) List(ctx context.Context, dbtx sqlc.DBTX, userGUID *string) ([]*queries.ExpenseView, error) {
	rows, err := r.queries.ListExpenses(ctx, dbtx, pgconv.StringPtrToPgtype(userGUID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expenses", err)
	}
	views := make([]*queries.ExpenseView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toExpenseView(sqlc.GetExpenseByGUIDRow(row)))
	}
	if err := r.attachLinkedMatchings(ctx, dbtx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *ExpenseReadStore) FindByGUID(ctx context.Context, dbtx sqlc.DBTX, guid string) (*queries.ExpenseView, error) {
	row, err := r.queries.GetExpenseByGUID(ctx, dbtx, guid)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("expense not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get expense", err)
	}
	view := toExpenseView(row)
	if err := r.attachLinkedMatchings(ctx, dbtx, []*queries.ExpenseView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (r *ExpenseReadStore) attachLinkedMatchings(ctx context.Context, dbtx sqlc.DBTX, views []*queries.ExpenseView) error {
	if len(views) == 0 {
		return nil
	}
	byGUID := make(map[string]*queries.ExpenseView, len(views))
	guids := make([]string, 0, len(views))
	for _, v := range views {
		byGUID[v.GUID] = v
		guids = append(guids, v.GUID)
	}

	links, err := r.queries.ListLinkedMatchings(ctx, dbtx, guids)
	if err != nil {
		return infra.WrapRepoErr("failed to list linked matchings", err)
	}
	for _, l := range links {
		if v, ok := byGUID[l.ExpenseGuid]; ok {
			v.LinkedMatchings = append(v.LinkedMatchings, queries.LinkedMatching{GUID: l.MatchingGuid, Name: l.MatchingName})
		}
	}
	return nil
}

func toExpenseView(row sqlc.GetExpenseByGUIDRow) *queries.ExpenseView {
	return &queries.ExpenseView{
		GUID:            row.Guid,
		UserGUID:        row.UserGuid,
		Name:            row.Name,
		Price:           row.Price,
		Note:            pgconv.StringPtrFromPgtype(row.Note),
		PaidAt:          pgconv.DateFromPgtype(row.PaidAt),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
		LinkedMatchings: []queries.LinkedMatching{},
	}
}
