package readstore

import (
	"context"

	"expense-matching/internal/domain/matching"
	"expense-matching/internal/infra"
	"expense-matching/internal/infra/repository/converter"
	sqlc "expense-matching/internal/infra/sqlc/generated"
	"expense-matching/internal/pkg/pgconv"
	"expense-matching/internal/usecase/queries"
)

type MatchingReadQueries interface {
	ListMatchings(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListMatchingsRow, error)
	GetMatchingByGUID(ctx context.Context, db sqlc.DBTX, guid string) (sqlc.GetMatchingByGUIDRow, error)
	ListMatchingExpenses(ctx context.Context, db sqlc.DBTX, matchingGuid string) ([]sqlc.ListMatchingExpensesRow, error)
}

type MatchingReadStore struct {
	queries MatchingReadQueries
}

func NewMatchingReadStore(queries MatchingReadQueries) *MatchingReadStore {
	return &MatchingReadStore{queries: queries}
}

func (r *MatchingReadStore) List(ctx context.Context, dbtx sqlc.DBTX) ([]*queries.MatchingView, error) {
	rows, err := r.queries.ListMatchings(ctx, dbtx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list matchings", err)
	}
	out := make([]*queries.MatchingView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toMatchingView(sqlc.GetMatchingByGUIDRow(row)))
	}
	return out, nil
}

func (r *MatchingReadStore) FindByGUID(ctx context.Context, dbtx sqlc.DBTX, guid string) (*queries.MatchingView, error) {
	row, err := r.queries.GetMatchingByGUID(ctx, dbtx, guid)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("matching not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get matching", err)
	}
	return toMatchingView(row), nil
}

func (r *MatchingReadStore) ListSnapshots(ctx context.Context, dbtx sqlc.DBTX, matchingGUID string) ([]*matching.Snapshot, error) {
	rows, err := r.queries.ListMatchingExpenses(ctx, dbtx, matchingGUID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list matching expenses", err)
	}
	out := make([]*matching.Snapshot, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.SnapshotFromRow(row))
	}
	return out, nil
}

func toMatchingView(row sqlc.GetMatchingByGUIDRow) *queries.MatchingView {
	m := converter.MatchingFromRow(row)
	return &queries.MatchingView{
		GUID:            m.GUID(),
		Name:            m.Name(),
		CreatedUserGUID: m.CreatedUserGUID(),
		SettledAt:       m.SettledAt(),
		State:           m.State().String(),
		CreatedAt:       m.CreatedAt(),
		UpdatedAt:       m.UpdatedAt(),
	}
}
