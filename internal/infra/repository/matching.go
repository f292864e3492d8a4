package repository

import (
	"context"

	"expense-matching/internal/domain/matching"
	"expense-matching/internal/infra"
	"expense-matching/internal/infra/repository/converter"
	sqlc "expense-matching/internal/infra/sqlc/generated"
)

type MatchingWriteQueries interface {
	GetMatchingByGUIDForUpdate(ctx context.Context, db sqlc.DBTX, guid string) (sqlc.GetMatchingByGUIDForUpdateRow, error)
	CreateMatching(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMatchingParams) (int64, error)
	UpdateMatching(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateMatchingParams) (int64, error)
	DeleteMatching(ctx context.Context, db sqlc.DBTX, guid string) (int64, error)
}

type MatchingRepository struct {
	queries MatchingWriteQueries
}

func NewMatchingRepository(queries MatchingWriteQueries) *MatchingRepository {
	return &MatchingRepository{queries: queries}
}

func (r *MatchingRepository) FindByGUIDForUpdate(ctx context.Context, tx sqlc.DBTX, guid string) (*matching.Matching, error) {
	row, err := r.queries.GetMatchingByGUIDForUpdate(ctx, tx, guid)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock matching", err)
	}
	return converter.MatchingFromRow(sqlc.GetMatchingByGUIDRow(row)), nil
}

func (r *MatchingRepository) Create(ctx context.Context, tx sqlc.DBTX, m *matching.Matching) error {
	if _, err := r.queries.CreateMatching(ctx, tx, converter.MatchingToCreateParams(m)); err != nil {
		return infra.WrapRepoErr("failed to create matching", err)
	}
	return nil
}

func (r *MatchingRepository) Update(ctx context.Context, tx sqlc.DBTX, m *matching.Matching) error {
	n, err := r.queries.UpdateMatching(ctx, tx, converter.MatchingToUpdateParams(m))
	if err != nil {
		return infra.WrapRepoErr("failed to update matching", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("matching not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete also removes the matching's snapshots through the cascading foreign key.
func (r *MatchingRepository) Delete(ctx context.Context, tx sqlc.DBTX, guid string) error {
	n, err := r.queries.DeleteMatching(ctx, tx, guid)
	if err != nil {
		return infra.WrapRepoErr("failed to delete matching", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("matching not found", nil, infra.KindNotFound)
	}
	return nil
}
