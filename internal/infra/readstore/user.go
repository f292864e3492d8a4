package readstore

import (
	"context"

	"expense-matching/internal/infra"
	sqlc "expense-matching/internal/infra/sqlc/generated"
	"expense-matching/internal/pkg/pgconv"
	"expense-matching/internal/usecase/queries"
)

type UserReadQueries interface {
	ListUsers(ctx context.Context, db sqlc.DBTX) ([]sqlc.User, error)
}

type UserReadStore struct {
	queries UserReadQueries
}

func NewUserReadStore(queries UserReadQueries) *UserReadStore {
	return &UserReadStore{queries: queries}
}

func (r *UserReadStore) List(ctx context.Context, dbtx sqlc.DBTX) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, dbtx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	out := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.UserView{
			GUID:      row.Guid,
			Name:      row.Name,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return out, nil
}
