package repository

import (
	"context"

	"expense-matching/internal/domain/user"
	"expense-matching/internal/infra"
	"expense-matching/internal/infra/repository/converter"
	sqlc "expense-matching/internal/infra/sqlc/generated"
)

type UserWriteQueries interface {
	GetUserByGUID(ctx context.Context, db sqlc.DBTX, guid string) (sqlc.User, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) FindByGUID(ctx context.Context, tx sqlc.DBTX, guid string) (*user.User, error) {
	row, err := r.queries.GetUserByGUID(ctx, tx, guid)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return converter.UserFromRow(row), nil
}
