package queries

import (
	"context"
	"log/slog"

	sqlc "expense-matching/internal/infra/sqlc/generated"
	"expense-matching/internal/pkg/errs"
	"expense-matching/internal/usecase/shared"
)

// ErrCacheMiss is returned by UserCache when nothing is stored.
var ErrCacheMiss = errs.New("cache miss")

type UserQueries interface {
	List(ctx context.Context) ([]*UserView, error)
}

type UserReadStore interface {
	List(ctx context.Context, db sqlc.DBTX) ([]*UserView, error)
}

// UserCache holds the whole user directory. Users never change after
// creation, so entries only expire by TTL.
type UserCache interface {
	GetUsers(ctx context.Context) ([]*UserView, error)
	SetUsers(ctx context.Context, users []*UserView) error
}

type userQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore UserReadStore
	cache     UserCache
}

func NewUserQueries(uow shared.UnitOfWork, readStore UserReadStore, cache UserCache) UserQueries {
	return &userQueriesImpl{
		uow:       uow,
		readStore: readStore,
		cache:     cache,
	}
}

func (q *userQueriesImpl) List(ctx context.Context) ([]*UserView, error) {
	cached, err := q.cache.GetUsers(ctx)
	switch {
	case err == nil:
		return cached, nil
	case !errs.Is(err, ErrCacheMiss):
		slog.WarnContext(ctx, "user cache read failed", "error", err)
	}

	var users []*UserView
	err = q.uow.WithDB(ctx, func(ctx context.Context, dbtx sqlc.DBTX) error {
		var lerr error
		users, lerr = q.readStore.List(ctx, dbtx)
		return lerr
	})
	if err != nil {
		return nil, err
	}

	if err := q.cache.SetUsers(ctx, users); err != nil {
		slog.WarnContext(ctx, "user cache write failed", "error", err)
	}
	return users, nil
}
