//go:build unit || e2e

package builder

import (
	"time"

	"expense-matching/internal/domain/user"
	sqlc "expense-matching/internal/infra/sqlc/generated"
	"expense-matching/internal/pkg/pgconv"
	"expense-matching/internal/usecase/queries"
)

var fixedNow = time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

type UserBuilder struct {
	ID        int64
	GUID      string
	Name      string
	CreatedAt time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:        1,
		GUID:      "01JQ0000000000000000USER01",
		Name:      "Alice",
		CreatedAt: fixedNow,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() *user.User {
	return user.ReconstructUser(u.GUID, u.Name, u.CreatedAt, u.CreatedAt)
}

func (u *UserBuilder) BuildInfra() sqlc.User {
	return sqlc.User{
		ID:        u.ID,
		Guid:      u.GUID,
		Name:      u.Name,
		CreatedAt: pgconv.TimeToPgtype(u.CreatedAt),
		UpdatedAt: pgconv.TimeToPgtype(u.CreatedAt),
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		GUID:      u.GUID,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.CreatedAt,
	}
}
