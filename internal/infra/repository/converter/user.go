package converter

import (
	"expense-matching/internal/domain/user"
	sqlc "expense-matching/internal/infra/sqlc/generated"
	"expense-matching/internal/pkg/pgconv"
)

func UserFromRow(row sqlc.User) *user.User {
	return user.ReconstructUser(
		row.Guid,
		row.Name,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
