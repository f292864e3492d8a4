//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"expense-matching/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "no rows is not found", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation is duplicate key", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "fk violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "anything else is db failure", err: errors.New("connection reset"), want: infra.KindDBFailure},
		{name: "explicit kind wins", err: errors.New("boom"), kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tc.err, tc.kind...)

			assert.True(t, infra.IsKind(err, tc.want), "got %v", err)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
