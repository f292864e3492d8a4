//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"expense-matching/internal/domain/user"
	"expense-matching/internal/pkg/errs"
	"expense-matching/internal/testutil/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.User{}, user.DisplayName{}),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		b := builder.NewUserBuilder()

		actual, err := user.NewUser(b.GUID, "  Alice  ", b.CreatedAt)
		require.NoError(t, err)

		if diff := cmp.Diff(b.BuildDomain(), actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "Alice", actual.Name().String())
	})

	t.Run("guid validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "empty guid NG", mutate: func(b *builder.UserBuilder) { b.GUID = "" }, errIs: user.ErrEmptyGUID},
		})
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "single character OK", mutate: func(b *builder.UserBuilder) { b.Name = "A" }},
			{name: "255 characters OK", mutate: func(b *builder.UserBuilder) { b.Name = strings.Repeat("a", 255) }},
			{name: "255 multibyte characters OK", mutate: func(b *builder.UserBuilder) { b.Name = strings.Repeat("あ", 255) }},
			{name: "256 characters NG", mutate: func(b *builder.UserBuilder) { b.Name = strings.Repeat("a", 256) }, errIs: user.ErrDisplayNameTooLong},
			{name: "empty NG", mutate: func(b *builder.UserBuilder) { b.Name = "" }, errIs: user.ErrEmptyDisplayName},
			{name: "whitespace only NG", mutate: func(b *builder.UserBuilder) { b.Name = "   " }, errIs: user.ErrEmptyDisplayName},
		})
	})

	t.Run("validation errors are classified", func(t *testing.T) {
		assert.True(t, errs.Is(user.ErrEmptyDisplayName, errs.ErrValidation))
		assert.True(t, errs.Is(user.ErrUnknownUser, errs.ErrValidation))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewUserBuilder().With(c.mutate)

			actual, err := user.NewUser(b.GUID, b.Name, time.Now())

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
