//go:build unit

package matching_test

import (
	"strings"
	"testing"
	"time"

	"expense-matching/internal/domain/matching"
	"expense-matching/internal/pkg/errs"
	"expense-matching/internal/testutil/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	t0 = time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	t1 = t0.Add(time.Hour)
)

func ptr[T any](v T) *T { return &v }

func TestNewMatching(t *testing.T) {
	t.Run("starts open", func(t *testing.T) {
		m, err := matching.NewMatching("01JQ0000000000000MATCHING1", "  March  ", "01JQ0000000000000000USER01", t0)
		require.NoError(t, err)

		assert.Equal(t, "March", m.Name())
		assert.Equal(t, matching.StateOpen, m.State())
		assert.Nil(t, m.SettledAt())
		assert.NoError(t, m.EnsureOpen())
	})

	testCases := []struct {
		name  string
		guid  string
		mname string
		user  string
		errIs error
	}{
		{name: "255 characters OK", guid: "g", mname: strings.Repeat("a", 255), user: "u"},
		{name: "256 characters NG", guid: "g", mname: strings.Repeat("a", 256), user: "u", errIs: matching.ErrNameTooLong},
		{name: "blank name NG", guid: "g", mname: " ", user: "u", errIs: matching.ErrEmptyName},
		{name: "empty guid NG", guid: "", mname: "March", user: "u", errIs: matching.ErrEmptyGUID},
		{name: "empty creator NG", guid: "g", mname: "March", user: "", errIs: matching.ErrEmptyCreatedUserGUID},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matching.NewMatching(tc.guid, tc.mname, tc.user, t0)
			if tc.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, m)
				return
			}
			require.Nil(t, m)
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestSettle(t *testing.T) {
	t.Run("open to settled", func(t *testing.T) {
		m := builder.NewMatchingBuilder().BuildDomain()

		require.NoError(t, m.Settle(t1))

		assert.Equal(t, matching.StateSettled, m.State())
		require.NotNil(t, m.SettledAt())
		assert.Equal(t, t1, *m.SettledAt())
		assert.Equal(t, t1, m.UpdatedAt())
	})

	t.Run("settling twice is a conflict", func(t *testing.T) {
		m := builder.NewMatchingBuilder().Settled(t0).BuildDomain()

		err := m.Settle(t1)

		require.ErrorIs(t, err, matching.ErrAlreadySettled)
		assert.Equal(t, errs.ErrConflict, errs.Kind(err))
		assert.Equal(t, t0, *m.SettledAt())
	})

	t.Run("settled matching rejects membership changes", func(t *testing.T) {
		m := builder.NewMatchingBuilder().Settled(t0).BuildDomain()

		err := m.EnsureOpen()

		require.ErrorIs(t, err, matching.ErrMatchingSettled)
		assert.Equal(t, errs.ErrInvalidState, errs.Kind(err))
	})
}

func TestCorrect(t *testing.T) {
	t.Run("clearing settled_at reopens", func(t *testing.T) {
		m := builder.NewMatchingBuilder().Settled(t0).BuildDomain()

		require.NoError(t, m.Correct(matching.Correction{ClearSettledAt: true}, t1))

		assert.Equal(t, matching.StateOpen, m.State())
		assert.Equal(t, t1, m.UpdatedAt())
	})

	t.Run("setting settled_at settles without the transition guard", func(t *testing.T) {
		m := builder.NewMatchingBuilder().Settled(t0).BuildDomain()

		require.NoError(t, m.Correct(matching.Correction{SettledAt: ptr(t1)}, t1))

		assert.Equal(t, t1, *m.SettledAt())
	})

	t.Run("rename keeps state", func(t *testing.T) {
		m := builder.NewMatchingBuilder().BuildDomain()

		require.NoError(t, m.Correct(matching.Correction{Name: ptr("April")}, t1))

		assert.Equal(t, "April", m.Name())
		assert.Equal(t, matching.StateOpen, m.State())
	})

	t.Run("empty correction NG", func(t *testing.T) {
		m := builder.NewMatchingBuilder().BuildDomain()

		require.ErrorIs(t, m.Correct(matching.Correction{}, t1), matching.ErrNoFieldsToEdit)
	})

	t.Run("invalid field leaves matching untouched", func(t *testing.T) {
		m := builder.NewMatchingBuilder().BuildDomain()

		err := m.Correct(matching.Correction{Name: ptr("April"), CreatedUserGUID: ptr("")}, t1)

		require.ErrorIs(t, err, matching.ErrEmptyCreatedUserGUID)
		assert.Equal(t, "March", m.Name())
	})
}
