//go:build unit

package readstore

import (
	"context"
	"testing"

	"expense-matching/internal/infra"
	sqlc "expense-matching/internal/infra/sqlc/generated"
	"expense-matching/internal/testutil/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockExpenseReadQueries struct {
	mock.Mock
}

func (m *MockExpenseReadQueries) GetExpenseByGUID(ctx context.Context, tx sqlc.DBTX, guid string) (sqlc.GetExpenseByGUIDRow, error) {
	args := m.Called(ctx, tx, guid)
	return args.Get(0).(sqlc.GetExpenseByGUIDRow), args.Error(1)
}

func (m *MockExpenseReadQueries) ListExpenses(ctx context.Context, tx sqlc.DBTX, userGuid pgtype.Text) ([]sqlc.ListExpensesRow, error) {
	args := m.Called(ctx, tx, userGuid)
	return args.Get(0).([]sqlc.ListExpensesRow), args.Error(1)
}

func (m *MockExpenseReadQueries) ListLinkedMatchings(ctx context.Context, tx sqlc.DBTX, expenseGuids []string) ([]sqlc.ListLinkedMatchingsRow, error) {
	args := m.Called(ctx, tx, expenseGuids)
	return args.Get(0).([]sqlc.ListLinkedMatchingsRow), args.Error(1)
}

func TestExpenseReadStoreList(t *testing.T) {
	first := builder.NewExpenseBuilder().With(func(b *builder.ExpenseBuilder) { b.GUID = "e-1" })
	second := builder.NewExpenseBuilder().With(func(b *builder.ExpenseBuilder) { b.GUID = "e-2" })

	t.Run("groups linked matchings per expense", func(t *testing.T) {
		q := new(MockExpenseReadQueries)
		q.On("ListExpenses", mock.Anything, mock.Anything, pgtype.Text{}).
			Return([]sqlc.ListExpensesRow{sqlc.ListExpensesRow(first.BuildInfra()), sqlc.ListExpensesRow(second.BuildInfra())}, nil)
		q.On("ListLinkedMatchings", mock.Anything, mock.Anything, []string{"e-1", "e-2"}).
			Return([]sqlc.ListLinkedMatchingsRow{
				{ExpenseGuid: "e-1", MatchingGuid: "m-1", MatchingName: "March"},
				{ExpenseGuid: "e-1", MatchingGuid: "m-2", MatchingName: "April"},
			}, nil)

		views, err := NewExpenseReadStore(q).List(context.Background(), nil, nil)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Len(t, views[0].LinkedMatchings, 2)
		assert.Equal(t, "April", views[0].LinkedMatchings[1].Name)
		assert.NotNil(t, views[1].LinkedMatchings)
		assert.Empty(t, views[1].LinkedMatchings)
		q.AssertExpectations(t)
	})

	t.Run("user filter is passed as text", func(t *testing.T) {
		userGUID := "user-a"
		q := new(MockExpenseReadQueries)
		q.On("ListExpenses", mock.Anything, mock.Anything, pgtype.Text{String: userGUID, Valid: true}).
			Return([]sqlc.ListExpensesRow{}, nil)

		views, err := NewExpenseReadStore(q).List(context.Background(), nil, &userGUID)

		require.NoError(t, err)
		assert.Empty(t, views)
		q.AssertNotCalled(t, "ListLinkedMatchings", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestExpenseReadStoreFindByGUID(t *testing.T) {
	q := new(MockExpenseReadQueries)
	q.On("GetExpenseByGUID", mock.Anything, mock.Anything, "missing").Return(sqlc.GetExpenseByGUIDRow{}, pgx.ErrNoRows)

	_, err := NewExpenseReadStore(q).FindByGUID(context.Background(), nil, "missing")

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
