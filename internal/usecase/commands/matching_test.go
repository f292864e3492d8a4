//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"expense-matching/internal/domain/expense"
	"expense-matching/internal/domain/matching"
	"expense-matching/internal/domain/user"
	"expense-matching/internal/infra"
	sqlc "expense-matching/internal/infra/sqlc/generated"
	"expense-matching/internal/pkg/clock"
	"expense-matching/internal/pkg/guid"
	"expense-matching/internal/pkg/patch"
	"expense-matching/internal/testutil/builder"
	sharedmock "expense-matching/internal/testutil/mock/shared"
	"expense-matching/internal/usecase/commands"
	"expense-matching/internal/usecase/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

// countingRecorder records which counters a use case bumped.
type countingRecorder struct {
	counts map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{counts: map[string]int{}}
}

func (r *countingRecorder) IncMatchingCreated() { r.counts["matching_created"]++ }
func (r *countingRecorder) IncMatchingSettled() { r.counts["matching_settled"]++ }
func (r *countingRecorder) IncMatchingDeleted() { r.counts["matching_deleted"]++ }
func (r *countingRecorder) IncExpenseAttached() { r.counts["expense_attached"]++ }
func (r *countingRecorder) IncExpenseDetached() { r.counts["expense_detached"]++ }
func (r *countingRecorder) IncExpenseDeleted()  { r.counts["expense_deleted"]++ }

// txMocks is a transaction whose repositories are all mocks.
type txMocks struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	users     *sharedmock.MockUserRepository
	expenses  *sharedmock.MockExpenseRepository
	matchings *sharedmock.MockMatchingRepository
	snapshots *sharedmock.MockSnapshotRepository
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		users:     sharedmock.NewMockUserRepository(ctrl),
		expenses:  sharedmock.NewMockExpenseRepository(ctrl),
		matchings: sharedmock.NewMockMatchingRepository(ctrl),
		snapshots: sharedmock.NewMockSnapshotRepository(ctrl),
	}
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().Expenses().Return(m.expenses).AnyTimes()
	m.tx.EXPECT().Matchings().Return(m.matchings).AnyTimes()
	m.tx.EXPECT().Snapshots().Return(m.snapshots).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	return m
}

func repoNotFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

type MatchingCommandsTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	m       *txMocks
	rec     *countingRecorder
	useCase commands.MatchingCommands
}

func (s *MatchingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.ctrl)
	s.rec = newCountingRecorder()
	s.useCase = commands.NewMatchingUseCase(s.m.uow, clock.NewMockClock(now), guid.NewSequenceGenerator("01JQ000000000000000000NEW1"), s.rec)
}

func (s *MatchingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMatchingCommandsSuite(t *testing.T) {
	suite.Run(t, new(MatchingCommandsTestSuite))
}

func (s *MatchingCommandsTestSuite) TestCreate() {
	creator := builder.NewUserBuilder().BuildDomain()

	s.Run("success", func() {
		s.m.users.EXPECT().FindByGUID(gomock.Any(), gomock.Any(), creator.GUID()).Return(creator, nil)
		s.m.matchings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, m *matching.Matching) error {
				s.Equal("March", m.Name())
				s.Equal(matching.StateOpen, m.State())
				s.Equal(now, m.CreatedAt())
				return nil
			})

		result, err := s.useCase.Create(context.Background(), commands.CreateMatchingRequest{Name: "March", CreatedUserGUID: creator.GUID()})

		s.Require().NoError(err)
		s.Equal("01JQ000000000000000000NEW1", result.MatchingGUID)
		s.Equal(1, s.rec.counts["matching_created"])
	})

	s.Run("unknown creator", func() {
		s.m.users.EXPECT().FindByGUID(gomock.Any(), gomock.Any(), "missing").Return(nil, repoNotFound())

		_, err := s.useCase.Create(context.Background(), commands.CreateMatchingRequest{Name: "March", CreatedUserGUID: "missing"})

		s.ErrorIs(err, user.ErrUnknownUser)
	})

	s.Run("invalid name never reaches storage", func() {
		_, err := s.useCase.Create(context.Background(), commands.CreateMatchingRequest{Name: " ", CreatedUserGUID: creator.GUID()})

		s.ErrorIs(err, matching.ErrEmptyName)
	})
}

func (s *MatchingCommandsTestSuite) TestSettle() {
	s.Run("open matching is settled", func() {
		m := builder.NewMatchingBuilder().BuildDomain()
		s.m.matchings.EXPECT().FindByGUIDForUpdate(gomock.Any(), gomock.Any(), m.GUID()).Return(m, nil)
		s.m.matchings.EXPECT().Update(gomock.Any(), gomock.Any(), m).Return(nil)

		err := s.useCase.Settle(context.Background(), m.GUID())

		s.Require().NoError(err)
		s.Equal(matching.StateSettled, m.State())
		s.Equal(now, *m.SettledAt())
		s.Equal(1, s.rec.counts["matching_settled"])
	})

	s.Run("already settled is rejected without writing", func() {
		m := builder.NewMatchingBuilder().Settled(now.Add(-time.Hour)).BuildDomain()
		s.m.matchings.EXPECT().FindByGUIDForUpdate(gomock.Any(), gomock.Any(), m.GUID()).Return(m, nil)

		err := s.useCase.Settle(context.Background(), m.GUID())

		s.ErrorIs(err, matching.ErrAlreadySettled)
	})

	s.Run("missing matching", func() {
		s.m.matchings.EXPECT().FindByGUIDForUpdate(gomock.Any(), gomock.Any(), "missing").Return(nil, repoNotFound())

		err := s.useCase.Settle(context.Background(), "missing")

		s.ErrorIs(err, matching.ErrMatchingNotFound)
	})
}

func (s *MatchingCommandsTestSuite) TestAttachExpense() {
	e := builder.NewExpenseBuilder().BuildDomain()

	s.Run("success stores a frozen copy", func() {
		m := builder.NewMatchingBuilder().BuildDomain()
		s.m.matchings.EXPECT().FindByGUIDForUpdate(gomock.Any(), gomock.Any(), m.GUID()).Return(m, nil)
		s.m.expenses.EXPECT().FindByGUIDForUpdate(gomock.Any(), gomock.Any(), e.GUID()).Return(e, nil)
		s.m.snapshots.EXPECT().Exists(gomock.Any(), gomock.Any(), m.GUID(), e.GUID()).Return(false, nil)
		s.m.snapshots.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, snap *matching.Snapshot) (int64, error) {
				s.Equal(e.Price().Int64(), snap.ExpensePrice())
				s.Equal(int64(300), *snap.RequestAmount())
				return 7, nil
			})

		result, err := s.useCase.AttachExpense(context.Background(), m.GUID(), commands.AttachExpenseRequest{ExpenseGUID: e.GUID(), RequestAmount: ptr(int64(300))})

		s.Require().NoError(err)
		s.Equal(int64(7), result.Seq)
		s.Equal(1, s.rec.counts["expense_attached"])
	})

	s.Run("duplicate pair is rejected", func() {
		m := builder.NewMatchingBuilder().BuildDomain()
		s.m.matchings.EXPECT().FindByGUIDForUpdate(gomock.Any(), gomock.Any(), m.GUID()).Return(m, nil)
		s.m.expenses.EXPECT().FindByGUIDForUpdate(gomock.Any(), gomock.Any(), e.GUID()).Return(e, nil)
		s.m.snapshots.EXPECT().Exists(gomock.Any(), gomock.Any(), m.GUID(), e.GUID()).Return(true, nil)

		_, err := s.useCase.AttachExpense(context.Background(), m.GUID(), commands.AttachExpenseRequest{ExpenseGUID: e.GUID()})

		s.ErrorIs(err, matching.ErrAlreadyLinked)
	})

	s.Run("unique violation on insert is a duplicate", func() {
		m := builder.NewMatchingBuilder().BuildDomain()
		s.m.matchings.EXPECT().FindByGUIDForUpdate(gomock.Any(), gomock.Any(), m.GUID()).Return(m, nil)
		s.m.expenses.EXPECT().FindByGUIDForUpdate(gomock.Any(), gomock.Any(), e.GUID()).Return(e, nil)
		s.m.snapshots.EXPECT().Exists(gomock.Any(), gomock.Any(), m.GUID(), e.GUID()).Return(false, nil)
		s.m.snapshots.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("insert", nil, infra.KindDuplicateKey))

		_, err := s.useCase.AttachExpense(context.Background(), m.GUID(), commands.AttachExpenseRequest{ExpenseGUID: e.GUID()})

		s.ErrorIs(err, matching.ErrAlreadyLinked)
	})

	s.Run("settled matching is checked before the expense", func() {
		m := builder.NewMatchingBuilder().Settled(now).BuildDomain()
		s.m.matchings.EXPECT().FindByGUIDForUpdate(gomock.Any(), gomock.Any(), m.GUID()).Return(m, nil)

		_, err := s.useCase.AttachExpense(context.Background(), m.GUID(), commands.AttachExpenseRequest{ExpenseGUID: "missing"})

		s.ErrorIs(err, matching.ErrMatchingSettled)
	})

	s.Run("missing matching", func() {
		s.m.matchings.EXPECT().FindByGUIDForUpdate(gomock.Any(), gomock.Any(), "missing").Return(nil, repoNotFound())

		_, err := s.useCase.AttachExpense(context.Background(), "missing", commands.AttachExpenseRequest{ExpenseGUID: e.GUID()})

		s.ErrorIs(err, matching.ErrMatchingNotFound)
	})

	s.Run("missing expense", func() {
		m := builder.NewMatchingBuilder().BuildDomain()
		s.m.matchings.EXPECT().FindByGUIDForUpdate(gomock.Any(), gomock.Any(), m.GUID()).Return(m, nil)
		s.m.expenses.EXPECT().FindByGUIDForUpdate(gomock.Any(), gomock.Any(), "missing").Return(nil, repoNotFound())

		_, err := s.useCase.AttachExpense(context.Background(), m.GUID(), commands.AttachExpenseRequest{ExpenseGUID: "missing"})

		s.ErrorIs(err, expense.ErrExpenseNotFound)
	})

	s.Run("input validation", func() {
		_, err := s.useCase.AttachExpense(context.Background(), "m", commands.AttachExpenseRequest{})
		s.ErrorIs(err, commands.ErrExpenseGUIDRequired)

		_, err = s.useCase.AttachExpense(context.Background(), "m", commands.AttachExpenseRequest{ExpenseGUID: "e", RequestAmount: ptr(int64(-1))})
		s.ErrorIs(err, matching.ErrNegativeRequest)
	})

	s.Run("storage failure is passed through", func() {
		m := builder.NewMatchingBuilder().BuildDomain()
		boom := errors.New("connection reset")
		s.m.matchings.EXPECT().FindByGUIDForUpdate(gomock.Any(), gomock.Any(), m.GUID()).Return(m, nil)
		s.m.expenses.EXPECT().FindByGUIDForUpdate(gomock.Any(), gomock.Any(), e.GUID()).Return(e, nil)
		s.m.snapshots.EXPECT().Exists(gomock.Any(), gomock.Any(), m.GUID(), e.GUID()).Return(false, boom)

		_, err := s.useCase.AttachExpense(context.Background(), m.GUID(), commands.AttachExpenseRequest{ExpenseGUID: e.GUID()})

		s.ErrorIs(err, boom)
	})
}

func (s *MatchingCommandsTestSuite) TestDetachExpense() {
	m := builder.NewMatchingBuilder().BuildDomain()
	e := builder.NewExpenseBuilder().BuildDomain()

	s.Run("by expense guid", func() {
		s.m.matchings.EXPECT().FindByGUIDForUpdate(gomock.Any(), gomock.Any(), m.GUID()).Return(m, nil)
		s.m.expenses.EXPECT().FindByGUID(gomock.Any(), gomock.Any(), e.GUID()).Return(e, nil)
		s.m.snapshots.EXPECT().DeleteByExpense(gomock.Any(), gomock.Any(), m.GUID(), e.GUID()).Return(nil)

		err := s.useCase.DetachExpense(context.Background(), m.GUID(), commands.DetachExpenseRequest{ExpenseGUID: ptr(e.GUID())})

		s.Require().NoError(err)
		s.Equal(1, s.rec.counts["expense_detached"])
	})

	s.Run("by sequence for a deleted expense", func() {
		s.m.matchings.EXPECT().FindByGUIDForUpdate(gomock.Any(), gomock.Any(), m.GUID()).Return(m, nil)
		s.m.snapshots.EXPECT().DeleteBySeq(gomock.Any(), gomock.Any(), m.GUID(), int64(3)).Return(nil)

		err := s.useCase.DetachExpense(context.Background(), m.GUID(), commands.DetachExpenseRequest{Seq: ptr(int64(3))})

		s.NoError(err)
	})

	s.Run("not linked", func() {
		s.m.matchings.EXPECT().FindByGUIDForUpdate(gomock.Any(), gomock.Any(), m.GUID()).Return(m, nil)
		s.m.expenses.EXPECT().FindByGUID(gomock.Any(), gomock.Any(), e.GUID()).Return(e, nil)
		s.m.snapshots.EXPECT().DeleteByExpense(gomock.Any(), gomock.Any(), m.GUID(), e.GUID()).Return(repoNotFound())

		err := s.useCase.DetachExpense(context.Background(), m.GUID(), commands.DetachExpenseRequest{ExpenseGUID: ptr(e.GUID())})

		s.ErrorIs(err, matching.ErrNotLinked)
	})

	s.Run("settled matching", func() {
		settled := builder.NewMatchingBuilder().Settled(now).BuildDomain()
		s.m.matchings.EXPECT().FindByGUIDForUpdate(gomock.Any(), gomock.Any(), settled.GUID()).Return(settled, nil)

		err := s.useCase.DetachExpense(context.Background(), settled.GUID(), commands.DetachExpenseRequest{ExpenseGUID: ptr(e.GUID())})

		s.ErrorIs(err, matching.ErrMatchingSettled)
	})

	s.Run("no target", func() {
		err := s.useCase.DetachExpense(context.Background(), m.GUID(), commands.DetachExpenseRequest{})

		s.ErrorIs(err, commands.ErrDetachTargetRequired)
	})
}

func (s *MatchingCommandsTestSuite) TestUpdate() {
	s.Run("null settled_at reopens", func() {
		m := builder.NewMatchingBuilder().Settled(now.Add(-time.Hour)).BuildDomain()
		s.m.matchings.EXPECT().FindByGUIDForUpdate(gomock.Any(), gomock.Any(), m.GUID()).Return(m, nil)
		s.m.matchings.EXPECT().Update(gomock.Any(), gomock.Any(), m).Return(nil)

		err := s.useCase.Update(context.Background(), m.GUID(), commands.UpdateMatchingRequest{SettledAt: patch.Null[time.Time]()})

		s.Require().NoError(err)
		s.Equal(matching.StateOpen, m.State())
	})

	s.Run("unknown creator", func() {
		m := builder.NewMatchingBuilder().BuildDomain()
		s.m.matchings.EXPECT().FindByGUIDForUpdate(gomock.Any(), gomock.Any(), m.GUID()).Return(m, nil)
		s.m.users.EXPECT().FindByGUID(gomock.Any(), gomock.Any(), "missing").Return(nil, repoNotFound())

		err := s.useCase.Update(context.Background(), m.GUID(), commands.UpdateMatchingRequest{CreatedUserGUID: ptr("missing")})

		s.ErrorIs(err, user.ErrUnknownUser)
	})

	s.Run("no fields", func() {
		err := s.useCase.Update(context.Background(), "m", commands.UpdateMatchingRequest{})

		s.ErrorIs(err, matching.ErrNoFieldsToEdit)
	})
}

func (s *MatchingCommandsTestSuite) TestDelete() {
	s.Run("success", func() {
		s.m.matchings.EXPECT().Delete(gomock.Any(), gomock.Any(), "m").Return(nil)

		s.Require().NoError(s.useCase.Delete(context.Background(), "m"))
		s.Equal(1, s.rec.counts["matching_deleted"])
	})

	s.Run("missing", func() {
		s.m.matchings.EXPECT().Delete(gomock.Any(), gomock.Any(), "missing").Return(repoNotFound())

		s.ErrorIs(s.useCase.Delete(context.Background(), "missing"), matching.ErrMatchingNotFound)
	})
}
