package matching

import (
	"time"

	"expense-matching/internal/domain/expense"
)

// Snapshot is the frozen copy of an expense taken when it joins a matching.
// The copied fields have no setters; only the back-reference to the source
// expense can become nil, and that happens in storage when the expense is deleted.
type Snapshot struct {
	seq           int64
	matchingGUID  string
	expenseGUID   *string
	userGUID      string
	expenseName   string
	expensePrice  int64
	expensePaidAt time.Time
	requestAmount *int64
	createdAt     time.Time
}

// NewSnapshot copies e into a new snapshot for m. The request amount is stored
// as given; a nil request is resolved to the default claim at read time.
func NewSnapshot(m *Matching, e *expense.Expense, requestAmount *int64, now time.Time) (*Snapshot, error) {
	if err := m.EnsureOpen(); err != nil {
		return nil, err
	}
	if requestAmount != nil && *requestAmount < 0 {
		return nil, ErrNegativeRequest
	}

	expenseGUID := e.GUID()
	var req *int64
	if requestAmount != nil {
		v := *requestAmount
		req = &v
	}

	return &Snapshot{
		matchingGUID:  m.GUID(),
		expenseGUID:   &expenseGUID,
		userGUID:      e.UserGUID(),
		expenseName:   e.Name().String(),
		expensePrice:  e.Price().Int64(),
		expensePaidAt: e.PaidAt().Time(),
		requestAmount: req,
		createdAt:     now,
	}, nil
}

func ReconstructSnapshot(
	seq int64,
	matchingGUID string,
	expenseGUID *string,
	userGUID string,
	expenseName string,
	expensePrice int64,
	expensePaidAt time.Time,
	requestAmount *int64,
	createdAt time.Time,
) *Snapshot {
	return &Snapshot{
		seq:           seq,
		matchingGUID:  matchingGUID,
		expenseGUID:   expenseGUID,
		userGUID:      userGUID,
		expenseName:   expenseName,
		expensePrice:  expensePrice,
		expensePaidAt: expensePaidAt,
		requestAmount: requestAmount,
		createdAt:     createdAt,
	}
}

// ClaimAmount is the request amount when present, otherwise half the price
// rounded down.
func (s *Snapshot) ClaimAmount() int64 {
	if s.requestAmount != nil {
		return *s.requestAmount
	}
	return s.expensePrice / 2
}

func (s *Snapshot) Seq() int64               { return s.seq }
func (s *Snapshot) MatchingGUID() string     { return s.matchingGUID }
func (s *Snapshot) ExpenseGUID() *string     { return s.expenseGUID }
func (s *Snapshot) UserGUID() string         { return s.userGUID }
func (s *Snapshot) ExpenseName() string      { return s.expenseName }
func (s *Snapshot) ExpensePrice() int64      { return s.expensePrice }
func (s *Snapshot) ExpensePaidAt() time.Time { return s.expensePaidAt }
func (s *Snapshot) RequestAmount() *int64    { return s.requestAmount }
func (s *Snapshot) CreatedAt() time.Time     { return s.createdAt }
