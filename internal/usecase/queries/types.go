package queries

import (
	"time"
)

type UserView struct {
	GUID      string    `json:"guid"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LinkedMatching struct {
	GUID string `json:"guid"`
	Name string `json:"name"`
}

type ExpenseView struct {
	GUID            string           `json:"guid"`
	UserGUID        string           `json:"user_guid"`
	Name            string           `json:"name"`
	Price           int64            `json:"price"`
	Note            *string          `json:"note"`
	PaidAt          time.Time        `json:"paid_at"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	LinkedMatchings []LinkedMatching `json:"linked_matchings"`
}

type MatchingView struct {
	GUID            string     `json:"guid"`
	Name            string     `json:"name"`
	CreatedUserGUID string     `json:"created_user_guid"`
	SettledAt       *time.Time `json:"settled_at"`
	State           string     `json:"state"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// SnapshotView is a reconciled snapshot with its resolved claim.
type SnapshotView struct {
	Seq           int64     `json:"matching_expense_id"`
	ExpenseGUID   *string   `json:"expense_guid"`
	UserGUID      string    `json:"user_guid"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"`
	PaidAt        time.Time `json:"paid_at"`
	RequestAmount *int64    `json:"request_amount"`
	ClaimAmount   int64     `json:"claim_amount"`
	IsDeleted     bool      `json:"is_deleted"`
}

type UserTotalView struct {
	UserGUID string `json:"user_guid"`
	Name     string `json:"name"`
	Total    int64  `json:"total"`
}

// PairwiseView carries the signed balance of the first user in list order:
// total(first) - total(second).
type PairwiseView struct {
	Balance      int64  `json:"balance"`
	PayerGUID    string `json:"payer_guid"`
	ReceiverGUID string `json:"receiver_guid"`
	Amount       int64  `json:"amount"`
	SettledEven  bool   `json:"settled_even"`
}

type BalanceView struct {
	UserTotals          []UserTotalView `json:"user_totals"`
	GrandTotal          int64           `json:"grand_total"`
	Pairwise            *PairwiseView   `json:"pairwise"`
	PairwiseUnsupported bool            `json:"pairwise_unsupported"`
}

type MatchingDetailView struct {
	Matching          MatchingView   `json:"matching"`
	Expenses          []SnapshotView `json:"expenses"`
	Balance           *BalanceView   `json:"balance"`
	AvailableExpenses []*ExpenseView `json:"available_expenses"`
}
