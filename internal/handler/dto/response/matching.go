package response

import (
	"time"

	"expense-matching/internal/usecase/queries"
)

type MatchingSummaryResponse struct {
	GUID            string     `json:"guid"`
	Name            string     `json:"name"`
	CreatedUserGUID string     `json:"created_user_guid"`
	SettledAt       *time.Time `json:"settled_at"`
	State           string     `json:"state"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type SnapshotResponse struct {
	MatchingExpenseID int64   `json:"matching_expense_id"`
	ExpenseGUID       *string `json:"expense_guid"`
	UserGUID          string  `json:"user_guid"`
	Name              string  `json:"name"`
	Price             int64   `json:"price"`
	PaidAt            string  `json:"paid_at"`
	RequestAmount     *int64  `json:"request_amount"`
	ClaimAmount       int64   `json:"claim_amount"`
	IsDeleted         bool    `json:"is_deleted"`
}

// MatchingResponse is a matching together with its reconciled snapshots.
type MatchingResponse struct {
	MatchingSummaryResponse
	Expenses []SnapshotResponse `json:"expenses"`
}

type MatchingListResponse struct {
	Matchings []MatchingSummaryResponse `json:"matchings"`
}

type MatchingEnvelope struct {
	Matching *MatchingResponse `json:"matching"`
}

type MatchingDetailResponse struct {
	Matching          *MatchingResponse    `json:"matching"`
	Balance           *queries.BalanceView `json:"balance"`
	AvailableExpenses []*ExpenseResponse   `json:"available_expenses"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SettleResponse struct {
	Message  string            `json:"message"`
	Matching *MatchingResponse `json:"matching"`
}

type AttachResponse struct {
	Message           string `json:"message"`
	MatchingExpenseID int64  `json:"matching_expense_id"`
}

func FromMatchingView(v *queries.MatchingView) MatchingSummaryResponse {
	return MatchingSummaryResponse{
		GUID:            v.GUID,
		Name:            v.Name,
		CreatedUserGUID: v.CreatedUserGUID,
		SettledAt:       v.SettledAt,
		State:           v.State,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromMatchingViews(views []*queries.MatchingView) *MatchingListResponse {
	res := make([]MatchingSummaryResponse, len(views))
	for i, v := range views {
		res[i] = FromMatchingView(v)
	}
	return &MatchingListResponse{Matchings: res}
}

func FromMatchingDetail(d *queries.MatchingDetailView) *MatchingDetailResponse {
	snapshots := make([]SnapshotResponse, len(d.Expenses))
	for i, s := range d.Expenses {
		snapshots[i] = SnapshotResponse{
			MatchingExpenseID: s.Seq,
			ExpenseGUID:       s.ExpenseGUID,
			UserGUID:          s.UserGUID,
			Name:              s.Name,
			Price:             s.Price,
			PaidAt:            formatDate(s.PaidAt),
			RequestAmount:     s.RequestAmount,
			ClaimAmount:       s.ClaimAmount,
			IsDeleted:         s.IsDeleted,
		}
	}
	return &MatchingDetailResponse{
		Matching: &MatchingResponse{
			MatchingSummaryResponse: FromMatchingView(&d.Matching),
			Expenses:                snapshots,
		},
		Balance:           d.Balance,
		AvailableExpenses: FromExpenseViews(d.AvailableExpenses),
	}
}
