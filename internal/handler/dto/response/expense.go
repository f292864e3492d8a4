package response

import (
	"time"

	"expense-matching/internal/usecase/queries"
)

type LinkedMatchingResponse struct {
	GUID string `json:"guid"`
	Name string `json:"name"`
}

type ExpenseResponse struct {
	GUID            string                   `json:"guid"`
	UserGUID        string                   `json:"user_guid"`
	Name            string                   `json:"name"`
	Price           int64                    `json:"price"`
	Note            *string                  `json:"note"`
	PaidAt          string                   `json:"paid_at"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
	LinkedMatchings []LinkedMatchingResponse `json:"linked_matchings"`
}

type ExpenseEnvelope struct {
	Expense *ExpenseResponse `json:"expense"`
}

type ExpenseListResponse struct {
	Expenses []*ExpenseResponse `json:"expenses"`
}

func FromExpenseView(v *queries.ExpenseView) *ExpenseResponse {
	linked := make([]LinkedMatchingResponse, len(v.LinkedMatchings))
	for i, lm := range v.LinkedMatchings {
		linked[i] = LinkedMatchingResponse{GUID: lm.GUID, Name: lm.Name}
	}
	return &ExpenseResponse{
		GUID:            v.GUID,
		UserGUID:        v.UserGUID,
		Name:            v.Name,
		Price:           v.Price,
		Note:            v.Note,
		PaidAt:          formatDate(v.PaidAt),
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
		LinkedMatchings: linked,
	}
}

func FromExpenseViews(views []*queries.ExpenseView) []*ExpenseResponse {
	res := make([]*ExpenseResponse, len(views))
	for i, v := range views {
		res[i] = FromExpenseView(v)
	}
	return res
}

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
