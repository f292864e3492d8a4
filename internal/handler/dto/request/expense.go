package request

import (
	"expense-matching/internal/pkg/patch"
	"expense-matching/internal/usecase/commands"
)

type CreateExpenseRequest struct {
	UserGUID string  `json:"user_guid" binding:"required"`
	Name     string  `json:"name" binding:"required,max=255"`
	Price    *int64  `json:"price" binding:"required,min=0"`
	Note     *string `json:"note" binding:"omitempty,max=1000"`
	PaidAt   string  `json:"paid_at" binding:"required"`
}

// UpdateExpenseRequest is partial. Note distinguishes an omitted member from
// an explicit null, which clears it.
type UpdateExpenseRequest struct {
	UserGUID *string             `json:"user_guid"`
	Name     *string             `json:"name" binding:"omitempty,max=255"`
	Price    *int64              `json:"price" binding:"omitempty,min=0"`
	Note     patch.Field[string] `json:"note"`
	PaidAt   *string             `json:"paid_at"`
}

func (r *CreateExpenseRequest) ToCommand() (commands.CreateExpenseRequest, error) {
	paidAt, err := parseDate(r.PaidAt)
	if err != nil {
		return commands.CreateExpenseRequest{}, err
	}
	return commands.CreateExpenseRequest{
		UserGUID: r.UserGUID,
		Name:     r.Name,
		Price:    *r.Price,
		Note:     r.Note,
		PaidAt:   paidAt,
	}, nil
}

func (r *UpdateExpenseRequest) ToCommand() (commands.UpdateExpenseRequest, error) {
	cmd := commands.UpdateExpenseRequest{
		UserGUID: r.UserGUID,
		Name:     r.Name,
		Price:    r.Price,
		Note:     r.Note,
	}
	if r.PaidAt != nil {
		paidAt, err := parseDate(*r.PaidAt)
		if err != nil {
			return commands.UpdateExpenseRequest{}, err
		}
		cmd.PaidAt = &paidAt
	}
	return cmd, nil
}
