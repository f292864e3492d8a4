package request

import (
	"time"

	"expense-matching/internal/pkg/patch"
	"expense-matching/internal/usecase/commands"
)

type CreateMatchingRequest struct {
	Name            string `json:"name" binding:"required,max=255"`
	CreatedUserGUID string `json:"created_user_guid" binding:"required"`
}

// UpdateMatchingRequest corrects a matching after the fact. settled_at accepts
// an RFC3339 timestamp or null to reopen.
type UpdateMatchingRequest struct {
	Name            *string                `json:"name" binding:"omitempty,max=255"`
	CreatedUserGUID *string                `json:"created_user_guid"`
	SettledAt       patch.Field[time.Time] `json:"settled_at"`
}

type AttachExpenseRequest struct {
	ExpenseGUID   string `json:"expense_guid" binding:"required"`
	RequestAmount *int64 `json:"request_amount" binding:"omitempty,min=0"`
}

type DetachExpenseRequest struct {
	ExpenseGUID       *string `json:"expense_guid"`
	MatchingExpenseID *int64  `json:"matching_expense_id"`
}

func (r *CreateMatchingRequest) ToCommand() commands.CreateMatchingRequest {
	return commands.CreateMatchingRequest{
		Name:            r.Name,
		CreatedUserGUID: r.CreatedUserGUID,
	}
}

func (r *UpdateMatchingRequest) ToCommand() commands.UpdateMatchingRequest {
	return commands.UpdateMatchingRequest{
		Name:            r.Name,
		CreatedUserGUID: r.CreatedUserGUID,
		SettledAt:       r.SettledAt,
	}
}

func (r *AttachExpenseRequest) ToCommand() commands.AttachExpenseRequest {
	return commands.AttachExpenseRequest{
		ExpenseGUID:   r.ExpenseGUID,
		RequestAmount: r.RequestAmount,
	}
}

func (r *DetachExpenseRequest) ToCommand() commands.DetachExpenseRequest {
	return commands.DetachExpenseRequest{
		ExpenseGUID: r.ExpenseGUID,
		Seq:         r.MatchingExpenseID,
	}
}
