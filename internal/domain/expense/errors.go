package expense

import "expense-matching/internal/pkg/errs"

var (
	ErrEmptyGUID      = errs.Validation("expense guid cannot be empty")
	ErrEmptyUserGUID  = errs.Validation("user_guid is required")
	ErrEmptyName      = errs.Validation("name is required")
	ErrNameTooLong    = errs.Validation("name exceeds maximum length")
	ErrNegativePrice  = errs.Validation("price must be zero or greater")
	ErrNoteTooLong    = errs.Validation("note exceeds maximum length")
	ErrMissingPaidAt  = errs.Validation("paid_at is required")
	ErrNoFieldsToEdit = errs.Validation("no fields to update")

	ErrExpenseNotFound = errs.NotFound("expense not found")
)
