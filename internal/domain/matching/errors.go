package matching

import "expense-matching/internal/pkg/errs"

var (
	ErrEmptyGUID            = errs.Validation("matching guid cannot be empty")
	ErrEmptyName            = errs.Validation("name is required")
	ErrNameTooLong          = errs.Validation("name exceeds maximum length")
	ErrEmptyCreatedUserGUID = errs.Validation("created_user_guid is required")
	ErrNoFieldsToEdit       = errs.Validation("no fields to update")
	ErrNegativeRequest      = errs.Validation("request_amount must be zero or greater")

	ErrMatchingNotFound = errs.NotFound("matching not found")
	ErrNotLinked        = errs.NotFound("expense is not linked to this matching")

	ErrAlreadySettled = errs.Conflict("matching is already settled")
	ErrAlreadyLinked  = errs.Conflict("expense is already linked to this matching")

	ErrMatchingSettled = errs.InvalidState("matching is settled and can no longer be changed")
)
