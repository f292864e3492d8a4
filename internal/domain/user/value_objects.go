package user

import (
	"strings"
	"unicode/utf8"

	"expense-matching/internal/pkg/errs"
)

const MaxDisplayNameLength = 255

var (
	ErrEmptyGUID          = errs.Validation("user guid cannot be empty")
	ErrEmptyDisplayName   = errs.Validation("user name cannot be empty")
	ErrDisplayNameTooLong = errs.Validation("user name exceeds maximum length")

	// ErrUnknownUser is reported as a bad request: it names a user referenced by
	// another record, not the resource being addressed.
	ErrUnknownUser = errs.Validation("user not found")
)

type DisplayName struct {
	value string
}

func NewDisplayName(s string) (DisplayName, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return DisplayName{}, ErrEmptyDisplayName
	}
	if utf8.RuneCountInString(t) > MaxDisplayNameLength {
		return DisplayName{}, ErrDisplayNameTooLong
	}
	return DisplayName{value: t}, nil
}

func (n DisplayName) String() string { return n.value }
