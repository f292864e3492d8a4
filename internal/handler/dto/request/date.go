package request

import (
	"time"

	"expense-matching/internal/pkg/errs"
)

var ErrInvalidDate = errs.Validation("paid_at must be a date (YYYY-MM-DD) or an RFC3339 timestamp")

// parseDate accepts a calendar date or a full timestamp; the time of day is
// dropped by the domain.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
