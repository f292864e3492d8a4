//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"expense-matching/internal/domain/matching"
	"expense-matching/internal/handler/httperr"
	"expense-matching/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: matching.ErrMatchingNotFound, want: http.StatusNotFound},
		{name: "not linked", err: matching.ErrNotLinked, want: http.StatusNotFound},
		{name: "duplicate attach", err: matching.ErrAlreadyLinked, want: http.StatusBadRequest},
		{name: "double settle", err: matching.ErrAlreadySettled, want: http.StatusBadRequest},
		{name: "settled matching", err: matching.ErrMatchingSettled, want: http.StatusBadRequest},
		{name: "validation", err: matching.ErrNoFieldsToEdit, want: http.StatusBadRequest},
		{name: "wrapped kind", err: errs.Wrap(matching.ErrMatchingNotFound, "get"), want: http.StatusNotFound},
		{name: "unclassified", err: errors.New("connection refused"), want: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, httperr.StatusOf(tc.err))
		})
	}
}
