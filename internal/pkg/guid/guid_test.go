//go:build unit

package guid_test

import (
	"testing"

	"expense-matching/internal/pkg/guid"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
)

func TestULIDGenerator(t *testing.T) {
	gen := guid.NewULIDGenerator()

	a := gen.New()
	b := gen.New()

	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
	_, err := ulid.ParseStrict(a)
	assert.NoError(t, err)
}

func TestSequenceGenerator(t *testing.T) {
	gen := guid.NewSequenceGenerator("01ARZ3NDEKTSV4RRFFQ69G5FAV")

	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", gen.New())
	assert.Len(t, gen.New(), 26)
}
