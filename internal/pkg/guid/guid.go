// Package guid issues the public identifiers for users, expenses and matchings.
// Internal numeric ids never leave the persistence layer.
package guid

import "github.com/oklog/ulid/v2"

type Generator interface {
	New() string
}

type ULIDGenerator struct{}

func NewULIDGenerator() Generator {
	return ULIDGenerator{}
}

func (ULIDGenerator) New() string {
	return ulid.Make().String()
}

// SequenceGenerator returns pre-seeded values in order; used by tests.
type SequenceGenerator struct {
	values []string
	next   int
}

func NewSequenceGenerator(values ...string) *SequenceGenerator {
	return &SequenceGenerator{values: values}
}

func (g *SequenceGenerator) New() string {
	if g.next >= len(g.values) {
		return ulid.Make().String()
	}
	v := g.values[g.next]
	g.next++
	return v
}
