//go:build unit || e2e

package builder

import (
	"time"

	"expense-matching/internal/domain/matching"
	sqlc "expense-matching/internal/infra/sqlc/generated"
	"expense-matching/internal/pkg/pgconv"
	"expense-matching/internal/usecase/queries"
)

type MatchingBuilder struct {
	ID              int64
	GUID            string
	Name            string
	CreatedUserGUID string
	SettledAt       *time.Time
	CreatedAt       time.Time
}

func NewMatchingBuilder() *MatchingBuilder {
	return &MatchingBuilder{
		ID:              1,
		GUID:            "01JQ0000000000000MATCHING1",
		Name:            "March",
		CreatedUserGUID: NewUserBuilder().GUID,
		CreatedAt:       fixedNow,
	}
}

func (m *MatchingBuilder) With(mutate func(*MatchingBuilder)) *MatchingBuilder {
	mutate(m)
	return m
}

func (m *MatchingBuilder) Settled(at time.Time) *MatchingBuilder {
	m.SettledAt = &at
	return m
}

func (m *MatchingBuilder) BuildDomain() *matching.Matching {
	return matching.ReconstructMatching(m.GUID, m.Name, m.CreatedUserGUID, m.SettledAt, m.CreatedAt, m.CreatedAt)
}

func (m *MatchingBuilder) BuildInfra() sqlc.GetMatchingByGUIDRow {
	return sqlc.GetMatchingByGUIDRow{
		ID:              m.ID,
		Guid:            m.GUID,
		Name:            m.Name,
		CreatedUserGuid: m.CreatedUserGUID,
		SettledAt:       pgconv.TimePtrToPgtype(m.SettledAt),
		CreatedAt:       pgconv.TimeToPgtype(m.CreatedAt),
		UpdatedAt:       pgconv.TimeToPgtype(m.CreatedAt),
	}
}

func (m *MatchingBuilder) BuildView() *queries.MatchingView {
	state := matching.StateOpen
	if m.SettledAt != nil {
		state = matching.StateSettled
	}
	return &queries.MatchingView{
		GUID:            m.GUID,
		Name:            m.Name,
		CreatedUserGUID: m.CreatedUserGUID,
		SettledAt:       m.SettledAt,
		State:           state.String(),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.CreatedAt,
	}
}
