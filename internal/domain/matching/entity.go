package matching

import (
	"strings"
	"time"
	"unicode/utf8"
)

const MaxNameLength = 255

type Matching struct {
	guid            string
	name            string
	createdUserGUID string
	settledAt       *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// NewMatching starts a matching in the Open state with no snapshots.
func NewMatching(guid, name, createdUserGUID string, now time.Time) (*Matching, error) {
	if guid == "" {
		return nil, ErrEmptyGUID
	}
	n, err := validateName(name)
	if err != nil {
		return nil, err
	}
	if createdUserGUID == "" {
		return nil, ErrEmptyCreatedUserGUID
	}

	return &Matching{
		guid:            guid,
		name:            n,
		createdUserGUID: createdUserGUID,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructMatching(guid, name, createdUserGUID string, settledAt *time.Time, createdAt, updatedAt time.Time) *Matching {
	return &Matching{
		guid:            guid,
		name:            name,
		createdUserGUID: createdUserGUID,
		settledAt:       settledAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (m *Matching) State() State {
	if m.settledAt != nil {
		return StateSettled
	}
	return StateOpen
}

// Settle is the single Open -> Settled transition.
func (m *Matching) Settle(now time.Time) error {
	if m.State().IsTerminal() {
		return ErrAlreadySettled
	}
	t := now
	m.settledAt = &t
	m.updatedAt = now
	return nil
}

// EnsureOpen guards membership changes.
func (m *Matching) EnsureOpen() error {
	if m.State().IsTerminal() {
		return ErrMatchingSettled
	}
	return nil
}

// Correction is an administrative edit. SettledAt may be set or cleared
// directly; the normal transition is Settle.
type Correction struct {
	Name            *string
	CreatedUserGUID *string
	SettledAt       *time.Time
	ClearSettledAt  bool
}

func (c Correction) IsEmpty() bool {
	return c.Name == nil && c.CreatedUserGUID == nil && c.SettledAt == nil && !c.ClearSettledAt
}

func (m *Matching) Correct(c Correction, now time.Time) error {
	if c.IsEmpty() {
		return ErrNoFieldsToEdit
	}

	next := *m
	if c.Name != nil {
		n, err := validateName(*c.Name)
		if err != nil {
			return err
		}
		next.name = n
	}
	if c.CreatedUserGUID != nil {
		if *c.CreatedUserGUID == "" {
			return ErrEmptyCreatedUserGUID
		}
		next.createdUserGUID = *c.CreatedUserGUID
	}
	switch {
	case c.ClearSettledAt:
		next.settledAt = nil
	case c.SettledAt != nil:
		t := *c.SettledAt
		next.settledAt = &t
	}
	next.updatedAt = now

	*m = next
	return nil
}

func (m *Matching) GUID() string            { return m.guid }
func (m *Matching) Name() string            { return m.name }
func (m *Matching) CreatedUserGUID() string { return m.createdUserGUID }
func (m *Matching) SettledAt() *time.Time   { return m.settledAt }
func (m *Matching) CreatedAt() time.Time    { return m.createdAt }
func (m *Matching) UpdatedAt() time.Time    { return m.updatedAt }

func validateName(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(t) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return t, nil
}
