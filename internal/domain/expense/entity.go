package expense

import (
	"time"

	"expense-matching/internal/pkg/patch"
)

// Expense is the live, editable record. Matchings never hold it directly: they
// copy its financial facts into a snapshot at attach time.
type Expense struct {
	guid      string
	userGUID  string
	name      Name
	price     Price
	note      *Note
	paidAt    PaidAt
	createdAt time.Time
	updatedAt time.Time
}

type Params struct {
	UserGUID string
	Name     string
	Price    int64
	Note     *string
	PaidAt   time.Time
}

func NewExpense(guid string, p Params, now time.Time) (*Expense, error) {
	if guid == "" {
		return nil, ErrEmptyGUID
	}
	if p.UserGUID == "" {
		return nil, ErrEmptyUserGUID
	}
	name, err := NewName(p.Name)
	if err != nil {
		return nil, err
	}
	price, err := NewPrice(p.Price)
	if err != nil {
		return nil, err
	}
	note, err := newOptionalNote(p.Note)
	if err != nil {
		return nil, err
	}
	paidAt, err := NewPaidAt(p.PaidAt)
	if err != nil {
		return nil, err
	}

	return &Expense{
		guid:      guid,
		userGUID:  p.UserGUID,
		name:      name,
		price:     price,
		note:      note,
		paidAt:    paidAt,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructExpense(guid, userGUID, name string, price int64, note *string, paidAt, createdAt, updatedAt time.Time) *Expense {
	var n *Note
	if note != nil {
		n = &Note{text: *note}
	}
	return &Expense{
		guid:      guid,
		userGUID:  userGUID,
		name:      Name{value: name},
		price:     Price{value: price},
		note:      n,
		paidAt:    PaidAt{date: paidAt},
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Changes is a partial update. Nil pointers and unset fields are left alone;
// Note may be set to null to clear it.
type Changes struct {
	UserGUID *string
	Name     *string
	Price    *int64
	Note     patch.Field[string]
	PaidAt   *time.Time
}

func (c Changes) IsEmpty() bool {
	return c.UserGUID == nil && c.Name == nil && c.Price == nil && !c.Note.Set && c.PaidAt == nil
}

// Apply validates every provided field before mutating, so a rejected update
// leaves the expense untouched.
func (e *Expense) Apply(c Changes, now time.Time) error {
	if c.IsEmpty() {
		return ErrNoFieldsToEdit
	}

	next := *e
	if c.UserGUID != nil {
		if *c.UserGUID == "" {
			return ErrEmptyUserGUID
		}
		next.userGUID = *c.UserGUID
	}
	if c.Name != nil {
		name, err := NewName(*c.Name)
		if err != nil {
			return err
		}
		next.name = name
	}
	if c.Price != nil {
		price, err := NewPrice(*c.Price)
		if err != nil {
			return err
		}
		next.price = price
	}
	if c.Note.Set {
		note, err := newOptionalNote(c.Note.Ptr())
		if err != nil {
			return err
		}
		next.note = note
	}
	if c.PaidAt != nil {
		paidAt, err := NewPaidAt(*c.PaidAt)
		if err != nil {
			return err
		}
		next.paidAt = paidAt
	}
	next.updatedAt = now

	*e = next
	return nil
}

func (e *Expense) GUID() string         { return e.guid }
func (e *Expense) UserGUID() string     { return e.userGUID }
func (e *Expense) Name() Name           { return e.name }
func (e *Expense) Price() Price         { return e.price }
func (e *Expense) PaidAt() PaidAt       { return e.paidAt }
func (e *Expense) CreatedAt() time.Time { return e.createdAt }
func (e *Expense) UpdatedAt() time.Time { return e.updatedAt }

func (e *Expense) Note() *string {
	if e.note == nil {
		return nil
	}
	s := e.note.String()
	return &s
}

func newOptionalNote(s *string) (*Note, error) {
	if s == nil {
		return nil, nil
	}
	note, err := NewNote(*s)
	if err != nil {
		return nil, err
	}
	return &note, nil
}
