package expense

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxNameLength = 255
	MaxNoteLength = 1000
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Name{}, ErrEmptyName
	}
	if utf8.RuneCountInString(t) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: t}, nil
}

func (n Name) String() string { return n.value }

// Price is an amount in integer currency units.
type Price struct {
	value int64
}

func NewPrice(v int64) (Price, error) {
	if v < 0 {
		return Price{}, ErrNegativePrice
	}
	return Price{value: v}, nil
}

func (p Price) Int64() int64 { return p.value }

type Note struct {
	text string
}

func NewNote(s string) (Note, error) {
	if utf8.RuneCountInString(s) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{text: s}, nil
}

func (n Note) String() string { return n.text }

// PaidAt is a calendar date; the time of day is dropped.
type PaidAt struct {
	date time.Time
}

func NewPaidAt(t time.Time) (PaidAt, error) {
	if t.IsZero() {
		return PaidAt{}, ErrMissingPaidAt
	}
	return PaidAt{date: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}, nil
}

func (p PaidAt) Time() time.Time { return p.date }
