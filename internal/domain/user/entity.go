package user

import "time"

// User is referenced by GUID outside the persistence layer. Users are created
// out of band and never change afterwards.
type User struct {
	guid      string
	name      DisplayName
	createdAt time.Time
	updatedAt time.Time
}

func NewUser(guid string, name string, now time.Time) (*User, error) {
	if guid == "" {
		return nil, ErrEmptyGUID
	}
	displayName, err := NewDisplayName(name)
	if err != nil {
		return nil, err
	}
	return &User{
		guid:      guid,
		name:      displayName,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructUser(guid string, name string, createdAt, updatedAt time.Time) *User {
	return &User{
		guid:      guid,
		name:      DisplayName{value: name},
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (u *User) GUID() string         { return u.guid }
func (u *User) Name() DisplayName    { return u.name }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
