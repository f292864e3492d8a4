package response

import (
	"time"

	"expense-matching/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	GUID      string    `json:"guid"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

func FromUserViews(views []*queries.UserView) (*UserListResponse, error) {
	users := make([]UserResponse, 0, len(views))
	if err := copier.Copy(&users, views); err != nil {
		return nil, err
	}
	return &UserListResponse{Users: users}, nil
}
