package ports

import (
	"context"
	"time"
)

// UserView is a user with the role reference resolved to its name, as
// returned by the all-users listing.
type UserView struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserService exposes read operations over registered users.
type UserService interface {
	// ListOthers returns every user except the one identified by excludeID,
	// with role names resolved. Returns domain.ErrUserNotFound when the
	// result set is empty.
	ListOthers(ctx context.Context, excludeID string) ([]UserView, error)
}
