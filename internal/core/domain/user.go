package domain

import "time"

const (
	RoleUser      = "user"
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
)

// Roles lists every role the platform knows about. The roles collection is
// seeded from this set at startup and never grows afterwards.
var Roles = []string{RoleUser, RoleAdmin, RoleModerator}

// ValidRole reports whether name is one of the seeded role names.
func ValidRole(name string) bool {
	for _, r := range Roles {
		if r == name {
			return true
		}
	}
	return false
}

// User models a registered account. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	RoleID       string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Role is one of the three fixed authorization roles. Immutable after seeding.
type Role struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthContext carries the authorization state resolved once per protected
// request: the token subject plus the role re-read from the database.
// Handlers read it from the request context instead of re-fetching.
type AuthContext struct {
	UserID   string
	RoleName string
}

// Authorized reports whether the context's role is in the allowed set.
func (a AuthContext) Authorized(allowed ...string) bool {
	for _, r := range allowed {
		if a.RoleName == r {
			return true
		}
	}
	return false
}
