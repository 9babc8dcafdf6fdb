package service

import (
	"context"

	"github.com/blogify/blog-api/internal/core/domain"
	"github.com/blogify/blog-api/internal/core/ports"
)

// UserService exposes read operations over registered users.
type UserService struct {
	users ports.UserRepository
	roles ports.RoleRepository
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository) *UserService {
	return &UserService{users: users, roles: roles}
}

// ListOthers returns every user except excludeID with role names resolved.
// The role set is small and fixed, so it is loaded once per call.
func (s *UserService) ListOthers(ctx context.Context, excludeID string) ([]ports.UserView, error) {
	users, err := s.users.ListExcept(ctx, excludeID)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrUserNotFound
	}

	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, err
	}
	roleNames := make(map[string]string, len(roles))
	for _, r := range roles {
		roleNames[r.ID] = r.Name
	}

	views := make([]ports.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, ports.UserView{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Role:      roleNames[u.RoleID],
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		})
	}
	return views, nil
}
