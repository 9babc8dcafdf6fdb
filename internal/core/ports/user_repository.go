package ports

import (
	"context"

	"github.com/blogify/blog-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// ListExcept returns every user whose id differs from excludeID.
	ListExcept(ctx context.Context, excludeID string) ([]*domain.User, error)
}
