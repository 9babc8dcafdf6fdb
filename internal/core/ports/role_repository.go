package ports

import (
	"context"

	"github.com/blogify/blog-api/internal/core/domain"
)

// RoleRepository defines persistence operations for the fixed role set.
type RoleRepository interface {
	// Seed upserts the given role names. Safe to call on every startup; a
	// unique index on the name field makes concurrent seeding harmless.
	Seed(ctx context.Context, names ...string) error
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	FindByID(ctx context.Context, id string) (*domain.Role, error)
	List(ctx context.Context) ([]*domain.Role, error)
}
