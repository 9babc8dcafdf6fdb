package ports

import (
	"context"

	"github.com/blogify/blog-api/internal/core/domain"
)

// PostRepository defines persistence operations for blog posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindAll(ctx context.Context) ([]*domain.Post, error)
	// DeleteAll removes every post and returns the number deleted.
	DeleteAll(ctx context.Context) (int64, error)
}
