package ports

import (
	"context"

	"github.com/blogify/blog-api/internal/core/domain"
)

// CreatePostInput carries the fields for a new post. None are mandatory;
// posting with empty fields is accepted as-is.
type CreatePostInput struct {
	Title   string
	Content string
	User    string
}

// PostService defines use-case operations for blog posts.
type PostService interface {
	Create(ctx context.Context, in CreatePostInput) (*domain.Post, error)
	// List returns all posts. An empty collection is a valid empty result.
	List(ctx context.Context) ([]*domain.Post, error)
	DeleteAll(ctx context.Context) (int64, error)
}
