package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/blogify/blog-api/internal/api/metrics"
	"github.com/blogify/blog-api/internal/core/domain"
	"github.com/blogify/blog-api/internal/core/ports"
)

// PostService implements blog post use cases over the post repository.
type PostService struct {
	repo ports.PostRepository
	log  zerolog.Logger
}

func NewPostService(repo ports.PostRepository, log zerolog.Logger) *PostService {
	return &PostService{repo: repo, log: log}
}

// Create persists a post as-is. There is no required-field validation at
// this layer; empty fields are stored.
func (s *PostService) Create(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error) {
	now := time.Now().UTC()
	post := &domain.Post{
		Title:     in.Title,
		Content:   in.Content,
		User:      in.User,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create post")
		return nil, err
	}

	metrics.PostsCreatedTotal.Inc()
	return created, nil
}

// List returns every post. An empty collection yields an empty slice, not an
// error.
func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*domain.Post{}
	}
	return posts, nil
}

// DeleteAll removes every post unconditionally and returns the count.
func (s *PostService) DeleteAll(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	metrics.PostsDeletedTotal.Add(float64(n))
	s.log.Info().Int64("deleted", n).Msg("all posts deleted")
	return n, nil
}
