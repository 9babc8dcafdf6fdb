package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/blogify/blog-api/internal/core/domain"
	"github.com/blogify/blog-api/internal/core/ports"
)

type stubPostRepo struct {
	posts  []*domain.Post
	nextID int
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	r.nextID++
	copy := *post
	copy.ID = fmt.Sprintf("post_%d", r.nextID)
	r.posts = append(r.posts, &copy)
	return &copy, nil
}

func (r *stubPostRepo) FindAll(_ context.Context) ([]*domain.Post, error) {
	return r.posts, nil
}

func (r *stubPostRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(r.posts))
	r.posts = nil
	return n, nil
}

func TestPostService_Create(t *testing.T) {
	repo := &stubPostRepo{}
	svc := NewPostService(repo, zerolog.Nop())

	post, err := svc.Create(context.Background(), ports.CreatePostInput{
		Title:   "Hello",
		Content: "First post",
		User:    "ada",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if post.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if post.Title != "Hello" || post.Content != "First post" || post.User != "ada" {
		t.Fatalf("unexpected post: %+v", post)
	}
	if post.CreatedAt.IsZero() || post.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestPostService_Create_EmptyFieldsAccepted(t *testing.T) {
	repo := &stubPostRepo{}
	svc := NewPostService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreatePostInput{}); err != nil {
		t.Fatalf("empty post should be accepted, got %v", err)
	}
	if len(repo.posts) != 1 {
		t.Fatalf("expected one stored post")
	}
}

func TestPostService_List_Empty(t *testing.T) {
	svc := NewPostService(&stubPostRepo{}, zerolog.Nop())

	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("empty collection must not be an error, got %v", err)
	}
	if posts == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(posts) != 0 {
		t.Fatalf("expected no posts, got %d", len(posts))
	}
}

func TestPostService_DeleteAll(t *testing.T) {
	repo := &stubPostRepo{}
	svc := NewPostService(repo, zerolog.Nop())

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(context.Background(), ports.CreatePostInput{Title: fmt.Sprintf("p%d", i)}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	n, err := svc.DeleteAll(context.Background())
	if err != nil {
		t.Fatalf("DeleteAll returned error: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 deleted, got %d", n)
	}

	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List after delete failed: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected no posts after delete, got %d", len(posts))
	}
}
