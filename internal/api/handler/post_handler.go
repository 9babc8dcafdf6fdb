package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blogify/blog-api/internal/core/domain"
	"github.com/blogify/blog-api/internal/core/ports"
)

type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	User    string `json:"user"`
}

type createPostResponse struct {
	Status  int          `json:"status"`
	Message string       `json:"message"`
	Post    *domain.Post `json:"post"`
}

type listPostsResponse struct {
	Status     int            `json:"status"`
	Message    string         `json:"message"`
	TotalPosts int            `json:"totalPosts"`
	Posts      []*domain.Post `json:"posts"`
}

type deletePostsResponse struct {
	Status       int    `json:"status"`
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

// Create stores a new post.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "Post fields"
// @Success      201   {object}  createPostResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Status: http.StatusBadRequest, Message: "invalid payload"})
	}

	post, err := h.service.Create(c.Request().Context(), ports.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
		User:    req.User,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Status: http.StatusInternalServerError, Message: "Failed to create post!"})
	}

	return c.JSON(http.StatusCreated, createPostResponse{
		Status:  http.StatusCreated,
		Message: "Post created successfully!",
		Post:    post,
	})
}

// List returns all posts. An empty collection is a valid empty result.
//
// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Success      200  {object}  listPostsResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Status: http.StatusInternalServerError, Message: "Failed to get posts!"})
	}

	return c.JSON(http.StatusOK, listPostsResponse{
		Status:     http.StatusOK,
		Message:    "Get Posts successfully!",
		TotalPosts: len(posts),
		Posts:      posts,
	})
}

// DeleteAll removes every post. Irreversible.
//
// @Summary      Delete all posts
// @Tags         posts
// @Produce      json
// @Success      200  {object}  deletePostsResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/posts [delete]
func (h *PostHandler) DeleteAll(c echo.Context) error {
	n, err := h.service.DeleteAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Status: http.StatusInternalServerError, Message: "Failed to delete posts!"})
	}

	return c.JSON(http.StatusOK, deletePostsResponse{
		Status:       http.StatusOK,
		Message:      "Posts deleted successfully!",
		DeletedCount: n,
	})
}
