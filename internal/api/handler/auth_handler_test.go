package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/blogify/blog-api/internal/core/domain"
	"github.com/blogify/blog-api/internal/core/ports"
)

type stubAuthService struct {
	signUpFn func(ctx context.Context, in ports.SignUpInput) (*ports.AuthResult, error)
	signInFn func(ctx context.Context, email, password string) (*ports.AuthResult, error)
}

func (s *stubAuthService) SignUp(ctx context.Context, in ports.SignUpInput) (*ports.AuthResult, error) {
	return s.signUpFn(ctx, in)
}

func (s *stubAuthService) SignIn(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.signInFn(ctx, email, password)
}

func newAuthContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_SignUp_Success(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, in ports.SignUpInput) (*ports.AuthResult, error) {
			if in.FirstName != "Ada" || in.Email != "ada@x.com" || in.RoleName != "" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.AuthResult{
				User:        &domain.User{ID: "u_1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com", RoleID: "role_1"},
				Role:        &domain.Role{ID: "role_1", Name: domain.RoleUser},
				AccessToken: "token123",
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/api/user/auth/sign-up",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@x.com","password":"password1"}`)

	if err := handler.SignUp(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["accessToken"] != "token123" {
		t.Fatalf("expected accessToken, got %v", resp["accessToken"])
	}
	if resp["role"] != "role_1" {
		t.Fatalf("expected role id, got %v", resp["role"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "ada@x.com" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
	if _, leaked := user["passwordHash"]; leaked {
		t.Fatalf("password hash must not be serialized")
	}
}

func TestAuthHandler_SignUp_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, in ports.SignUpInput) (*ports.AuthResult, error) {
			return nil, domain.ErrMissingFields
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/api/user/auth/sign-up", `{"firstName":"Ada"}`)

	_ = handler.SignUp(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "Please provide all fields!" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAuthHandler_SignUp_ShortPassword(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, in ports.SignUpInput) (*ports.AuthResult, error) {
			t.Fatalf("service must not be called on validation failure")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/api/user/auth/sign-up",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@x.com","password":"short"}`)

	_ = handler.SignUp(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_SignUp_EmailTaken(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, in ports.SignUpInput) (*ports.AuthResult, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/api/user/auth/sign-up",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@x.com","password":"password1"}`)

	_ = handler.SignUp(c)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_SignUp_UnknownRole(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, in ports.SignUpInput) (*ports.AuthResult, error) {
			return nil, domain.ErrRoleNotFound
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/api/user/auth/sign-up",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@x.com","password":"password1","role":"moderator"}`)

	_ = handler.SignUp(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "Failed! Role moderator does not exist!" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAuthHandler_SignIn_Success(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			if email != "ada@x.com" || password != "password1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &ports.AuthResult{
				User:        &domain.User{ID: "u_1", Email: "ada@x.com", RoleID: "role_admin"},
				Role:        &domain.Role{ID: "role_admin", Name: domain.RoleAdmin},
				AccessToken: "token123",
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/api/user/auth/sign-in",
		`{"email":"ada@x.com","password":"password1"}`)

	if err := handler.SignIn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["role"] != "ROLE_ADMIN" {
		t.Fatalf("expected formatted role, got %v", resp["role"])
	}
	if resp["accessToken"] != "token123" {
		t.Fatalf("expected accessToken, got %v", resp["accessToken"])
	}
}

func TestAuthHandler_SignIn_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/api/user/auth/sign-in",
		`{"email":"ada@x.com","password":"wrong"}`)

	_ = handler.SignIn(c)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "Email or password is invalid!" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAuthHandler_SignIn_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/api/user/auth/sign-in", "{")

	_ = handler.SignIn(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
