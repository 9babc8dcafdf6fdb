package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/blogify/blog-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by id
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ListExcept(_ context.Context, excludeID string) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if u.ID != excludeID {
			out = append(out, u)
		}
	}
	return out, nil
}

type stubRoleRepo struct {
	roles map[string]*domain.Role // keyed by id
}

func (r *stubRoleRepo) Seed(_ context.Context, _ ...string) error { return nil }

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) FindByID(_ context.Context, id string) (*domain.Role, error) {
	if role, ok := r.roles[id]; ok {
		return role, nil
	}
	return nil, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) List(_ context.Context) ([]*domain.Role, error) {
	out := make([]*domain.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, role)
	}
	return out, nil
}

func rbacFixtures() (*stubUserRepo, *stubRoleRepo) {
	roles := &stubRoleRepo{roles: map[string]*domain.Role{
		"role_admin": {ID: "role_admin", Name: domain.RoleAdmin},
		"role_mod":   {ID: "role_mod", Name: domain.RoleModerator},
		"role_user":  {ID: "role_user", Name: domain.RoleUser},
	}}
	users := &stubUserRepo{users: map[string]*domain.User{
		"u_admin":  {ID: "u_admin", Email: "admin@x.com", RoleID: "role_admin"},
		"u_mod":    {ID: "u_mod", Email: "mod@x.com", RoleID: "role_mod"},
		"u_plain":  {ID: "u_plain", Email: "plain@x.com", RoleID: "role_user"},
		"u_broken": {ID: "u_broken", Email: "broken@x.com", RoleID: "role_gone"},
	}}
	return users, roles
}

func runRBAC(t *testing.T, userID string, allowed ...string) (error, bool, echo.Context) {
	t.Helper()

	users, roles := rbacFixtures()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set(KeyUserID, userID)
	}

	called := false
	mw := RequireRoles(users, roles, allowed...)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	return handler(c), called, c
}

func TestRequireRoles_Allows(t *testing.T) {
	err, called, c := runRBAC(t, "u_admin", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}

	auth, ok := c.Get(KeyAuthContext).(domain.AuthContext)
	if !ok {
		t.Fatalf("auth context not set")
	}
	if auth.UserID != "u_admin" || auth.RoleName != domain.RoleAdmin {
		t.Fatalf("unexpected auth context: %+v", auth)
	}
}

func TestRequireRoles_InsufficientRole(t *testing.T) {
	err, called, _ := runRBAC(t, "u_mod", domain.RoleAdmin)
	if called {
		t.Fatalf("next must not be called")
	}
	assertHTTPError(t, err, http.StatusForbidden)
}

func TestRequireRoles_EitherRole(t *testing.T) {
	for _, id := range []string{"u_admin", "u_mod"} {
		err, called, _ := runRBAC(t, id, domain.RoleAdmin, domain.RoleModerator)
		if err != nil || !called {
			t.Fatalf("user %s: expected access, got err=%v called=%v", id, err, called)
		}
	}

	err, called, _ := runRBAC(t, "u_plain", domain.RoleAdmin, domain.RoleModerator)
	if called {
		t.Fatalf("plain user must not pass")
	}
	assertHTTPError(t, err, http.StatusForbidden)
}

func TestRequireRoles_UserDeletedAfterIssuance(t *testing.T) {
	err, called, _ := runRBAC(t, "u_gone", domain.RoleAdmin)
	if called {
		t.Fatalf("next must not be called")
	}
	assertHTTPError(t, err, http.StatusNotFound)
}

func TestRequireRoles_RoleMissing(t *testing.T) {
	err, called, _ := runRBAC(t, "u_broken", domain.RoleAdmin)
	if called {
		t.Fatalf("next must not be called")
	}
	assertHTTPError(t, err, http.StatusNotFound)
}

func TestRequireRoles_NoSubject(t *testing.T) {
	err, called, _ := runRBAC(t, "", domain.RoleAdmin)
	if called {
		t.Fatalf("next must not be called")
	}
	assertHTTPError(t, err, http.StatusForbidden)
}
