package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubLimiter struct {
	allow bool
	err   error
}

func (l *stubLimiter) Allow(_ context.Context, _, _ string) (bool, error) {
	return l.allow, l.err
}

func runRateLimit(t *testing.T, limiter Limiter) (error, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := RateLimit(limiter, "auth", zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	return handler(c), called
}

func TestRateLimit_Allows(t *testing.T) {
	err, called := runRateLimit(t, &stubLimiter{allow: true})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRateLimit_Throttles(t *testing.T) {
	err, called := runRateLimit(t, &stubLimiter{allow: false})
	if called {
		t.Fatalf("next must not be called")
	}
	assertHTTPError(t, err, http.StatusTooManyRequests)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	err, called := runRateLimit(t, &stubLimiter{err: errors.New("redis down")})
	if err != nil {
		t.Fatalf("limiter failure must fail open, got %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}
