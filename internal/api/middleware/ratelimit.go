package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/blogify/blog-api/internal/api/metrics"
)

// Limiter abstracts the fixed-window rate limit store (Redis).
type Limiter interface {
	Allow(ctx context.Context, route, caller string) (bool, error)
}

// RateLimit throttles a route per client IP. A limiter failure fails open:
// losing Redis should not lock everyone out of sign-in.
func RateLimit(limiter Limiter, route string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), route, c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("route", route).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if !ok {
				metrics.RateLimitedTotal.WithLabelValues(route).Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests, try again later")
			}
			return next(c)
		}
	}
}
