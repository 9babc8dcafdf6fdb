package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/blogify/blog-api/internal/api/metrics"
)

// Context keys set by the middleware chain.
const (
	// KeyUserID holds the token subject (user id) set by VerifyToken.
	KeyUserID = "userID"
	// KeyTokenRole holds the raw role claim from the token. Informational
	// only; authorization always re-reads the role from the database.
	KeyTokenRole = "tokenRole"
	// KeyAuthContext holds the domain.AuthContext resolved by RequireRoles.
	KeyAuthContext = "authContext"
)

// VerifyToken validates the bearer JWT and injects the subject claims into
// the request context. A missing token is forbidden (403); a present but
// invalid or expired token is unauthorized (401).
func VerifyToken(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get("Authorization"))
			if token == "" {
				metrics.AuthDeniedTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "No token provided!")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				metrics.AuthDeniedTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized!")
			}

			userInfo, _ := claims["userInfo"].(map[string]any)
			sub, _ := userInfo["sub"].(string)
			if sub == "" {
				metrics.AuthDeniedTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized!")
			}

			c.Set(KeyUserID, sub)
			c.Set(KeyTokenRole, userInfo["role"])

			return next(c)
		}
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. Returns "" when the header is absent or malformed.
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
