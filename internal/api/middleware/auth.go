package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/resumehub/resume-api/internal/api/metrics"
	"github.com/resumehub/resume-api/internal/core/ports"
)

// UsernameKey is the echo context key under which Auth stores the verified
// token subject.
const UsernameKey = "username"

// Auth enforces bearer authentication. It verifies the Authorization header's
// token and injects the subject username into the context; any failure stops
// the chain with 401 before a handler or store is reached.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			subject, err := verifier.Verify(parts[1])
			if err != nil {
				metrics.TokenRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(UsernameKey, subject)
			return next(c)
		}
	}
}
