package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/marketpulse/stock-insights/internal/api/metrics"
	"github.com/marketpulse/stock-insights/internal/core/domain"
	"github.com/marketpulse/stock-insights/internal/core/ports"
)

// Context keys for claims injected by Auth.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// Auth extracts the bearer token, verifies it, and injects the decoded
// identity into the request context. Verification failures short-circuit
// with a single collapsed 401 regardless of the internal cause; the cause
// is still visible in the verification metric.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues(verifyLabel(err)).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}

func verifyLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrBadSignature):
		return "bad_signature"
	default:
		return "malformed"
	}
}
