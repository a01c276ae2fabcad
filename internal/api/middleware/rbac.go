package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marketpulse/stock-insights/internal/core/domain"
)

// RBAC enforces a per-route role allow-list. A missing role means the Auth
// middleware never ran for this route, which is a wiring bug surfaced as 401
// rather than a silent allow.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxRole).(domain.Role)
			if !ok || role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
