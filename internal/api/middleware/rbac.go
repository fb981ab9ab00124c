package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/limkokwing/luct-reporting/internal/api/metrics"
)

// roleError reports both the required role set and the caller's actual
// role, matching the API's error envelope with two extra fields.
type roleError struct {
	Error    string   `json:"error"`
	Required []string `json:"required"`
	Current  string   `json:"current"`
}

// RequireRole enforces role-based access control. It must be composed
// after Auth: a request without an attached identity is rejected with 401
// rather than treated as a crash.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if _, ok := allowed[user.Role]; !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden_role").Inc()
				return c.JSON(http.StatusForbidden, roleError{
					Error:    "access denied: insufficient permissions",
					Required: allowedRoles,
					Current:  user.Role,
				})
			}
			return next(c)
		}
	}
}
