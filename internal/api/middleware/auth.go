package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/limkokwing/luct-reporting/internal/api/metrics"
	"github.com/limkokwing/luct-reporting/internal/auth"
	"github.com/limkokwing/luct-reporting/internal/core/domain"
	"github.com/limkokwing/luct-reporting/internal/core/ports"
)

// userContextKey is where Auth stores the verified identity. Downstream
// code reads it through CurrentUser.
const userContextKey = "auth_user"

// Auth validates the bearer token and re-fetches the subject from the
// credential store on every request. The freshly fetched user, not the
// token's embedded claims, is what downstream authorization sees, so role
// changes and deletions take effect before the token expires.
func Auth(tokens *auth.TokenService, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "access token required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				// Same client-visible outcome for both failure modes;
				// only the log distinguishes them.
				if errors.Is(err, auth.ErrTokenExpired) {
					metrics.AuthRejectionsTotal.WithLabelValues("expired_token").Inc()
					log.Debug().Str("path", c.Path()).Msg("expired token rejected")
				} else {
					metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
					log.Warn().Str("path", c.Path()).Msg("invalid token rejected")
				}
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthRejectionsTotal.WithLabelValues("stale_user").Inc()
					log.Warn().Int64("user_id", claims.UserID).Msg("token subject no longer exists")
					return echo.NewHTTPError(http.StatusUnauthorized, "user no longer exists")
				}
				return err
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the identity attached by Auth, or nil when the
// middleware has not run on this request.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}
