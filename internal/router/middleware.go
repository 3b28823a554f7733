package router

import (
	"github.com/labstack/echo/v4"

	apperrors "papi/internal/errors"
	"papi/internal/handler"
	"papi/internal/model"
	"papi/internal/service"
)

// sessionMiddleware resolves the bearer token to its persisted session and
// attaches it to the request. The lookup is also where lazily expired sessions
// get purged, so a revoked or stale token fails here even if its signature is
// still valid.
func sessionMiddleware(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := authService.GetSession(c.Request().Context(), handler.BearerToken(c))
			if session == nil {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrNotAuthenticated)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			c.Set(handler.SessionContextKey, session)
			return next(c)
		}
	}
}

// requireRole rejects sessions whose user is not of the given role.
func requireRole(role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := handler.CurrentSession(c)
			if session == nil || session.User.Role != role {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrForbidden)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}
