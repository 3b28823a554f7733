package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "papi/internal/errors"
	"papi/internal/model"
)

// SessionContextKey is where the session middleware parks the resolved session.
const SessionContextKey = "papi_session"

// CurrentSession returns the session attached to the request, or nil for
// anonymous callers.
func CurrentSession(c echo.Context) *model.Session {
	session, _ := c.Get(SessionContextKey).(*model.Session)
	return session
}

// BearerToken extracts the raw bearer token from the Authorization header.
func BearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if strings.HasPrefix(header, prefix) {
		return header[len(prefix):]
	}
	return ""
}

// domainError maps a service error onto the standard error response envelope.
func domainError(err error) *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
