package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cypu/rulebook-api/internal/apperror"
	"github.com/cypu/rulebook-api/internal/model"
)

// Context keys set by Authenticate.
const (
	ContextUserID = "user_id"
	ContextUser   = "user"
)

// Identifier resolves a session token to a user.
type Identifier interface {
	Identify(ctx context.Context, raw string) (*model.User, error)
}

// Authenticate resolves the caller from the Authorization bearer header or,
// failing that, the session cookie.  It never rejects: an absent or invalid
// credential leaves the request anonymous and later middleware decides.
func Authenticate(ident Identifier, sessions *SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearer(c)
			if raw == "" && sessions != nil {
				raw = sessions.Token(c)
			}
			if raw != "" {
				if u, err := ident.Identify(c.Request().Context(), raw); err == nil {
					c.Set(ContextUser, u)
					c.Set(ContextUserID, u.ID)
				} else if apperror.From(err).Kind == apperror.KindServer {
					return err
				}
			}
			return next(c)
		}
	}
}

func bearer(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}

// CurrentUser returns the authenticated user, if any.
func CurrentUser(c echo.Context) (*model.User, bool) {
	u, ok := c.Get(ContextUser).(*model.User)
	return u, ok && u != nil
}

// UserID returns the authenticated user id or "".
func UserID(c echo.Context) string {
	if u, ok := CurrentUser(c); ok {
		return u.ID
	}
	return ""
}

// LoggedNeeded rejects anonymous callers with Unauthorized.
func LoggedNeeded() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := CurrentUser(c); !ok {
				return apperror.Unauthorized()
			}
			return next(c)
		}
	}
}

// AdminNeeded rejects callers without the admin role.
func AdminNeeded() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, ok := CurrentUser(c)
			if !ok {
				return apperror.Unauthorized()
			}
			if !u.IsAdmin() {
				return apperror.NotAdmin()
			}
			return next(c)
		}
	}
}
