package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cypu/rulebook-api/internal/rights"
)

// PageRights guards UI pages: callers the table does not admit are
// redirected instead of served.
func PageRights(table *rights.Table) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var caller rights.Caller
			if u, ok := CurrentUser(c); ok {
				caller = rights.Caller{Logged: true, Admin: u.IsAdmin()}
			}
			d := table.Check(c.Request().URL.Path, caller)
			if !d.Allow {
				return c.Redirect(http.StatusFound, d.Redirect)
			}
			return next(c)
		}
	}
}
