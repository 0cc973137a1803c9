// Package router registers the HTTP routes.  Authentication runs globally
// (see middleware.Authenticate); the groups below only decide who may pass.
package router

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cypu/rulebook-api/internal/handler"
	"github.com/cypu/rulebook-api/internal/middleware"
	"github.com/cypu/rulebook-api/internal/rights"
)

// Middlewares are the Redis-backed layers shared by several groups.  Nil
// entries are skipped.
type Middlewares struct {
	RateLimit echo.MiddlewareFunc // auth routes
	Cache     echo.MiddlewareFunc // public catalogue reads
	Purge     echo.MiddlewareFunc // catalogue writes
}

func chain(mws ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
	out := make([]echo.MiddlewareFunc, 0, len(mws))
	for _, m := range mws {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}

// wrap applies mws to h, the first one outermost.
func wrap(h echo.HandlerFunc, mws ...echo.MiddlewareFunc) echo.HandlerFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// RegisterRoutes registers the health probe.
func RegisterRoutes(e *echo.Echo, h *handler.HealthHandler) {
	e.GET("/healthz", h.Health)
}

// RegisterAuth registers the account routes.  The mailed links
// (/verify/:token, /reset/password/:userId/:token) answer browsers with the
// UI page and API clients with JSON.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, page echo.HandlerFunc, mw Middlewares) {
	limit := chain(mw.RateLimit)

	g := e.Group("/auth")
	g.POST("/signup", a.SignUp, limit...)
	g.POST("/signinuser", a.SignIn, limit...)
	g.POST("/signout", a.SignOut)
	g.GET("/check", a.Check)
	g.POST("/forgot", a.Forgot, limit...)
	g.POST("/resend", a.Resend, limit...)

	e.GET("/verify/:token", htmlOr(page, a.Verify), limit...)
	e.GET("/reset/password/:userId/:token", htmlOr(page, a.ResetCheck), limit...)
	e.POST("/users/updatepassword", a.UpdatePassword, limit...)
}

// htmlOr sends navigations that accept HTML to page and everything else to
// api.
func htmlOr(page, api echo.HandlerFunc) echo.HandlerFunc {
	if page == nil {
		return api
	}
	return func(c echo.Context) error {
		if strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML) {
			return page(c)
		}
		return api(c)
	}
}

// RegisterPages serves the UI for every GET no API route claimed, guarded by
// the route-rights table.
func RegisterPages(e *echo.Echo, s *handler.StaticHandler, table *rights.Table) echo.HandlerFunc {
	page := middleware.PageRights(table)(s.Serve)
	e.GET("/*", page)
	return page
}
