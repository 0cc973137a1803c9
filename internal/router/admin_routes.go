package router

import (
	"github.com/labstack/echo/v4"

	"github.com/cypu/rulebook-api/internal/handler"
	"github.com/cypu/rulebook-api/internal/middleware"
)

// RegisterUsers registers account management.  /users/update acts on the
// caller's own profile; the rest is admin only.
func RegisterUsers(e *echo.Echo, h *handler.UserHandler) {
	e.POST("/users/update", h.UpdateProfile, middleware.LoggedNeeded())

	admin := []echo.MiddlewareFunc{middleware.AdminNeeded()}
	e.GET("/users", h.List, admin...)
	e.GET("/users/", h.List, admin...)
	e.POST("/users/roles", h.SetRoles, admin...)
	e.POST("/users/delete", h.Delete, admin...)
	e.GET("/roles", h.ListRoles, admin...)
	e.GET("/roles/", h.ListRoles, admin...)
}
