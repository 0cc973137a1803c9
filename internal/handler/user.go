package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cypu/rulebook-api/internal/apperror"
	"github.com/cypu/rulebook-api/internal/middleware"
	"github.com/cypu/rulebook-api/internal/repository"
)

// UserHandler serves /users and /roles.
type UserHandler struct {
	Base
	Users repository.UserStore
	Roles repository.RoleStore
}

func NewUserHandler(base Base, users repository.UserStore, roles repository.RoleStore) *UserHandler {
	return &UserHandler{Base: base, Users: users, Roles: roles}
}

type profileReq struct {
	Name  *string  `json:"name"`
	Lang  *string  `json:"lang"`
	Theme *string  `json:"theme"`
	Scale *float64 `json:"scale"`
}

type rolesReq struct {
	ID    string   `json:"id"`
	Roles []string `json:"roles"`
}

// UpdateProfile handles POST /users/update for the caller's own profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	me, ok := middleware.CurrentUser(c)
	if !ok {
		return apperror.Unauthorized()
	}
	var req profileReq
	if err := bind(c, &req); err != nil {
		return err
	}
	u := *me
	set(&u.Name, req.Name)
	set(&u.Lang, req.Lang)
	set(&u.Theme, req.Theme)
	if req.Scale != nil {
		if *req.Scale <= 0 {
			return apperror.InvalidField("scale")
		}
		u.Scale = *req.Scale
	}
	if u.Lang == "" {
		return apperror.InvalidField("lang")
	}

	ctx, cancel := h.ctx(c)
	defer cancel()
	if err := h.Users.UpdateProfile(ctx, &u); err != nil {
		return storeError(err, "User", "")
	}
	updated, err := h.Users.GetByID(ctx, u.ID)
	if err != nil {
		return storeError(err, "User", "")
	}
	return c.JSON(http.StatusOK, updated)
}

// List handles GET /users/.
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	users, err := h.Users.List(ctx)
	if err != nil {
		return storeError(err, "User", "")
	}
	return c.JSON(http.StatusOK, users)
}

// SetRoles handles POST /users/roles.  An admin cannot drop their own admin
// role.
func (h *UserHandler) SetRoles(c echo.Context) error {
	var req rolesReq
	if err := bind(c, &req); err != nil {
		return err
	}
	id, err := required("id", req.ID)
	if err != nil {
		return err
	}
	if len(req.Roles) == 0 {
		return apperror.InvalidField("roles")
	}
	if id == middleware.UserID(c) && !contains(req.Roles, "admin") {
		return apperror.NotAllowed()
	}

	ctx, cancel := h.ctx(c)
	defer cancel()
	roles, err := h.Roles.GetByNames(ctx, req.Roles)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return apperror.NotFound("Role")
		}
		return apperror.ServerError(err)
	}
	ids := make([]string, 0, len(roles))
	for _, r := range roles {
		ids = append(ids, r.ID)
	}
	if err := h.Users.SetRoles(ctx, id, ids); err != nil {
		return storeError(err, "User", "roles")
	}
	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return storeError(err, "User", "")
	}
	return c.JSON(http.StatusOK, u)
}

// Delete handles POST /users/delete.  Admins cannot delete themselves.
func (h *UserHandler) Delete(c echo.Context) error {
	var req idRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	id, err := required("id", req.ID)
	if err != nil {
		return err
	}
	if id == middleware.UserID(c) {
		return apperror.NotAllowed()
	}

	ctx, cancel := h.ctx(c)
	defer cancel()
	if err := h.Users.Delete(ctx, id); err != nil {
		return storeError(err, "User", "")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted", "_id": id})
}

// ListRoles handles GET /roles/.
func (h *UserHandler) ListRoles(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	roles, err := h.Roles.List(ctx)
	if err != nil {
		return apperror.ServerError(err)
	}
	return c.JSON(http.StatusOK, roles)
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if strings.EqualFold(strings.TrimSpace(s), want) {
			return true
		}
	}
	return false
}
