package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cypu/rulebook-api/internal/apperror"
	"github.com/cypu/rulebook-api/internal/middleware"
	"github.com/cypu/rulebook-api/internal/model"
	"github.com/cypu/rulebook-api/internal/service"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=handler

// AuthFlows is the account service the auth routes drive.
type AuthFlows interface {
	SignUp(ctx context.Context, in service.SignUpInput) (*model.User, error)
	SignIn(ctx context.Context, mail, password string) (*service.Session, error)
	VerifyToken(ctx context.Context, raw string) (*model.User, error)
	ResendVerification(ctx context.Context, mail string) error
	RequestPasswordReset(ctx context.Context, mail string) error
	CheckResetToken(ctx context.Context, userID, token string) error
	UpdatePassword(ctx context.Context, userID, token, pass, confirmPass string) error
}

var _ AuthFlows = (*service.AuthService)(nil)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Base
	Auth     AuthFlows
	Sessions *middleware.SessionStore
}

func NewAuthHandler(base Base, auth AuthFlows, sessions *middleware.SessionStore) *AuthHandler {
	return &AuthHandler{Base: base, Auth: auth, Sessions: sessions}
}

// ----- DTOs -----

type signUpReq struct {
	Mail     string   `json:"mail"`
	Password string   `json:"password"`
	Name     string   `json:"name"`
	Roles    []string `json:"roles"`
}

type signInReq struct {
	Mail     string `json:"mail"`
	Password string `json:"password"`
}

type mailReq struct {
	Mail string `json:"mail"`
}

type updatePasswordReq struct {
	UserID      string `json:"userId"`
	Token       string `json:"token"`
	Pass        string `json:"pass"`
	ConfirmPass string `json:"confirmPass"`
}

type sessionResp struct {
	User    *model.User `json:"user"`
	Token   string      `json:"token"`
	Expires time.Time   `json:"expires"`
}

// SignUp: create an unverified account and mail its verification link.
// Only an admin may pick the roles of the new account.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpReq
	if err := bind(c, &req); err != nil {
		return err
	}
	in := service.SignUpInput{Mail: req.Mail, Password: req.Password, Name: req.Name}
	if caller, ok := middleware.CurrentUser(c); ok && caller.IsAdmin() {
		in.Roles = req.Roles
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	u, err := h.Auth.SignUp(ctx, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, u)
}

// SignIn: check credentials, store the session token in the cookie and also
// return it for bearer use.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInReq
	if err := bind(c, &req); err != nil {
		return err
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	sess, err := h.Auth.SignIn(ctx, req.Mail, req.Password)
	if err != nil {
		return err
	}
	if h.Sessions != nil {
		if err := h.Sessions.Save(c, sess.Token.Token); err != nil {
			return apperror.ServerError(err)
		}
	}
	return c.JSON(http.StatusOK, sessionResp{User: sess.User, Token: sess.Token.Token, Expires: sess.Token.Exp})
}

// SignOut: drop the session cookie.  Bearer tokens simply expire.
func (h *AuthHandler) SignOut(c echo.Context) error {
	if h.Sessions != nil {
		if err := h.Sessions.Clear(c); err != nil {
			return apperror.ServerError(err)
		}
	}
	return c.NoContent(http.StatusNoContent)
}

// Check: return the caller, or Unauthorized.
func (h *AuthHandler) Check(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return apperror.Unauthorized()
	}
	return c.JSON(http.StatusOK, u)
}

// Verify: GET /verify/:token flips the verification flag once.
func (h *AuthHandler) Verify(c echo.Context) error {
	token := strings.TrimSpace(c.Param("token"))
	if token == "" {
		return apperror.NotFound("Token")
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	u, err := h.Auth.VerifyToken(ctx, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// Resend: mail a fresh verification link.
func (h *AuthHandler) Resend(c echo.Context) error {
	var req mailReq
	if err := bind(c, &req); err != nil {
		return err
	}
	if _, err := required("mail", req.Mail); err != nil {
		return err
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.Auth.ResendVerification(ctx, req.Mail); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Verification mail sent", "sent": "true"})
}

// Forgot: mail a password-reset link.
func (h *AuthHandler) Forgot(c echo.Context) error {
	var req mailReq
	if err := bind(c, &req); err != nil {
		return err
	}
	if _, err := required("mail", req.Mail); err != nil {
		return err
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.Auth.RequestPasswordReset(ctx, req.Mail); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Reset mail sent", "sent": "true"})
}

// ResetCheck: GET /reset/password/:userId/:token tells the UI whether the
// link can still be used.  The token is not consumed.
func (h *AuthHandler) ResetCheck(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.Auth.CheckResetToken(ctx, c.Param("userId"), c.Param("token")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"userId": c.Param("userId"), "token": c.Param("token")})
}

// UpdatePassword: consume a reset token.  A signed-in caller may omit userId.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	var req updatePasswordReq
	if err := bind(c, &req); err != nil {
		return err
	}
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = middleware.UserID(c)
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.Auth.UpdatePassword(ctx, userID, strings.TrimSpace(req.Token), req.Pass, req.ConfirmPass); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Password updated"})
}
