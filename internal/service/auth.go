// Package service holds the account flows that span several stores and the
// mailer: sign-up, sign-in, verification and password reset.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cypu/rulebook-api/internal/apperror"
	mailer "github.com/cypu/rulebook-api/internal/mail"
	"github.com/cypu/rulebook-api/internal/model"
	"github.com/cypu/rulebook-api/internal/repository"
	"github.com/cypu/rulebook-api/internal/utils"
)

const resetTokenBytes = 32

// AuthConfig carries the secrets and lifetimes the flows need.
type AuthConfig struct {
	JWTSecret    string
	SessionTTL   time.Duration
	VerifyTTL    time.Duration
	MailTokenTTL time.Duration
	BcryptCost   int
	ClientURL    string
	MailFrom     string
}

type AuthService struct {
	users  repository.UserStore
	roles  repository.RoleStore
	tokens repository.MailTokenStore
	mail   mailer.Sender
	cfg    AuthConfig
	log    *zap.SugaredLogger
}

func NewAuthService(users repository.UserStore, roles repository.RoleStore, tokens repository.MailTokenStore,
	sender mailer.Sender, cfg AuthConfig, log *zap.SugaredLogger) *AuthService {
	return &AuthService{users: users, roles: roles, tokens: tokens, mail: sender, cfg: cfg, log: log}
}

// SignUpInput is a registration request.  Roles defaults to "user".
type SignUpInput struct {
	Mail     string
	Password string
	Name     string
	Roles    []string
}

// Session is the outcome of a successful sign-in.
type Session struct {
	User  *model.User
	Token utils.SignedToken
}

func validMail(addr string) bool {
	if addr == "" {
		return false
	}
	_, err := mail.ParseAddress(addr)
	return err == nil
}

// SignUp creates an unverified account and mails its verification link.  The
// account is kept when the mail cannot be sent; the error then carries
// sent "false" and the user can ask for another link.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (*model.User, error) {
	in.Mail = repository.NormalizeMail(in.Mail)
	if !validMail(in.Mail) {
		return nil, apperror.InvalidField("mail")
	}
	if in.Password == "" {
		return nil, apperror.InvalidField("password")
	}
	names := in.Roles
	if len(names) == 0 {
		names = []string{model.RoleUser}
	}
	roles, err := s.roles.GetByNames(ctx, names)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return nil, apperror.NotFound("Role")
		}
		return nil, apperror.ServerError(err)
	}
	roleIDs := make([]string, 0, len(roles))
	for _, r := range roles {
		roleIDs = append(roleIDs, r.ID)
	}

	hash, err := utils.HashPassword(in.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, apperror.ServerError(err)
	}
	u := &model.User{Mail: in.Mail, Name: strings.TrimSpace(in.Name), PasswordHash: hash}
	if err := s.users.Create(ctx, u, roleIDs); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Duplicate("mail")
		}
		return nil, apperror.ServerError(err)
	}

	if err := s.sendVerification(ctx, u); err != nil {
		return u, err
	}
	return u, nil
}

func (s *AuthService) sendVerification(ctx context.Context, u *model.User) error {
	tok, err := utils.NewToken(s.cfg.JWTSecret, u.ID, utils.PurposeVerify, s.cfg.VerifyTTL)
	if err != nil {
		return apperror.ServerError(err).WithSent("false")
	}
	msg, err := mailer.VerifyMessage(u.Mail, mailer.LinkData{
		Name:  u.Name,
		Link:  s.cfg.ClientURL + "/verify/" + tok.Token,
		Valid: humanDuration(s.cfg.VerifyTTL),
	})
	if err != nil {
		return apperror.ServerError(err).WithSent("false")
	}
	msg.From = s.cfg.MailFrom
	if err := s.mail.Send(ctx, msg); err != nil {
		s.log.Warnw("verification mail not sent", "user_id", u.ID, "error", err)
		return apperror.ServerError(err).WithSent("false")
	}
	return nil
}

// SignIn checks credentials and opens a session.
func (s *AuthService) SignIn(ctx context.Context, addr, password string) (*Session, error) {
	addr = repository.NormalizeMail(addr)
	if addr == "" {
		return nil, apperror.InvalidField("mail")
	}
	if password == "" {
		return nil, apperror.InvalidField("password")
	}
	u, err := s.users.GetByMail(ctx, addr)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("User")
		}
		return nil, apperror.ServerError(err)
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return nil, apperror.InvalidCredentials()
	}
	if !u.Verified {
		return nil, apperror.UserNotVerified()
	}
	tok, err := utils.NewToken(s.cfg.JWTSecret, u.ID, utils.PurposeSession, s.cfg.SessionTTL)
	if err != nil {
		return nil, apperror.ServerError(err)
	}
	return &Session{User: u, Token: tok}, nil
}

// Identify resolves a session token to its user.
func (s *AuthService) Identify(ctx context.Context, raw string) (*model.User, error) {
	if raw == "" {
		return nil, apperror.Unauthorized()
	}
	claims, err := utils.ParseToken(s.cfg.JWTSecret, raw, utils.PurposeSession)
	if err != nil {
		return nil, apperror.Unauthorized()
	}
	u, err := s.users.GetByID(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.Unauthorized()
		}
		return nil, apperror.ServerError(err)
	}
	return u, nil
}

// VerifyToken marks the account named by a verification token as verified.
func (s *AuthService) VerifyToken(ctx context.Context, raw string) (*model.User, error) {
	claims, err := utils.ParseToken(s.cfg.JWTSecret, raw, utils.PurposeVerify)
	if err != nil {
		return nil, apperror.NotFound("Token")
	}
	u, err := s.users.GetByID(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Token")
		}
		return nil, apperror.ServerError(err)
	}
	if u.Verified {
		return nil, apperror.AlreadyVerified()
	}
	if err := s.users.SetVerified(ctx, u.ID, true); err != nil {
		return nil, apperror.ServerError(err)
	}
	u.Verified = true
	return u, nil
}

// ResendVerification mails a fresh verification link to an unverified account.
func (s *AuthService) ResendVerification(ctx context.Context, addr string) error {
	u, err := s.users.GetByMail(ctx, repository.NormalizeMail(addr))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("User")
		}
		return apperror.ServerError(err)
	}
	if u.Verified {
		return apperror.AlreadyVerified()
	}
	return s.sendVerification(ctx, u)
}

// RequestPasswordReset replaces any pending reset token of the account and
// mails a link carrying the new one.
func (s *AuthService) RequestPasswordReset(ctx context.Context, addr string) error {
	u, err := s.users.GetByMail(ctx, repository.NormalizeMail(addr))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("User")
		}
		return apperror.ServerError(err)
	}
	if err := s.tokens.DeleteForUser(ctx, u.ID); err != nil {
		return apperror.ServerError(err)
	}
	raw, err := utils.RandomHex(resetTokenBytes)
	if err != nil {
		return apperror.ServerError(err)
	}
	now := time.Now().UTC()
	if err := s.tokens.Create(ctx, &model.MailToken{
		UserID:    u.ID,
		Token:     raw,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.MailTokenTTL),
	}); err != nil {
		return apperror.ServerError(err)
	}
	msg, err := mailer.ResetMessage(u.Mail, mailer.LinkData{
		Name:  u.Name,
		Link:  fmt.Sprintf("%s/reset/password/%s/%s", s.cfg.ClientURL, u.ID, raw),
		Valid: humanDuration(s.cfg.MailTokenTTL),
	})
	if err != nil {
		return apperror.ServerError(err).WithSent("false")
	}
	msg.From = s.cfg.MailFrom
	if err := s.mail.Send(ctx, msg); err != nil {
		s.log.Warnw("reset mail not sent", "user_id", u.ID, "error", err)
		return apperror.ServerError(err).WithSent("false")
	}
	return nil
}

// CheckResetToken reports whether a reset link is still usable without
// consuming it.
func (s *AuthService) CheckResetToken(ctx context.Context, userID, token string) error {
	if _, err := s.resetToken(ctx, userID, token); err != nil {
		return err
	}
	return nil
}

func (s *AuthService) resetToken(ctx context.Context, userID, token string) (*model.MailToken, error) {
	if userID == "" {
		return nil, apperror.InvalidField("userId")
	}
	if token == "" {
		return nil, apperror.InvalidField("token")
	}
	t, err := s.tokens.Get(ctx, userID, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Token")
		}
		return nil, apperror.ServerError(err)
	}
	return t, nil
}

// UpdatePassword sets a new password using a reset token.  The token is
// deleted before the password is written and only the request whose delete
// removed the row may proceed, so concurrent submissions of one link change
// the password at most once.
func (s *AuthService) UpdatePassword(ctx context.Context, userID, token, pass, confirmPass string) error {
	if pass == "" {
		return apperror.InvalidField("pass")
	}
	if pass != confirmPass {
		return apperror.PasswordMismatch()
	}
	t, err := s.resetToken(ctx, userID, token)
	if err != nil {
		return err
	}
	hash, err := utils.HashPassword(pass, s.cfg.BcryptCost)
	if err != nil {
		return apperror.ServerError(err)
	}
	if err := s.tokens.Delete(ctx, t.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("Token")
		}
		return apperror.ServerError(err)
	}
	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("User")
		}
		return apperror.ServerError(err)
	}
	return nil
}

// PurgeExpiredTokens drops reset tokens past their window.
func (s *AuthService) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	return s.tokens.DeleteExpired(ctx, time.Now().UTC())
}

func humanDuration(d time.Duration) string {
	switch {
	case d >= 48*time.Hour && d%(24*time.Hour) == 0:
		return fmt.Sprintf("%d days", int(d/(24*time.Hour)))
	case d >= 2*time.Hour && d%time.Hour == 0:
		return fmt.Sprintf("%d hours", int(d/time.Hour))
	case d == time.Hour:
		return "1 hour"
	}
	return d.String()
}
