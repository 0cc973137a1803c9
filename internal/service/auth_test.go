package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cypu/rulebook-api/internal/apperror"
	mailer "github.com/cypu/rulebook-api/internal/mail"
	"github.com/cypu/rulebook-api/internal/model"
	"github.com/cypu/rulebook-api/internal/repository"
	"github.com/cypu/rulebook-api/internal/utils"
)

const testSecret = "test-secret"

var testConfig = AuthConfig{
	JWTSecret:    testSecret,
	SessionTTL:   24 * time.Hour,
	VerifyTTL:    7 * 24 * time.Hour,
	MailTokenTTL: time.Hour,
	BcryptCost:   4,
	ClientURL:    "https://ui.example",
	MailFrom:     "noreply@example",
}

type mocks struct {
	users  *repository.MockUserStore
	roles  *repository.MockRoleStore
	tokens *repository.MockMailTokenStore
	mail   *mailer.MockSender
}

func newTestService(t *testing.T) (*AuthService, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		users:  repository.NewMockUserStore(ctrl),
		roles:  repository.NewMockRoleStore(ctrl),
		tokens: repository.NewMockMailTokenStore(ctrl),
		mail:   mailer.NewMockSender(ctrl),
	}
	return NewAuthService(m.users, m.roles, m.tokens, m.mail, testConfig, zap.NewNop().Sugar()), m
}

func hashed(t *testing.T, plain string) string {
	t.Helper()
	h, err := utils.HashPassword(plain, 4)
	require.NoError(t, err)
	return h
}

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()
	userRole := model.Role{ID: "r-user", Name: model.RoleUser}

	t.Run("defaults to user role and mails link", func(t *testing.T) {
		svc, m := newTestService(t)
		m.roles.EXPECT().GetByNames(ctx, []string{model.RoleUser}).Return([]model.Role{userRole}, nil)
		m.users.EXPECT().Create(ctx, gomock.Any(), []string{"r-user"}).DoAndReturn(
			func(_ context.Context, u *model.User, _ []string) error {
				u.ID = "u1"
				return nil
			})
		m.mail.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msg mailer.Message) error {
			assert.Equal(t, "ann@example.com", msg.To)
			assert.Equal(t, "noreply@example", msg.From)
			assert.Contains(t, msg.HTML, "https://ui.example/verify/")
			return nil
		})

		u, err := svc.SignUp(ctx, SignUpInput{Mail: "Ann@Example.com", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, "ann@example.com", u.Mail)
		assert.True(t, utils.VerifyPassword(u.PasswordHash, "pw"))
	})

	t.Run("unknown role", func(t *testing.T) {
		svc, m := newTestService(t)
		m.roles.EXPECT().GetByNames(ctx, []string{"wizard"}).Return(nil, repository.ErrRoleNotFound)

		_, err := svc.SignUp(ctx, SignUpInput{Mail: "a@b.c", Password: "pw", Roles: []string{"wizard"}})
		require.True(t, apperror.Is(err, apperror.KindNotFound))
		assert.Equal(t, "Role not found", err.Error())
	})

	t.Run("duplicate mail", func(t *testing.T) {
		svc, m := newTestService(t)
		m.roles.EXPECT().GetByNames(ctx, gomock.Any()).Return([]model.Role{userRole}, nil)
		m.users.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(repository.ErrDuplicate)

		_, err := svc.SignUp(ctx, SignUpInput{Mail: "a@b.c", Password: "pw"})
		assert.True(t, apperror.Is(err, apperror.KindDuplicate))
	})

	t.Run("mail failure reports sent false", func(t *testing.T) {
		svc, m := newTestService(t)
		m.roles.EXPECT().GetByNames(ctx, gomock.Any()).Return([]model.Role{userRole}, nil)
		m.users.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
		m.mail.EXPECT().Send(ctx, gomock.Any()).Return(errors.New("broker down"))

		_, err := svc.SignUp(ctx, SignUpInput{Mail: "a@b.c", Password: "pw"})
		ae := apperror.From(err)
		assert.Equal(t, apperror.KindServer, ae.Kind)
		assert.Equal(t, "false", ae.Response().Sent)
	})

	t.Run("invalid fields", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.SignUp(ctx, SignUpInput{Mail: "not-a-mail", Password: "pw"})
		assert.Equal(t, "mail", apperror.From(err).Field)
		_, err = svc.SignUp(ctx, SignUpInput{Mail: "a@b.c"})
		assert.Equal(t, "password", apperror.From(err).Field)
	})
}

func TestAuthService_SignIn(t *testing.T) {
	ctx := context.Background()
	verified := &model.User{ID: "u1", Mail: "a@b.c", PasswordHash: hashed(t, "pw"), Verified: true}
	unverified := &model.User{ID: "u2", Mail: "new@b.c", PasswordHash: hashed(t, "pw")}

	tests := []struct {
		name     string
		mail     string
		password string
		user     *model.User
		lookup   error
		wantKind apperror.Kind
		wantOK   bool
	}{
		{name: "success", mail: "a@b.c", password: "pw", user: verified, wantOK: true},
		{name: "unknown user", mail: "x@b.c", password: "pw", lookup: repository.ErrNotFound, wantKind: apperror.KindNotFound},
		{name: "wrong password", mail: "a@b.c", password: "nope", user: verified, wantKind: apperror.KindInvalidCredentials},
		{name: "not verified", mail: "new@b.c", password: "pw", user: unverified, wantKind: apperror.KindUserNotVerified},
		{name: "store failure", mail: "a@b.c", password: "pw", lookup: errors.New("db down"), wantKind: apperror.KindServer},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newTestService(t)
			m.users.EXPECT().GetByMail(ctx, tc.mail).Return(tc.user, tc.lookup)

			sess, err := svc.SignIn(ctx, tc.mail, tc.password)
			if !tc.wantOK {
				assert.True(t, apperror.Is(err, tc.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			claims, err := utils.ParseToken(testSecret, sess.Token.Token, utils.PurposeSession)
			require.NoError(t, err)
			assert.Equal(t, tc.user.ID, claims.UserID())
		})
	}
}

func TestAuthService_VerifyToken(t *testing.T) {
	ctx := context.Background()

	t.Run("flips flag", func(t *testing.T) {
		svc, m := newTestService(t)
		tok, err := utils.NewToken(testSecret, "u1", utils.PurposeVerify, time.Hour)
		require.NoError(t, err)
		m.users.EXPECT().GetByID(ctx, "u1").Return(&model.User{ID: "u1"}, nil)
		m.users.EXPECT().SetVerified(ctx, "u1", true).Return(nil)

		u, err := svc.VerifyToken(ctx, tok.Token)
		require.NoError(t, err)
		assert.True(t, u.Verified)
	})

	t.Run("already verified", func(t *testing.T) {
		svc, m := newTestService(t)
		tok, err := utils.NewToken(testSecret, "u1", utils.PurposeVerify, time.Hour)
		require.NoError(t, err)
		m.users.EXPECT().GetByID(ctx, "u1").Return(&model.User{ID: "u1", Verified: true}, nil)

		_, err = svc.VerifyToken(ctx, tok.Token)
		ae := apperror.From(err)
		assert.Equal(t, apperror.KindAlreadyVerified, ae.Kind)
		assert.Equal(t, 405, ae.Status())
	})

	t.Run("session token is not a verify token", func(t *testing.T) {
		svc, _ := newTestService(t)
		tok, err := utils.NewToken(testSecret, "u1", utils.PurposeSession, time.Hour)
		require.NoError(t, err)

		_, err = svc.VerifyToken(ctx, tok.Token)
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
	})

	t.Run("garbage", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.VerifyToken(ctx, "garbage")
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
	})
}

func TestAuthService_Identify(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t)

	_, err := svc.Identify(ctx, "")
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))

	verify, err := utils.NewToken(testSecret, "u1", utils.PurposeVerify, time.Hour)
	require.NoError(t, err)
	_, err = svc.Identify(ctx, verify.Token)
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))

	session, err := utils.NewToken(testSecret, "u1", utils.PurposeSession, time.Hour)
	require.NoError(t, err)
	m.users.EXPECT().GetByID(ctx, "u1").Return(&model.User{ID: "u1"}, nil)
	u, err := svc.Identify(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
}

func TestAuthService_PasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("request mails link", func(t *testing.T) {
		svc, m := newTestService(t)
		m.users.EXPECT().GetByMail(ctx, "a@b.c").Return(&model.User{ID: "u1", Mail: "a@b.c"}, nil)
		m.tokens.EXPECT().DeleteForUser(ctx, "u1").Return(nil)
		var stored *model.MailToken
		m.tokens.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tok *model.MailToken) error {
			stored = tok
			return nil
		})
		m.mail.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msg mailer.Message) error {
			assert.Contains(t, msg.HTML, "https://ui.example/reset/password/u1/"+stored.Token)
			return nil
		})

		require.NoError(t, svc.RequestPasswordReset(ctx, "A@b.c"))
		assert.Len(t, stored.Token, 2*resetTokenBytes)
		assert.WithinDuration(t, time.Now().Add(time.Hour), stored.ExpiresAt, time.Minute)
	})

	t.Run("mismatch", func(t *testing.T) {
		svc, _ := newTestService(t)
		err := svc.UpdatePassword(ctx, "u1", "tok", "a", "b")
		ae := apperror.From(err)
		assert.Equal(t, apperror.KindPasswordMismatch, ae.Kind)
		assert.Equal(t, "CYPU-103", ae.Code())
	})

	t.Run("unknown token", func(t *testing.T) {
		svc, m := newTestService(t)
		m.tokens.EXPECT().Get(ctx, "u1", "tok").Return(nil, repository.ErrTokenNotFound)

		err := svc.UpdatePassword(ctx, "u1", "tok", "new", "new")
		assert.Equal(t, "Token not found", apperror.From(err).Message)
	})

	t.Run("consumes token before writing", func(t *testing.T) {
		svc, m := newTestService(t)
		gomock.InOrder(
			m.tokens.EXPECT().Get(ctx, "u1", "tok").Return(&model.MailToken{ID: "t1", UserID: "u1"}, nil),
			m.tokens.EXPECT().Delete(ctx, "t1").Return(nil),
			m.users.EXPECT().UpdatePassword(ctx, "u1", gomock.Any()).DoAndReturn(func(_ context.Context, _, hash string) error {
				assert.True(t, utils.VerifyPassword(hash, "new"))
				return nil
			}),
		)

		require.NoError(t, svc.UpdatePassword(ctx, "u1", "tok", "new", "new"))
	})

	t.Run("token consumed by a concurrent request", func(t *testing.T) {
		svc, m := newTestService(t)
		m.tokens.EXPECT().Get(ctx, "u1", "tok").Return(&model.MailToken{ID: "t1", UserID: "u1"}, nil)
		m.tokens.EXPECT().Delete(ctx, "t1").Return(repository.ErrNotFound)

		err := svc.UpdatePassword(ctx, "u1", "tok", "new", "new")
		ae := apperror.From(err)
		assert.Equal(t, apperror.KindNotFound, ae.Kind)
		assert.Equal(t, "Token not found", ae.Message)
	})

	t.Run("check does not consume", func(t *testing.T) {
		svc, m := newTestService(t)
		m.tokens.EXPECT().Get(ctx, "u1", "tok").Return(&model.MailToken{ID: "t1"}, nil)
		assert.NoError(t, svc.CheckResetToken(ctx, "u1", "tok"))
	})
}

func TestAuthService_ResendVerification(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t)

	m.users.EXPECT().GetByMail(ctx, "a@b.c").Return(&model.User{ID: "u1", Verified: true}, nil)
	assert.True(t, apperror.Is(svc.ResendVerification(ctx, "a@b.c"), apperror.KindAlreadyVerified))

	m.users.EXPECT().GetByMail(ctx, "n@b.c").Return(nil, repository.ErrNotFound)
	assert.True(t, apperror.Is(svc.ResendVerification(ctx, "n@b.c"), apperror.KindNotFound))
}

func TestHumanDuration(t *testing.T) {
	assert.Equal(t, "7 days", humanDuration(7*24*time.Hour))
	assert.Equal(t, "24 hours", humanDuration(24*time.Hour))
	assert.Equal(t, "1 hour", humanDuration(time.Hour))
	assert.True(t, strings.HasSuffix(humanDuration(90*time.Second), "s"))
}
