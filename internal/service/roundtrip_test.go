package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cypu/rulebook-api/internal/apperror"
	mailer "github.com/cypu/rulebook-api/internal/mail"
	"github.com/cypu/rulebook-api/internal/model"
	"github.com/cypu/rulebook-api/internal/repository"
	"github.com/cypu/rulebook-api/internal/utils"
)

// memUsers is an in-memory UserStore for end-to-end flows.
type memUsers struct {
	mu    sync.Mutex
	byID  map[string]*model.User
	roles map[string]model.Role
}

func (s *memUsers) Create(_ context.Context, u *model.User, roleIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.byID {
		if existing.Mail == u.Mail {
			return repository.ErrDuplicate
		}
	}
	u.ID = uuid.NewString()
	for _, id := range roleIDs {
		u.Roles = append(u.Roles, s.roles[id])
	}
	cp := *u
	s.byID[u.ID] = &cp
	return nil
}

func (s *memUsers) GetByID(_ context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memUsers) GetByMail(_ context.Context, mail string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.byID {
		if u.Mail == mail {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memUsers) List(context.Context) ([]*model.User, error) { return nil, nil }

func (s *memUsers) UpdateProfile(context.Context, *model.User) error { return nil }

func (s *memUsers) SetRoles(context.Context, string, []string) error { return nil }

func (s *memUsers) Delete(context.Context, string) error { return nil }

func (s *memUsers) UpdatePassword(_ context.Context, id, hash string) error {
	return s.update(id, func(u *model.User) { u.PasswordHash = hash })
}

func (s *memUsers) SetVerified(_ context.Context, id string, v bool) error {
	return s.update(id, func(u *model.User) { u.Verified = v })
}

func (s *memUsers) update(id string, fn func(*model.User)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	fn(u)
	return nil
}

type memRoles struct{ byName map[string]model.Role }

func (s memRoles) List(context.Context) ([]model.Role, error) { return nil, nil }

func (s memRoles) GetByName(_ context.Context, name string) (*model.Role, error) {
	r, ok := s.byName[name]
	if !ok {
		return nil, repository.ErrRoleNotFound
	}
	return &r, nil
}

func (s memRoles) GetByNames(ctx context.Context, names []string) ([]model.Role, error) {
	var out []model.Role
	for _, n := range names {
		r, err := s.GetByName(ctx, n)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, nil
}

type memTokens struct {
	mu     sync.Mutex
	tokens map[string]*model.MailToken
}

func (s *memTokens) Create(_ context.Context, t *model.MailToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = uuid.NewString()
	s.tokens[t.ID] = t
	return nil
}

func (s *memTokens) Get(_ context.Context, userID, token string) (*model.MailToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tokens {
		if t.UserID == userID && t.Token == token && !t.Expired(time.Now()) {
			return t, nil
		}
	}
	return nil, repository.ErrTokenNotFound
}

func (s *memTokens) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tokens[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.tokens, id)
	return nil
}

func (s *memTokens) DeleteForUser(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.tokens {
		if t.UserID == userID {
			delete(s.tokens, id)
		}
	}
	return nil
}

func (s *memTokens) DeleteExpired(context.Context, time.Time) (int64, error) { return 0, nil }

// outbox records mails instead of sending them.
type outbox struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (o *outbox) Send(_ context.Context, msg mailer.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, msg)
	return nil
}

func (o *outbox) last() mailer.Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.sent[len(o.sent)-1]
}

func newMemService() (*AuthService, *outbox) {
	roles := map[string]model.Role{
		model.RoleUser:  {ID: "r1", Name: model.RoleUser},
		model.RoleAdmin: {ID: "r2", Name: model.RoleAdmin},
	}
	byID := map[string]model.Role{"r1": roles[model.RoleUser], "r2": roles[model.RoleAdmin]}
	box := &outbox{}
	svc := NewAuthService(
		&memUsers{byID: map[string]*model.User{}, roles: byID},
		memRoles{byName: roles},
		&memTokens{tokens: map[string]*model.MailToken{}},
		box, testConfig, zap.NewNop().Sugar())
	return svc, box
}

// linkTail returns what follows prefix in the text body of a mail.
func linkTail(t *testing.T, text, prefix string) string {
	t.Helper()
	i := strings.Index(text, prefix)
	require.GreaterOrEqual(t, i, 0, "no %q in %q", prefix, text)
	rest := text[i+len(prefix):]
	if j := strings.IndexByte(rest, ' '); j >= 0 {
		rest = rest[:j]
	}
	return rest
}

func TestAuthRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, box := newMemService()

	u, err := svc.SignUp(ctx, SignUpInput{Mail: "m@example.com", Password: "P"})
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, "m@example.com", "P")
	assert.True(t, apperror.Is(err, apperror.KindUserNotVerified))

	token := linkTail(t, box.last().Text, "https://ui.example/verify/")
	_, err = svc.VerifyToken(ctx, token)
	require.NoError(t, err)

	_, err = svc.VerifyToken(ctx, token)
	assert.True(t, apperror.Is(err, apperror.KindAlreadyVerified))

	_, err = svc.SignIn(ctx, "m@example.com", "wrong")
	assert.True(t, apperror.Is(err, apperror.KindInvalidCredentials))

	sess, err := svc.SignIn(ctx, "m@example.com", "P")
	require.NoError(t, err)
	claims, err := utils.ParseToken(testSecret, sess.Token.Token, utils.PurposeSession)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID())
	assert.Equal(t, []string{model.RoleUser}, sess.User.RoleNames())
}

func TestPasswordResetRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, box := newMemService()

	u, err := svc.SignUp(ctx, SignUpInput{Mail: "m@example.com", Password: "old"})
	require.NoError(t, err)
	_, err = svc.VerifyToken(ctx, linkTail(t, box.last().Text, "/verify/"))
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(ctx, "m@example.com"))
	token := linkTail(t, box.last().Text, "/reset/password/"+u.ID+"/")

	require.NoError(t, svc.CheckResetToken(ctx, u.ID, token))
	require.NoError(t, svc.UpdatePassword(ctx, u.ID, token, "new", "new"))

	err = svc.UpdatePassword(ctx, u.ID, token, "again", "again")
	assert.True(t, apperror.Is(err, apperror.KindNotFound), "token is single use")

	_, err = svc.SignIn(ctx, "m@example.com", "old")
	assert.True(t, apperror.Is(err, apperror.KindInvalidCredentials))
	_, err = svc.SignIn(ctx, "m@example.com", "new")
	assert.NoError(t, err)
}

func TestPasswordReset_ConcurrentSubmitsChangeOnce(t *testing.T) {
	ctx := context.Background()
	svc, box := newMemService()

	u, err := svc.SignUp(ctx, SignUpInput{Mail: "race@example.com", Password: "old"})
	require.NoError(t, err)
	require.NoError(t, svc.RequestPasswordReset(ctx, "race@example.com"))
	token := linkTail(t, box.last().Text, "/reset/password/"+u.ID+"/")

	const n = 8
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.UpdatePassword(ctx, u.ID, token, "new", "new")
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.True(t, apperror.Is(err, apperror.KindNotFound), err)
	}
	assert.Equal(t, 1, ok)
}
