package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	sessionName     = "cypu_session"
	sessionTokenKey = "token"
)

// SessionStore carries the session token in a signed, http-only cookie.
type SessionStore struct {
	store *sessions.CookieStore
}

// NewSessionStore signs cookies with secret.  Cookies live for ttl and are
// marked Secure when secure is set.
func NewSessionStore(secret string, ttl time.Duration, secure bool) *SessionStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionStore{store: store}
}

// Token returns the session token stored in the request cookie, if any.  A
// cookie that fails signature checks reads as empty.
func (s *SessionStore) Token(c echo.Context) string {
	sess, err := s.store.Get(c.Request(), sessionName)
	if err != nil {
		return ""
	}
	tok, _ := sess.Values[sessionTokenKey].(string)
	return tok
}

// Save writes token into the session cookie.
func (s *SessionStore) Save(c echo.Context, token string) error {
	sess, _ := s.store.Get(c.Request(), sessionName)
	sess.Values[sessionTokenKey] = token
	return sess.Save(c.Request(), c.Response())
}

// Clear expires the session cookie.
func (s *SessionStore) Clear(c echo.Context) error {
	sess, _ := s.store.Get(c.Request(), sessionName)
	delete(sess.Values, sessionTokenKey)
	sess.Options.MaxAge = -1
	return sess.Save(c.Request(), c.Response())
}
