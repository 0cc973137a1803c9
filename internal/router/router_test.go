package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cypu/rulebook-api/internal/apperror"
	"github.com/cypu/rulebook-api/internal/handler"
	"github.com/cypu/rulebook-api/internal/middleware"
	"github.com/cypu/rulebook-api/internal/model"
	"github.com/cypu/rulebook-api/internal/repository"
	"github.com/cypu/rulebook-api/internal/rights"
)

var (
	player = &model.User{ID: "u1", Roles: []model.Role{{Name: model.RoleUser}}}
	admin  = &model.User{ID: "a1", Roles: []model.Role{{Name: model.RoleUser}, {Name: model.RoleAdmin}}}
)

// newEcho mimics Authenticate: the caller is picked from the X-Test-User
// header.
func newEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler(zap.NewNop().Sugar())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch c.Request().Header.Get("X-Test-User") {
			case "player":
				c.Set(middleware.ContextUser, player)
			case "admin":
				c.Set(middleware.ContextUser, admin)
			}
			return next(c)
		}
	})
	return e
}

func do(e *echo.Echo, method, target, who string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader("{}"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if who != "" {
		req.Header.Set("X-Test-User", who)
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func code(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var r apperror.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r), rec.Body.String())
	return r.Code
}

func contentHandlers(base handler.Base, books repository.RuleBookStore) ContentHandlers {
	return ContentHandlers{
		RuleBooks:     handler.NewRuleBookHandler(base, books),
		Chapters:      handler.NewChapterHandler(base, nil),
		Pages:         handler.NewPageHandler(base, nil),
		Notions:       handler.NewNotionHandler(base, nil),
		Nodes:         handler.NewNodeHandler(base, nil),
		ItemModifiers: handler.NewItemModifierHandler(base, nil),
		Rarities:      handler.NewNamedTypeHandler(base, nil, "Rarity", "rarityId"),
		PageTypes:     handler.NewNamedTypeHandler(base, nil, "PageType", "pageTypeId"),
		RuleBookTypes: handler.NewNamedTypeHandler(base, nil, "RuleBookType", "ruleBookTypeId"),
		ChapterTypes:  handler.NewNamedTypeHandler(base, nil, "ChapterType", "chapterTypeId"),
	}
}

func TestRegisterContent_Guards(t *testing.T) {
	ctrl := gomock.NewController(t)
	books := repository.NewMockRuleBookStore(ctrl)
	base := handler.NewBase(time.Second, nil, nil)

	e := newEcho()
	RegisterContent(e, contentHandlers(base, books), Middlewares{})

	books.EXPECT().List(gomock.Any()).Return([]*model.RuleBook{}, nil).Times(2)
	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/rulebooks", "").Code)
	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/rulebooks/", "player").Code)

	rec := do(e, http.MethodPost, "/rulebooks/create", "")
	assert.Equal(t, "CYPU-201", code(t, rec))

	for _, path := range []string{"/chapters/update-order", "/pages/update-order", "/rarities/delete", "/nodes/update"} {
		rec = do(e, http.MethodPost, path, "player")
		assert.Equal(t, http.StatusForbidden, rec.Code, path)
		assert.Equal(t, "CYPU-002", code(t, rec), path)
	}

	rec = do(e, http.MethodPost, "/rulebooks/create", "admin")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterPlayer_NeedsLogin(t *testing.T) {
	base := handler.NewBase(time.Second, nil, nil)
	e := newEcho()
	RegisterPlayer(e, nil, handler.NewCampaignHandler(base, nil), handler.NewCharacterHandler(base, nil, nil))

	for _, path := range []string{"/campaigns/join", "/characters/addnode", "/characters/removenode", "/campaigns/create"} {
		assert.Equal(t, "CYPU-201", code(t, do(e, http.MethodPost, path, "")), path)
	}
	assert.Equal(t, http.StatusUnauthorized, do(e, http.MethodGet, "/characters/", "").Code)
}

func TestRegisterPlayer_ListPagesForBrowsers(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("ui"), 0o644))
	table, err := rights.NewTable(rights.DefaultEntries())
	require.NoError(t, err)

	base := handler.NewBase(time.Second, nil, nil)
	e := newEcho()
	page := RegisterPages(e, handler.NewStaticHandler(dir), table)
	RegisterPlayer(e, page, handler.NewCampaignHandler(base, nil), handler.NewCharacterHandler(base, nil, nil))

	for _, path := range []string{"/campaigns", "/characters"} {
		rec := do(e, http.MethodGet, path, "", echo.HeaderAccept, "text/html")
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation), path)

		rec = do(e, http.MethodGet, path, "player", echo.HeaderAccept, "text/html")
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "ui", rec.Body.String(), path)

		rec = do(e, http.MethodGet, path, "", echo.HeaderAccept, echo.MIMEApplicationJSON)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Equal(t, "CYPU-201", code(t, rec), path)
	}
}

func TestRegisterUsers_AdminOnly(t *testing.T) {
	base := handler.NewBase(time.Second, nil, nil)
	e := newEcho()
	RegisterUsers(e, handler.NewUserHandler(base, nil, nil))

	assert.Equal(t, "CYPU-002", code(t, do(e, http.MethodGet, "/users", "player")))
	assert.Equal(t, "CYPU-002", code(t, do(e, http.MethodGet, "/roles/", "player")))
	assert.Equal(t, "CYPU-201", code(t, do(e, http.MethodPost, "/users/update", "")))
}

func TestPagesAndMailedLinks(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("ui"), 0o644))
	table, err := rights.NewTable(rights.DefaultEntries())
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	flows := handler.NewMockAuthFlows(ctrl)
	base := handler.NewBase(time.Second, nil, nil)

	e := newEcho()
	page := RegisterPages(e, handler.NewStaticHandler(dir), table)
	RegisterAuth(e, handler.NewAuthHandler(base, flows, nil), page, Middlewares{})

	rec := do(e, http.MethodGet, "/dashboard", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

	rec = do(e, http.MethodGet, "/login", "player")
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	rec = do(e, http.MethodGet, "/admin/users", "admin")
	assert.Equal(t, "ui", rec.Body.String())

	rec = do(e, http.MethodGet, "/verify/tok", "", echo.HeaderAccept, "text/html,application/xhtml+xml")
	assert.Equal(t, "ui", rec.Body.String())

	flows.EXPECT().VerifyToken(gomock.Any(), "tok").Return(&model.User{ID: "u9", Verified: true}, nil)
	rec = do(e, http.MethodGet, "/verify/tok", "", echo.HeaderAccept, echo.MIMEApplicationJSON)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"u9"`)

	rec = do(e, http.MethodGet, "/reset/password/u1/tok", "player", echo.HeaderAccept, "text/html")
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestHtmlOr_NilPage(t *testing.T) {
	called := false
	h := htmlOr(nil, func(echo.Context) error { called = true; return nil })

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAccept, "text/html")
	require.NoError(t, h(e.NewContext(req, httptest.NewRecorder())))
	assert.True(t, called)
}
