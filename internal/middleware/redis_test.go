package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cypu/rulebook-api/internal/config"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("skipping redis tests, could not construct pool: %s", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("skipping redis tests, could not connect to docker: %s", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(cfg *docker.HostConfig) {
		cfg.AutoRemove = true
		cfg.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })

	rdb := redis.NewClient(&redis.Options{Addr: "localhost:" + resource.GetPort("6379/tcp")})
	t.Cleanup(func() { _ = rdb.Close() })
	pool.MaxWait = time.Minute
	require.NoError(t, pool.Retry(func() error { return rdb.Ping(context.Background()).Err() }))
	return rdb
}

func signIn(e *echo.Echo, ip, mail string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/signinuser",
		strings.NewReader(`{"mail":"`+mail+`","password":"nope"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRedisMiddlewares(t *testing.T) {
	rdb := startRedis(t)
	log := zap.NewNop().Sugar()

	t.Run("limiter counts one mail across addresses", func(t *testing.T) {
		e := newEcho()
		var seen []string
		e.POST("/auth/signinuser", func(c echo.Context) error {
			var body struct {
				Mail string `json:"mail"`
			}
			if err := c.Bind(&body); err != nil {
				return err
			}
			seen = append(seen, body.Mail)
			return c.NoContent(http.StatusOK)
		}, NewAttemptLimiter(config.RateLimitConfig{Enabled: true, Attempts: 2, Window: time.Minute, Prefix: "t1"}, rdb, log))

		assert.Equal(t, http.StatusOK, signIn(e, "10.0.0.1", "ann@x.io").Code)
		rec := signIn(e, "10.0.0.2", "ANN@x.io")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

		rec = signIn(e, "10.0.0.3", "ann@x.io")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "CYPU-401", decode(t, rec).Code)
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))

		assert.Equal(t, http.StatusOK, signIn(e, "10.0.0.3", "bob@x.io").Code)
		assert.Equal(t, []string{"ann@x.io", "ANN@x.io", "bob@x.io"}, seen)
	})

	t.Run("reads are cached until a write purges them", func(t *testing.T) {
		cfg := config.CacheConfig{Enabled: true, TTL: time.Minute, Prefix: "t2", MaxBodyBytes: 1 << 10}
		e := newEcho()
		calls := 0
		e.GET("/rulebooks", func(c echo.Context) error {
			calls++
			return c.JSON(http.StatusOK, map[string]int{"calls": calls})
		}, NewReadCache(cfg, rdb))
		e.POST("/rulebooks/create", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		}, PurgeOnWrite(cfg, rdb, log))

		rec := do(e, http.MethodGet, "/rulebooks", "")
		assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
		rec = do(e, http.MethodGet, "/rulebooks", "")
		assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
		assert.JSONEq(t, `{"calls":1}`, rec.Body.String())
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)

		assert.Equal(t, http.StatusOK, do(e, http.MethodPost, "/rulebooks/create", "").Code)

		rec = do(e, http.MethodGet, "/rulebooks", "")
		assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
		assert.JSONEq(t, `{"calls":2}`, rec.Body.String())
	})
}
