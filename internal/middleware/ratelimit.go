package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cypu/rulebook-api/internal/apperror"
	"github.com/cypu/rulebook-api/internal/config"
)

// maxPeekBytes bounds how much of an auth body the limiter reads to find the
// mail.
const maxPeekBytes = 4 << 10

// NewAttemptLimiter caps auth attempts per window.  Each request is charged to
// its client address and, when the JSON body names a mail, to that mail as
// well, so one account cannot be guessed at from many addresses.  Redis
// failures let the request through.
func NewAttemptLimiter(cfg config.RateLimitConfig, rdb *redis.Client, log *zap.SugaredLogger) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			count, wait, err := countAttempt(c.Request().Context(), rdb, attemptKeys(cfg.Prefix, c), cfg.Window)
			if err != nil {
				log.Warnw("attempt limiter unavailable", "route", c.Path(), "error", err)
				return next(c)
			}

			remaining := int64(cfg.Attempts) - count
			if remaining < 0 {
				remaining = 0
			}
			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(cfg.Attempts))
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(cfg.Attempts) {
				h.Set("Retry-After", strconv.Itoa(retrySeconds(wait)))
				log.Infow("auth attempts exhausted", "route", c.Path(), "ip", c.RealIP())
				return apperror.TooManyRequests()
			}
			return next(c)
		}
	}
}

// countAttempt records one attempt under every key and returns the highest
// count among them with the time left in that key's window.
func countAttempt(ctx context.Context, rdb redis.Cmdable, keys []string, window time.Duration) (int64, time.Duration, error) {
	incrs := make([]*redis.IntCmd, len(keys))
	ttls := make([]*redis.DurationCmd, len(keys))
	_, err := rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		for i, k := range keys {
			p.SetNX(ctx, k, 0, window)
			incrs[i] = p.Incr(ctx, k)
			ttls[i] = p.PTTL(ctx, k)
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	var (
		count int64
		wait  time.Duration
	)
	for i := range keys {
		if n := incrs[i].Val(); n > count {
			count = n
			wait = ttls[i].Val()
		}
	}
	return count, wait, nil
}

func retrySeconds(wait time.Duration) int {
	secs := int((wait + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}

// attemptKeys names the counters a request is charged to.  Mails are
// lower-cased so case variants share a counter.
func attemptKeys(prefix string, c echo.Context) []string {
	route := prefix + ":" + c.Request().Method + " " + c.Path()
	ip := c.RealIP()
	if ip == "" {
		ip = "unknown"
	}
	keys := []string{route + ":ip:" + ip}
	if mail := peekMail(c.Request()); mail != "" {
		keys = append(keys, route+":mail:"+mail)
	}
	return keys
}

type peekedBody struct {
	io.Reader
	io.Closer
}

// peekMail reads the mail field of a JSON body and puts the bytes back in
// front of the unread rest, so the handler still binds the whole body.
func peekMail(r *http.Request) string {
	if r.Body == nil || r.Body == http.NoBody ||
		!strings.HasPrefix(r.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return ""
	}
	head, err := io.ReadAll(io.LimitReader(r.Body, maxPeekBytes))
	r.Body = peekedBody{Reader: io.MultiReader(bytes.NewReader(head), r.Body), Closer: r.Body}
	if err != nil {
		return ""
	}

	var body struct {
		Mail string `json:"mail"`
	}
	if json.Unmarshal(head, &body) != nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(body.Mail))
}
