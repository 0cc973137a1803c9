package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cypu/rulebook-api/internal/config"
)

// cachedRead is a stored catalogue response.  Only 200s are stored, so the
// status is implied.
type cachedRead struct {
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// bodyRecorder copies what the handler writes, giving up once the copy would
// pass limit.
type bodyRecorder struct {
	http.ResponseWriter
	buf      bytes.Buffer
	limit    int
	overflow bool
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	if !r.overflow {
		if r.limit > 0 && r.buf.Len()+len(b) > r.limit {
			r.overflow = true
			r.buf.Reset()
		} else {
			r.buf.Write(b)
		}
	}
	return r.ResponseWriter.Write(b)
}

// readKey identifies a catalogue read by path and sorted query, so ?a=1&b=2
// and ?b=2&a=1 share an entry.
func readKey(prefix string, r *http.Request) string {
	sum := sha1.Sum([]byte(r.URL.Path + "?" + r.URL.Query().Encode()))
	return prefix + ":" + hex.EncodeToString(sum[:])
}

// NewReadCache serves public catalogue reads from Redis.  Entries live for
// the configured TTL or until PurgeOnWrite drops them.
func NewReadCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method != http.MethodGet {
				return next(c)
			}
			ctx := req.Context()
			key := readKey(cfg.Prefix, req)

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var hit cachedRead
				if json.Unmarshal(raw, &hit) == nil {
					c.Response().Header().Set("X-Cache", "HIT")
					return c.Blob(http.StatusOK, hit.ContentType, hit.Body)
				}
			}

			rec := &bodyRecorder{ResponseWriter: c.Response().Writer, limit: cfg.MaxBodyBytes}
			c.Response().Writer = rec
			c.Response().Header().Set("X-Cache", "MISS")
			if err := next(c); err != nil {
				return err
			}

			if c.Response().Status != http.StatusOK || rec.overflow {
				return nil
			}
			raw, err := json.Marshal(cachedRead{
				ContentType: c.Response().Header().Get(echo.HeaderContentType),
				Body:        rec.buf.Bytes(),
			})
			if err == nil {
				_ = rdb.Set(ctx, key, raw, cfg.TTL).Err()
			}
			return nil
		}
	}
}

// PurgeOnWrite drops every cached catalogue read after a successful write, so
// reads never outlive the content they show.
func PurgeOnWrite(cfg config.CacheConfig, rdb *redis.Client, log *zap.SugaredLogger) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := next(c); err != nil {
				return err
			}
			if status := c.Response().Status; status < 200 || status >= 300 {
				return nil
			}
			n, err := purgeReads(c.Request().Context(), rdb, cfg.Prefix)
			if err != nil {
				log.Warnw("catalogue cache purge failed", "error", err)
				return nil
			}
			log.Debugw("catalogue cache purged", "keys", n)
			return nil
		}
	}
}

func purgeReads(ctx context.Context, rdb redis.Cmdable, prefix string) (int, error) {
	var keys []string
	iter := rdb.Scan(ctx, 0, prefix+":*", 200).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}
	return len(keys), rdb.Unlink(ctx, keys...).Err()
}
