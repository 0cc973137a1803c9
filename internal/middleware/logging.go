package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestLogger tags every request with an X-Request-ID and logs one line
// when it completes.
func RequestLogger(log *zap.SugaredLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, id)

			err := next(c)
			if err != nil {
				// Let the error handler write the response so the logged
				// status is the one the client sees.
				c.Error(err)
			}

			status := c.Response().Status
			fields := []any{
				"request_id", id,
				"method", c.Request().Method,
				"route", c.Path(),
				"path", c.Request().URL.Path,
				"status", status,
				"latency", time.Since(start),
			}
			if uid := UserID(c); uid != "" {
				fields = append(fields, "user_id", uid)
			}
			switch {
			case status >= 500:
				log.Errorw("request", append(fields, "error", err)...)
			case status >= 400:
				log.Infow("request", fields...)
			default:
				log.Debugw("request", fields...)
			}
			return nil
		}
	}
}
