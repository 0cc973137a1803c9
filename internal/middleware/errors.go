package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/cypu/rulebook-api/internal/apperror"
)

// ErrorHandler renders every error as {message, code, sent?}.  Server errors
// are logged with their cause; the client only sees the generic message.
func ErrorHandler(log *zap.SugaredLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var (
			ae     *apperror.Error
			status int
		)
		var he *echo.HTTPError
		switch {
		case errors.As(err, &ae):
			status = ae.Status()
		case errors.As(err, &he):
			msg, _ := he.Message.(string)
			ae = apperror.FromStatus(he.Code, msg)
			status = he.Code
		case errors.Is(err, context.DeadlineExceeded):
			ae = apperror.ServerError(err)
			status = http.StatusInternalServerError
		default:
			ae = apperror.From(err)
			status = ae.Status()
		}
		if ae.Kind == apperror.KindServer {
			log.Errorw("server error", "path", c.Request().URL.Path, "error", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, ae.Response())
		}
		if err != nil {
			log.Warnw("failed to write error response", "error", err)
		}
	}
}
