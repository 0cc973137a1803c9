// Package handler holds the HTTP handlers.  A handler binds and checks the
// request, calls a store or service, and returns either the resulting entity
// or an *apperror.Error for the error handler to render.
package handler

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/cypu/rulebook-api/internal/apperror"
	"github.com/cypu/rulebook-api/internal/kafka/notifier"
	"github.com/cypu/rulebook-api/internal/ordering"
	"github.com/cypu/rulebook-api/internal/repository"
)

const defaultTimeout = 5 * time.Second

// Base carries what every handler shares.
type Base struct {
	Timeout time.Duration
	Events  notifier.Notifier
	Log     *zap.SugaredLogger
}

// NewBase builds a Base.  A nil notifier drops events.
func NewBase(timeout time.Duration, events notifier.Notifier, log *zap.SugaredLogger) Base {
	if events == nil {
		events = notifier.NewNoopNotifier()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return Base{Timeout: timeout, Events: events, Log: log}
}

func (b Base) ctx(c echo.Context) (context.Context, context.CancelFunc) {
	t := b.Timeout
	if t <= 0 {
		t = defaultTimeout
	}
	return context.WithTimeout(c.Request().Context(), t)
}

// notify publishes a content change.  Failures are logged only; the write
// already succeeded.
func (b Base) notify(ctx context.Context, kind notifier.Kind, change notifier.Change, id, parentID string) {
	if b.Events == nil {
		return
	}
	ev := notifier.Event{Kind: kind, ID: id, ParentID: parentID, Change: change, At: time.Now().UTC()}
	if err := b.Events.ContentChanged(ctx, ev); err != nil && b.Log != nil {
		b.Log.Warnw("content event not published", "kind", kind, "id", id, "change", change, "error", err)
	}
}

// bind decodes the request into dst.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return apperror.InvalidField("body")
	}
	return nil
}

// queryID reads a required id from the query string.
func queryID(c echo.Context, name string) (string, error) {
	id := strings.TrimSpace(c.QueryParam(name))
	if id == "" {
		return "", apperror.InvalidField(name)
	}
	return id, nil
}

func required(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", apperror.InvalidField(field)
	}
	return v, nil
}

// storeError maps repository sentinels onto the client taxonomy.  entity
// names what was missing; field names the column a duplicate or dangling
// reference was found in.
func storeError(err error, entity, field string) error {
	var ae *apperror.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &ae):
		return ae
	case errors.Is(err, repository.ErrNotFound):
		return apperror.NotFound(entity)
	case errors.Is(err, repository.ErrDuplicate):
		return apperror.Duplicate(field)
	case errors.Is(err, repository.ErrInvalidReference):
		return apperror.InvalidField(field)
	case errors.Is(err, repository.ErrForbidden):
		return apperror.NotAllowed()
	}
	return apperror.ServerError(err)
}

// orderError maps a rejected rearrangement.  Nothing was written.
func orderError(err error, entity string) error {
	switch {
	case errors.Is(err, ordering.ErrUnknownSibling):
		return apperror.NotFound(entity)
	case errors.Is(err, ordering.ErrEmpty),
		errors.Is(err, ordering.ErrDuplicateID),
		errors.Is(err, ordering.ErrIncomplete),
		errors.Is(err, ordering.ErrInvalidPosition):
		return apperror.InvalidField("order")
	}
	return storeError(err, entity, "order")
}

// idRequest is the body of every delete route.
type idRequest struct {
	ID string `json:"id"`
}

// orderRequest is the body of the update-order routes.
type orderRequest struct {
	Order []ordering.Move `json:"order"`
}

func set(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

// setRef applies an optional reference.  An empty value clears it.
func setRef(dst **string, src *string) {
	if src == nil {
		return
	}
	v := strings.TrimSpace(*src)
	if v == "" {
		*dst = nil
		return
	}
	*dst = &v
}
