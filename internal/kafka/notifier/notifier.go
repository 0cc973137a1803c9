package notifier

import (
	"context"
	"time"
)

//go:generate mockgen -source=notifier.go -destination=mock_notifier.go -package=notifier

// Kind names the content collection an event is about.
type Kind string

const (
	KindRuleBook     Kind = "rulebook"
	KindChapter      Kind = "chapter"
	KindPage         Kind = "page"
	KindNotion       Kind = "notion"
	KindNode         Kind = "node"
	KindItemModifier Kind = "itemmodifier"
	KindNamedType    Kind = "namedtype"
)

// Change is what happened to the content.
type Change string

const (
	ChangeCreated   Change = "created"
	ChangeUpdated   Change = "updated"
	ChangeDeleted   Change = "deleted"
	ChangeReordered Change = "reordered"
)

// Event describes one content mutation.  ParentID is set for chapters, pages
// and notions; for a reorder ID is empty and ParentID names the sibling set.
type Event struct {
	Kind     Kind      `json:"kind"`
	ID       string    `json:"id,omitempty"`
	ParentID string    `json:"parentId,omitempty"`
	Change   Change    `json:"change"`
	At       time.Time `json:"at"`
}

type Notifier interface {
	ContentChanged(ctx context.Context, ev Event) error
}

type noopNotifier struct{}

// NewNoopNotifier returns a Notifier that drops every event.
func NewNoopNotifier() Notifier { return noopNotifier{} }

func (noopNotifier) ContentChanged(context.Context, Event) error { return nil }
