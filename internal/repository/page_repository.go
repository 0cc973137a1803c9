package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cypu/rulebook-api/internal/model"
	"github.com/cypu/rulebook-api/internal/ordering"
)

// PageRepo persists pages.  Positions are dense per chapter.
type PageRepo struct {
	db *sql.DB
}

func NewPageRepo(db *sql.DB) *PageRepo { return &PageRepo{db: db} }

const pageColumns = "id, title, content, chapter_id, type_id, position, i18n, created_at"

func scanPage(row interface{ Scan(...any) error }, p *model.Page) error {
	var typeID sql.NullString
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.ChapterID, &typeID, &p.Position, &p.I18n, &p.CreatedAt); err != nil {
		return err
	}
	p.TypeID = nullable(typeID)
	return nil
}

func listPages(ctx context.Context, q querier, chapterID string) ([]*model.Page, error) {
	rows, err := q.QueryContext(ctx, "SELECT "+pageColumns+" FROM pages WHERE chapter_id = ? ORDER BY position", chapterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Page
	for rows.Next() {
		p := new(model.Page)
		if err := scanPage(rows, p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListByChapter returns the pages of a chapter in position order.
func (r *PageRepo) ListByChapter(ctx context.Context, chapterID string) ([]*model.Page, error) {
	return listPages(ctx, r.db, chapterID)
}

func (r *PageRepo) GetByID(ctx context.Context, id string) (*model.Page, error) {
	var p model.Page
	if err := scanPage(r.db.QueryRowContext(ctx, "SELECT "+pageColumns+" FROM pages WHERE id = ?", id), &p); err != nil {
		return nil, notFoundOr(err, "page", id)
	}
	return &p, nil
}

// Create appends p after the current last page of its chapter.
func (r *PageRepo) Create(ctx context.Context, p *model.Page) (*model.Page, error) {
	p.ID = newID()
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := pageSiblings.lockParent(ctx, tx, p.ChapterID); err != nil {
			return err
		}
		pos, err := pageSiblings.nextPosition(ctx, tx, p.ChapterID)
		if err != nil {
			return err
		}
		p.Position = pos
		_, err = tx.ExecContext(ctx,
			"INSERT INTO pages (id, title, content, chapter_id, type_id, position, i18n) VALUES (?, ?, ?, ?, ?, ?, ?)",
			p.ID, p.Title, p.Content, p.ChapterID, p.TypeID, p.Position, p.I18n)
		if isMissingReference(err) {
			return fmt.Errorf("page type: %w", ErrInvalidReference)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, p.ID)
}

// Update writes the base fields and merges p.I18n.
func (r *PageRepo) Update(ctx context.Context, p *model.Page) (*model.Page, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		blob, err := mergeI18n(ctx, tx, "pages", p.ID, p.I18n)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, "UPDATE pages SET title = ?, content = ?, type_id = ?, i18n = ? WHERE id = ?",
			p.Title, p.Content, p.TypeID, blob, p.ID)
		if isMissingReference(err) {
			return fmt.Errorf("page type: %w", ErrInvalidReference)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, p.ID)
}

// Delete removes a page and recompacts its siblings.
func (r *PageRepo) Delete(ctx context.Context, id string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		parentID, err := pageSiblings.parentOf(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := pageSiblings.lockParent(ctx, tx, parentID); err != nil {
			return err
		}
		if err := deleteByID(ctx, tx, "pages", id); err != nil {
			return err
		}
		return pageSiblings.compact(ctx, tx, parentID)
	})
}

// Reorder applies a complete new arrangement of one chapter's pages.
func (r *PageRepo) Reorder(ctx context.Context, moves []ordering.Move) ([]*model.Page, error) {
	parentID, err := pageSiblings.reorder(ctx, r.db, moves)
	if err != nil {
		return nil, err
	}
	return r.ListByChapter(ctx, parentID)
}

// Positions returns the page positions of a chapter.
func (r *PageRepo) Positions(ctx context.Context, chapterID string) ([]int, error) {
	return pageSiblings.positionsOf(ctx, r.db, chapterID)
}
