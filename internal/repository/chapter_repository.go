package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cypu/rulebook-api/internal/model"
	"github.com/cypu/rulebook-api/internal/ordering"
)

// ChapterRepo persists chapters.  Positions are dense per rule book.
type ChapterRepo struct {
	db *sql.DB
}

func NewChapterRepo(db *sql.DB) *ChapterRepo { return &ChapterRepo{db: db} }

const chapterColumns = "id, title, summary, rule_book_id, type_id, position, i18n, created_at"

func scanChapter(row interface{ Scan(...any) error }, c *model.Chapter) error {
	var typeID sql.NullString
	if err := row.Scan(&c.ID, &c.Title, &c.Summary, &c.RuleBookID, &typeID, &c.Position, &c.I18n, &c.CreatedAt); err != nil {
		return err
	}
	c.TypeID = nullable(typeID)
	return nil
}

func listChapters(ctx context.Context, q querier, ruleBookID string) ([]*model.Chapter, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT "+chapterColumns+" FROM chapters WHERE rule_book_id = ? ORDER BY position", ruleBookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Chapter
	for rows.Next() {
		c := new(model.Chapter)
		if err := scanChapter(rows, c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListByRuleBook returns the chapters of a rule book in position order.
func (r *ChapterRepo) ListByRuleBook(ctx context.Context, ruleBookID string) ([]*model.Chapter, error) {
	return listChapters(ctx, r.db, ruleBookID)
}

func (r *ChapterRepo) GetByID(ctx context.Context, id string) (*model.Chapter, error) {
	var c model.Chapter
	if err := scanChapter(r.db.QueryRowContext(ctx, "SELECT "+chapterColumns+" FROM chapters WHERE id = ?", id), &c); err != nil {
		return nil, notFoundOr(err, "chapter", id)
	}
	return &c, nil
}

// GetWithPagesAndRuleBook returns a chapter with its pages in position order
// and its parent rule book.
func (r *ChapterRepo) GetWithPagesAndRuleBook(ctx context.Context, id string) (*model.ChapterDetail, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	pages, err := listPages(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	book, err := getRuleBook(ctx, r.db, c.RuleBookID)
	if err != nil {
		return nil, err
	}
	out := &model.ChapterDetail{Chapter: *c, Pages: make([]model.Page, 0, len(pages)), RuleBook: *book}
	for _, p := range pages {
		out.Pages = append(out.Pages, *p)
	}
	return out, nil
}

// Create appends c after the current last chapter of its rule book.
func (r *ChapterRepo) Create(ctx context.Context, c *model.Chapter) (*model.Chapter, error) {
	c.ID = newID()
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := chapterSiblings.lockParent(ctx, tx, c.RuleBookID); err != nil {
			return err
		}
		pos, err := chapterSiblings.nextPosition(ctx, tx, c.RuleBookID)
		if err != nil {
			return err
		}
		c.Position = pos
		_, err = tx.ExecContext(ctx,
			"INSERT INTO chapters (id, title, summary, rule_book_id, type_id, position, i18n) VALUES (?, ?, ?, ?, ?, ?, ?)",
			c.ID, c.Title, c.Summary, c.RuleBookID, c.TypeID, c.Position, c.I18n)
		if isMissingReference(err) {
			return fmt.Errorf("chapter type: %w", ErrInvalidReference)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, c.ID)
}

// Update writes the base fields and merges c.I18n.  Parent and position are
// not changed here; use Reorder to move a chapter.
func (r *ChapterRepo) Update(ctx context.Context, c *model.Chapter) (*model.Chapter, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		blob, err := mergeI18n(ctx, tx, "chapters", c.ID, c.I18n)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, "UPDATE chapters SET title = ?, summary = ?, type_id = ?, i18n = ? WHERE id = ?",
			c.Title, c.Summary, c.TypeID, blob, c.ID)
		if isMissingReference(err) {
			return fmt.Errorf("chapter type: %w", ErrInvalidReference)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, c.ID)
}

// Delete removes a chapter and its pages, then closes the gap it leaves
// among its siblings.
func (r *ChapterRepo) Delete(ctx context.Context, id string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		parentID, err := chapterSiblings.parentOf(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := chapterSiblings.lockParent(ctx, tx, parentID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM pages WHERE chapter_id = ?", id); err != nil {
			return err
		}
		if err := deleteByID(ctx, tx, "chapters", id); err != nil {
			return err
		}
		return chapterSiblings.compact(ctx, tx, parentID)
	})
}

// Reorder applies a complete new arrangement of one rule book's chapters and
// returns them in their new order.
func (r *ChapterRepo) Reorder(ctx context.Context, moves []ordering.Move) ([]*model.Chapter, error) {
	parentID, err := chapterSiblings.reorder(ctx, r.db, moves)
	if err != nil {
		return nil, err
	}
	return r.ListByRuleBook(ctx, parentID)
}

// Positions returns the chapter positions of a rule book.
func (r *ChapterRepo) Positions(ctx context.Context, ruleBookID string) ([]int, error) {
	return chapterSiblings.positionsOf(ctx, r.db, ruleBookID)
}
