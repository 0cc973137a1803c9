package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cypu/rulebook-api/internal/model"
)

// RuleBookRepo persists rule books and reads them composed with their
// chapters and pages.
type RuleBookRepo struct {
	db *sql.DB
}

func NewRuleBookRepo(db *sql.DB) *RuleBookRepo { return &RuleBookRepo{db: db} }

const ruleBookColumns = "id, title, summary, type_id, draft, archived, i18n, created_at"

func scanRuleBook(row interface{ Scan(...any) error }, b *model.RuleBook) error {
	var typeID sql.NullString
	if err := row.Scan(&b.ID, &b.Title, &b.Summary, &typeID, &b.Draft, &b.Archived, &b.I18n, &b.CreatedAt); err != nil {
		return err
	}
	b.TypeID = nullable(typeID)
	return nil
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// List returns every rule book, newest last.
func (r *RuleBookRepo) List(ctx context.Context) ([]*model.RuleBook, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+ruleBookColumns+" FROM rule_books ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.RuleBook
	for rows.Next() {
		b := new(model.RuleBook)
		if err := scanRuleBook(rows, b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *RuleBookRepo) GetByID(ctx context.Context, id string) (*model.RuleBook, error) {
	return getRuleBook(ctx, r.db, id)
}

func getRuleBook(ctx context.Context, q querier, id string) (*model.RuleBook, error) {
	var b model.RuleBook
	if err := scanRuleBook(q.QueryRowContext(ctx, "SELECT "+ruleBookColumns+" FROM rule_books WHERE id = ?", id), &b); err != nil {
		return nil, notFoundOr(err, "rule book", id)
	}
	return &b, nil
}

// GetWithChapters returns a rule book with its chapters in position order,
// each carrying its pages in position order.
func (r *RuleBookRepo) GetWithChapters(ctx context.Context, id string) (*model.RuleBookWithChapters, error) {
	b, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	chapters, err := listChapters(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	pages, err := r.pagesOfRuleBook(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &model.RuleBookWithChapters{RuleBook: *b, Chapters: make([]model.ChapterWithPages, 0, len(chapters))}
	for _, ch := range chapters {
		ps := pages[ch.ID]
		if ps == nil {
			ps = []model.Page{}
		}
		out.Chapters = append(out.Chapters, model.ChapterWithPages{Chapter: *ch, Pages: ps})
	}
	return out, nil
}

func (r *RuleBookRepo) pagesOfRuleBook(ctx context.Context, ruleBookID string) (map[string][]model.Page, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.title, p.content, p.chapter_id, p.type_id, p.position, p.i18n, p.created_at
		 FROM pages p JOIN chapters c ON c.id = p.chapter_id
		 WHERE c.rule_book_id = ? ORDER BY p.chapter_id, p.position`, ruleBookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string][]model.Page{}
	for rows.Next() {
		var p model.Page
		if err := scanPage(rows, &p); err != nil {
			return nil, err
		}
		out[p.ChapterID] = append(out[p.ChapterID], p)
	}
	return out, rows.Err()
}

func (r *RuleBookRepo) Create(ctx context.Context, b *model.RuleBook) (*model.RuleBook, error) {
	b.ID = newID()
	const q = "INSERT INTO rule_books (id, title, summary, type_id, draft, archived, i18n) VALUES (?, ?, ?, ?, ?, ?, ?)"
	if _, err := r.db.ExecContext(ctx, q, b.ID, b.Title, b.Summary, b.TypeID, b.Draft, b.Archived, b.I18n); err != nil {
		if isMissingReference(err) {
			return nil, fmt.Errorf("rule book type: %w", ErrInvalidReference)
		}
		return nil, err
	}
	return r.GetByID(ctx, b.ID)
}

// Update writes the base fields and merges b.I18n into the stored blob.
func (r *RuleBookRepo) Update(ctx context.Context, b *model.RuleBook) (*model.RuleBook, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		blob, err := mergeI18n(ctx, tx, "rule_books", b.ID, b.I18n)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			"UPDATE rule_books SET title = ?, summary = ?, type_id = ?, draft = ?, archived = ?, i18n = ? WHERE id = ?",
			b.Title, b.Summary, b.TypeID, b.Draft, b.Archived, blob, b.ID)
		if isMissingReference(err) {
			return fmt.Errorf("rule book type: %w", ErrInvalidReference)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, b.ID)
}

// Delete removes a rule book with its notions, chapters and their pages in
// one transaction.
func (r *RuleBookRepo) Delete(ctx context.Context, id string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := chapterSiblings.lockParent(ctx, tx, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM notions WHERE rule_book_id = ?", id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"DELETE p FROM pages p JOIN chapters c ON c.id = p.chapter_id WHERE c.rule_book_id = ?", id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM chapters WHERE rule_book_id = ?", id); err != nil {
			return err
		}
		return deleteByID(ctx, tx, "rule_books", id)
	})
}
