package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cypu/rulebook-api/internal/model"
)

// NotionRepo persists glossary notions of rule books.
type NotionRepo struct {
	db *sql.DB
}

func NewNotionRepo(db *sql.DB) *NotionRepo { return &NotionRepo{db: db} }

const notionColumns = "id, title, short, text, rule_book_id, i18n, created_at"

func scanNotion(row interface{ Scan(...any) error }, n *model.Notion) error {
	return row.Scan(&n.ID, &n.Title, &n.Short, &n.Text, &n.RuleBookID, &n.I18n, &n.CreatedAt)
}

// List returns notions, restricted to one rule book when ruleBookID is set.
func (r *NotionRepo) List(ctx context.Context, ruleBookID string) ([]*model.Notion, error) {
	q := "SELECT " + notionColumns + " FROM notions"
	var args []any
	if ruleBookID != "" {
		q += " WHERE rule_book_id = ?"
		args = append(args, ruleBookID)
	}
	rows, err := r.db.QueryContext(ctx, q+" ORDER BY title, id", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Notion
	for rows.Next() {
		n := new(model.Notion)
		if err := scanNotion(rows, n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *NotionRepo) GetByID(ctx context.Context, id string) (*model.Notion, error) {
	var n model.Notion
	if err := scanNotion(r.db.QueryRowContext(ctx, "SELECT "+notionColumns+" FROM notions WHERE id = ?", id), &n); err != nil {
		return nil, notFoundOr(err, "notion", id)
	}
	return &n, nil
}

func (r *NotionRepo) Create(ctx context.Context, n *model.Notion) (*model.Notion, error) {
	n.ID = newID()
	const q = "INSERT INTO notions (id, title, short, text, rule_book_id, i18n) VALUES (?, ?, ?, ?, ?, ?)"
	if _, err := r.db.ExecContext(ctx, q, n.ID, n.Title, n.Short, n.Text, n.RuleBookID, n.I18n); err != nil {
		if isMissingReference(err) {
			return nil, fmt.Errorf("rule book %s: %w", n.RuleBookID, ErrNotFound)
		}
		return nil, err
	}
	return r.GetByID(ctx, n.ID)
}

// Update writes the base fields and merges n.I18n.  The rule book is fixed.
func (r *NotionRepo) Update(ctx context.Context, n *model.Notion) (*model.Notion, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		blob, err := mergeI18n(ctx, tx, "notions", n.ID, n.I18n)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, "UPDATE notions SET title = ?, short = ?, text = ?, i18n = ? WHERE id = ?",
			n.Title, n.Short, n.Text, blob, n.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, n.ID)
}

func (r *NotionRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "notions", id)
}
