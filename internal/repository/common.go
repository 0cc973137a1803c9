package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cypu/rulebook-api/internal/i18n"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func newID() string { return uuid.NewString() }

// withTx runs fn in a transaction, committing when fn succeeds and rolling
// back otherwise.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()
	return fn(tx)
}

// mergeI18n locks the row, merges update into its stored blob and returns the
// new blob.  The caller writes it back in the same transaction.
func mergeI18n(ctx context.Context, tx *sql.Tx, table, id string, update i18n.Map) (string, error) {
	var stored sql.NullString
	q := fmt.Sprintf("SELECT i18n FROM %s WHERE id = ? FOR UPDATE", table)
	if err := tx.QueryRowContext(ctx, q, id).Scan(&stored); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%s %s: %w", table, id, ErrNotFound)
		}
		return "", err
	}
	return i18n.Merge(stored.String, update)
}

// deleteByID removes one row and reports ErrNotFound when nothing matched.
func deleteByID(ctx context.Context, q querier, table, id string) error {
	res, err := q.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s %s: %w", table, id, ErrNotFound)
	}
	return nil
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func stringArgs(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func notFoundOr(err error, what, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", what, id, ErrNotFound)
	}
	return err
}
