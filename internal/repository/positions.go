package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cypu/rulebook-api/internal/ordering"
)

// siblings describes a position-ordered child table.  Positions are kept
// dense: creates append under a parent row lock, deletes recompact, and
// reorders are validated whole before any write.
type siblings struct {
	table       string
	parentTable string
	parentCol   string
}

var (
	chapterSiblings = siblings{table: "chapters", parentTable: "rule_books", parentCol: "rule_book_id"}
	pageSiblings    = siblings{table: "pages", parentTable: "chapters", parentCol: "chapter_id"}
)

// lockParent takes a row lock on the parent so concurrent appends, deletes
// and reorders of the same sibling set serialize.
func (s siblings) lockParent(ctx context.Context, tx *sql.Tx, parentID string) error {
	var id string
	q := fmt.Sprintf("SELECT id FROM %s WHERE id = ? FOR UPDATE", s.parentTable)
	if err := tx.QueryRowContext(ctx, q, parentID).Scan(&id); err != nil {
		return notFoundOr(err, s.parentTable, parentID)
	}
	return nil
}

// nextPosition returns the append position.  Call with the parent locked.
func (s siblings) nextPosition(ctx context.Context, tx *sql.Tx, parentID string) (int, error) {
	var next int
	q := fmt.Sprintf("SELECT COALESCE(MAX(position) + 1, 0) FROM %s WHERE %s = ?", s.table, s.parentCol)
	if err := tx.QueryRowContext(ctx, q, parentID).Scan(&next); err != nil {
		return 0, err
	}
	return next, nil
}

// ids lists sibling ids in their current order.
func (s siblings) ids(ctx context.Context, q querier, parentID string) ([]string, error) {
	rows, err := q.QueryContext(ctx,
		fmt.Sprintf("SELECT id FROM %s WHERE %s = ? ORDER BY position, created_at, id", s.table, s.parentCol),
		parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// parentOf returns the parent id of a sibling.
func (s siblings) parentOf(ctx context.Context, q querier, id string) (string, error) {
	var parentID string
	err := q.QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", s.parentCol, s.table), id).Scan(&parentID)
	if err != nil {
		return "", notFoundOr(err, s.table, id)
	}
	return parentID, nil
}

func (s siblings) setPosition(ctx context.Context, tx *sql.Tx, id string, pos int) error {
	_, err := tx.ExecContext(ctx, fmt.Sprintf("UPDATE %s SET position = ? WHERE id = ?", s.table), pos, id)
	return err
}

// compact renumbers the siblings of parentID to 0..n-1 keeping their order.
func (s siblings) compact(ctx context.Context, tx *sql.Tx, parentID string) error {
	ids, err := s.ids(ctx, tx, parentID)
	if err != nil {
		return err
	}
	for i, id := range ids {
		if err := s.setPosition(ctx, tx, id, i); err != nil {
			return err
		}
	}
	return nil
}

// reorder applies a complete new arrangement in one transaction and returns
// the parent id.
func (s siblings) reorder(ctx context.Context, db *sql.DB, moves []ordering.Move) (string, error) {
	if len(moves) == 0 {
		return "", ordering.ErrEmpty
	}
	var parentID string
	err := withTx(ctx, db, func(tx *sql.Tx) error {
		var err error
		parentID, err = applyReorder(ctx, txSiblings{s: s, tx: tx}, moves)
		return err
	})
	if err != nil {
		return "", err
	}
	return parentID, nil
}

// siblingTx is what a reorder needs from its transaction.
type siblingTx interface {
	parentOf(ctx context.Context, id string) (string, error)
	lockParent(ctx context.Context, parentID string) error
	ids(ctx context.Context, parentID string) ([]string, error)
	setPosition(ctx context.Context, id string, pos int) error
}

// txSiblings binds a sibling table to one transaction.
type txSiblings struct {
	s  siblings
	tx *sql.Tx
}

func (t txSiblings) parentOf(ctx context.Context, id string) (string, error) {
	return t.s.parentOf(ctx, t.tx, id)
}

func (t txSiblings) lockParent(ctx context.Context, parentID string) error {
	return t.s.lockParent(ctx, t.tx, parentID)
}

func (t txSiblings) ids(ctx context.Context, parentID string) ([]string, error) {
	return t.s.ids(ctx, t.tx, parentID)
}

func (t txSiblings) setPosition(ctx context.Context, id string, pos int) error {
	return t.s.setPosition(ctx, t.tx, id, pos)
}

// applyReorder derives the parent from the first move and checks every move
// against that sibling set.  Any move outside it rejects the whole request
// before a single position is written.
func applyReorder(ctx context.Context, st siblingTx, moves []ordering.Move) (string, error) {
	if len(moves) == 0 {
		return "", ordering.ErrEmpty
	}
	parentID, err := st.parentOf(ctx, moves[0].ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", &ordering.UnknownSiblingError{ID: moves[0].ID}
		}
		return "", err
	}
	if err := st.lockParent(ctx, parentID); err != nil {
		return "", err
	}
	current, err := st.ids(ctx, parentID)
	if err != nil {
		return "", err
	}
	plan, err := ordering.Plan(current, moves)
	if err != nil {
		return "", err
	}
	for _, m := range plan {
		if err := st.setPosition(ctx, m.ID, m.Position); err != nil {
			return "", err
		}
	}
	return parentID, nil
}

// positionsOf returns the positions under parentID; used to check density.
func (s siblings) positionsOf(ctx context.Context, q querier, parentID string) ([]int, error) {
	rows, err := q.QueryContext(ctx,
		fmt.Sprintf("SELECT position FROM %s WHERE %s = ?", s.table, s.parentCol), parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []int
	for rows.Next() {
		var p int
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
