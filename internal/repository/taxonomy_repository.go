package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cypu/rulebook-api/internal/model"
)

// NodeRepo persists skill nodes.
type NodeRepo struct {
	db *sql.DB
}

func NewNodeRepo(db *sql.DB) *NodeRepo { return &NodeRepo{db: db} }

const nodeColumns = "id, title, summary, `rank`, i18n, created_at"

func scanNode(row interface{ Scan(...any) error }, n *model.Node) error {
	return row.Scan(&n.ID, &n.Title, &n.Summary, &n.Rank, &n.I18n, &n.CreatedAt)
}

// List returns every node ordered by rank then title.
func (r *NodeRepo) List(ctx context.Context) ([]*model.Node, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+nodeColumns+" FROM nodes ORDER BY `rank`, title, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Node
	for rows.Next() {
		n := new(model.Node)
		if err := scanNode(rows, n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *NodeRepo) GetByID(ctx context.Context, id string) (*model.Node, error) {
	var n model.Node
	if err := scanNode(r.db.QueryRowContext(ctx, "SELECT "+nodeColumns+" FROM nodes WHERE id = ?", id), &n); err != nil {
		return nil, notFoundOr(err, "node", id)
	}
	return &n, nil
}

func (r *NodeRepo) Create(ctx context.Context, n *model.Node) (*model.Node, error) {
	n.ID = newID()
	const q = "INSERT INTO nodes (id, title, summary, `rank`, i18n) VALUES (?, ?, ?, ?, ?)"
	if _, err := r.db.ExecContext(ctx, q, n.ID, n.Title, n.Summary, n.Rank, n.I18n); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, n.ID)
}

// Update writes the base fields and merges n.I18n into the stored blob.
func (r *NodeRepo) Update(ctx context.Context, n *model.Node) (*model.Node, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		blob, err := mergeI18n(ctx, tx, "nodes", n.ID, n.I18n)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, "UPDATE nodes SET title = ?, summary = ?, `rank` = ?, i18n = ? WHERE id = ?",
			n.Title, n.Summary, n.Rank, blob, n.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, n.ID)
}

func (r *NodeRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "nodes", id)
}

// ItemModifierRepo persists item modifiers.  ModifierID is unique.
type ItemModifierRepo struct {
	db *sql.DB
}

func NewItemModifierRepo(db *sql.DB) *ItemModifierRepo { return &ItemModifierRepo{db: db} }

const itemModifierColumns = "id, title, summary, modifier_id, i18n, created_at"

func scanItemModifier(row interface{ Scan(...any) error }, m *model.ItemModifier) error {
	return row.Scan(&m.ID, &m.Title, &m.Summary, &m.ModifierID, &m.I18n, &m.CreatedAt)
}

func (r *ItemModifierRepo) List(ctx context.Context) ([]*model.ItemModifier, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+itemModifierColumns+" FROM item_modifiers ORDER BY modifier_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.ItemModifier
	for rows.Next() {
		m := new(model.ItemModifier)
		if err := scanItemModifier(rows, m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *ItemModifierRepo) GetByID(ctx context.Context, id string) (*model.ItemModifier, error) {
	var m model.ItemModifier
	row := r.db.QueryRowContext(ctx, "SELECT "+itemModifierColumns+" FROM item_modifiers WHERE id = ?", id)
	if err := scanItemModifier(row, &m); err != nil {
		return nil, notFoundOr(err, "item modifier", id)
	}
	return &m, nil
}

// Create inserts m.  A modifierId already in use yields ErrDuplicate.
func (r *ItemModifierRepo) Create(ctx context.Context, m *model.ItemModifier) (*model.ItemModifier, error) {
	m.ID = newID()
	const q = "INSERT INTO item_modifiers (id, title, summary, modifier_id, i18n) VALUES (?, ?, ?, ?, ?)"
	if _, err := r.db.ExecContext(ctx, q, m.ID, m.Title, m.Summary, m.ModifierID, m.I18n); err != nil {
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("modifierId %s: %w", m.ModifierID, ErrDuplicate)
		}
		return nil, err
	}
	return r.GetByID(ctx, m.ID)
}

// Update writes m.  Keeping the document's own modifierId is not a
// duplicate; taking another document's is.
func (r *ItemModifierRepo) Update(ctx context.Context, m *model.ItemModifier) (*model.ItemModifier, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		blob, err := mergeI18n(ctx, tx, "item_modifiers", m.ID, m.I18n)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			"UPDATE item_modifiers SET title = ?, summary = ?, modifier_id = ?, i18n = ? WHERE id = ?",
			m.Title, m.Summary, m.ModifierID, blob, m.ID)
		if isDuplicateKey(err) {
			return fmt.Errorf("modifierId %s: %w", m.ModifierID, ErrDuplicate)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, m.ID)
}

func (r *ItemModifierRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "item_modifiers", id)
}

// TypeKind names one of the reference collections sharing the NamedType shape.
type TypeKind string

const (
	Rarities      TypeKind = "rarities"
	PageTypes     TypeKind = "page_types"
	RuleBookTypes TypeKind = "rule_book_types"
	ChapterTypes  TypeKind = "chapter_types"
)

// NamedTypeRepo persists one kind of named reference type.  Name is unique
// within the kind.
type NamedTypeRepo struct {
	db    *sql.DB
	table string
}

// NewNamedTypeRepo returns a repo over kind.  Unknown kinds panic since they
// are fixed at wiring time.
func NewNamedTypeRepo(db *sql.DB, kind TypeKind) *NamedTypeRepo {
	switch kind {
	case Rarities, PageTypes, RuleBookTypes, ChapterTypes:
	default:
		panic(fmt.Sprintf("repository: unknown type kind %q", kind))
	}
	return &NamedTypeRepo{db: db, table: string(kind)}
}

func (r *NamedTypeRepo) List(ctx context.Context) ([]*model.NamedType, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, i18n, created_at FROM "+r.table+" ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.NamedType
	for rows.Next() {
		t := new(model.NamedType)
		if err := rows.Scan(&t.ID, &t.Name, &t.I18n, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *NamedTypeRepo) GetByID(ctx context.Context, id string) (*model.NamedType, error) {
	var t model.NamedType
	err := r.db.QueryRowContext(ctx, "SELECT id, name, i18n, created_at FROM "+r.table+" WHERE id = ?", id).
		Scan(&t.ID, &t.Name, &t.I18n, &t.CreatedAt)
	if err != nil {
		return nil, notFoundOr(err, r.table, id)
	}
	return &t, nil
}

func (r *NamedTypeRepo) Create(ctx context.Context, t *model.NamedType) (*model.NamedType, error) {
	t.ID = newID()
	_, err := r.db.ExecContext(ctx, "INSERT INTO "+r.table+" (id, name, i18n) VALUES (?, ?, ?)", t.ID, t.Name, t.I18n)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("name %s: %w", t.Name, ErrDuplicate)
		}
		return nil, err
	}
	return r.GetByID(ctx, t.ID)
}

func (r *NamedTypeRepo) Update(ctx context.Context, t *model.NamedType) (*model.NamedType, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		blob, err := mergeI18n(ctx, tx, r.table, t.ID, t.I18n)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, "UPDATE "+r.table+" SET name = ?, i18n = ? WHERE id = ?", t.Name, blob, t.ID)
		if isDuplicateKey(err) {
			return fmt.Errorf("name %s: %w", t.Name, ErrDuplicate)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, t.ID)
}

func (r *NamedTypeRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, r.table, id)
}
