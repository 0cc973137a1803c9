package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cypu/rulebook-api/internal/model"
)

// CharacterRepo persists character sheets and their node attachments.
type CharacterRepo struct {
	db *sql.DB
}

func NewCharacterRepo(db *sql.DB) *CharacterRepo { return &CharacterRepo{db: db} }

// Create inserts ch and returns it as stored.
func (r *CharacterRepo) Create(ctx context.Context, ch *model.Character) (*model.Character, error) {
	ch.ID = newID()
	const q = "INSERT INTO characters (id, name, player_id, campaign_id, created_by) VALUES (?, ?, ?, ?, ?)"
	if _, err := r.db.ExecContext(ctx, q, ch.ID, ch.Name, ch.PlayerID, ch.CampaignID, ch.CreatedBy); err != nil {
		if isMissingReference(err) {
			return nil, fmt.Errorf("character references: %w", ErrInvalidReference)
		}
		return nil, err
	}
	return r.GetByID(ctx, ch.ID)
}

const characterColumns = "id, name, player_id, campaign_id, created_by, created_at"

func scanCharacter(row interface{ Scan(...any) error }, ch *model.Character) error {
	var campaign sql.NullString
	if err := row.Scan(&ch.ID, &ch.Name, &ch.PlayerID, &campaign, &ch.CreatedBy, &ch.CreatedAt); err != nil {
		return err
	}
	if campaign.Valid {
		ch.CampaignID = &campaign.String
	}
	return nil
}

// GetByID returns a character with its nodes.
func (r *CharacterRepo) GetByID(ctx context.Context, id string) (*model.Character, error) {
	var ch model.Character
	row := r.db.QueryRowContext(ctx, "SELECT "+characterColumns+" FROM characters WHERE id = ?", id)
	if err := scanCharacter(row, &ch); err != nil {
		return nil, notFoundOr(err, "character", id)
	}
	nodes, err := r.nodes(ctx, id)
	if err != nil {
		return nil, err
	}
	ch.Nodes = nodes
	return &ch, nil
}

func (r *CharacterRepo) nodes(ctx context.Context, characterID string) ([]model.CharacterNode, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, node_id, used FROM character_nodes WHERE character_id = ? ORDER BY id", characterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.CharacterNode{}
	for rows.Next() {
		var n model.CharacterNode
		if err := rows.Scan(&n.ID, &n.NodeID, &n.Used); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// ListForPlayer returns the characters of playerID.
func (r *CharacterRepo) ListForPlayer(ctx context.Context, playerID string) ([]*model.Character, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+characterColumns+" FROM characters WHERE player_id = ? ORDER BY created_at, id", playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Character
	for rows.Next() {
		ch := new(model.Character)
		if err := scanCharacter(rows, ch); err != nil {
			return nil, err
		}
		out = append(out, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, ch := range out {
		if ch.Nodes, err = r.nodes(ctx, ch.ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Update writes name and campaign of a character.
func (r *CharacterRepo) Update(ctx context.Context, ch *model.Character) (*model.Character, error) {
	if _, err := r.GetByID(ctx, ch.ID); err != nil {
		return nil, err
	}
	const q = "UPDATE characters SET name = ?, campaign_id = ? WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, q, ch.Name, ch.CampaignID, ch.ID); err != nil {
		if isMissingReference(err) {
			return nil, fmt.Errorf("campaign: %w", ErrInvalidReference)
		}
		return nil, err
	}
	return r.GetByID(ctx, ch.ID)
}

// Delete removes a character; its node attachments cascade.
func (r *CharacterRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "characters", id)
}

// AddNode attaches nodeID to a character.  Attaching the same node twice
// yields ErrDuplicate.
func (r *CharacterRepo) AddNode(ctx context.Context, characterID, nodeID string) (*model.Character, error) {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO character_nodes (id, character_id, node_id) VALUES (?, ?, ?)", newID(), characterID, nodeID)
	switch {
	case err == nil:
	case isDuplicateKey(err):
		return nil, fmt.Errorf("node %s: %w", nodeID, ErrDuplicate)
	case isMissingReference(err):
		return nil, fmt.Errorf("character %s or node %s: %w", characterID, nodeID, ErrNotFound)
	default:
		return nil, err
	}
	return r.GetByID(ctx, characterID)
}

// RemoveNode detaches nodeID from a character.
func (r *CharacterRepo) RemoveNode(ctx context.Context, characterID, nodeID string) (*model.Character, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM character_nodes WHERE character_id = ? AND node_id = ?", characterID, nodeID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("node %s on character %s: %w", nodeID, characterID, ErrNotFound)
	}
	return r.GetByID(ctx, characterID)
}
