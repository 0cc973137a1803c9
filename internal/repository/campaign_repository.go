package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cypu/rulebook-api/internal/model"
	"github.com/cypu/rulebook-api/internal/utils"
)

const campaignCodeLength = 6

// CampaignRepo persists campaigns and their players.
type CampaignRepo struct {
	db *sql.DB
}

func NewCampaignRepo(db *sql.DB) *CampaignRepo { return &CampaignRepo{db: db} }

// Create inserts c owned by c.Owner.ID with a fresh join code.  A code
// collision is retried a few times before giving up.
func (r *CampaignRepo) Create(ctx context.Context, c *model.Campaign) error {
	c.ID = newID()
	const q = "INSERT INTO campaigns (id, name, code, owner_id) VALUES (?, ?, ?, ?)"
	for attempt := 0; ; attempt++ {
		code, err := utils.RandomCode(campaignCodeLength)
		if err != nil {
			return err
		}
		_, err = r.db.ExecContext(ctx, q, c.ID, c.Name, code, c.Owner.ID)
		if err == nil {
			c.Code = code
			break
		}
		if isDuplicateKey(err) && attempt < 3 {
			continue
		}
		if isMissingReference(err) {
			return fmt.Errorf("owner %s: %w", c.Owner.ID, ErrInvalidReference)
		}
		return err
	}
	stored, err := r.GetByID(ctx, c.ID)
	if err != nil {
		return err
	}
	*c = *stored
	return nil
}

// GetByID returns a campaign with owner and players resolved.
func (r *CampaignRepo) GetByID(ctx context.Context, id string) (*model.Campaign, error) {
	return r.getBy(ctx, "c.id", id)
}

// GetByCode looks a campaign up by its join code.
func (r *CampaignRepo) GetByCode(ctx context.Context, code string) (*model.Campaign, error) {
	return r.getBy(ctx, "c.code", code)
}

const campaignSelect = `SELECT c.id, c.name, c.code, c.created_at, u.id, u.name, u.mail
	FROM campaigns c JOIN users u ON u.id = c.owner_id`

func (r *CampaignRepo) getBy(ctx context.Context, col, val string) (*model.Campaign, error) {
	var c model.Campaign
	err := r.db.QueryRowContext(ctx, campaignSelect+" WHERE "+col+" = ?", val).
		Scan(&c.ID, &c.Name, &c.Code, &c.CreatedAt, &c.Owner.ID, &c.Owner.Name, &c.Owner.Mail)
	if err != nil {
		return nil, notFoundOr(err, "campaign", val)
	}
	if c.Players, err = r.players(ctx, c.ID); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepo) players(ctx context.Context, campaignID string) ([]model.UserRef, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT u.id, u.name, u.mail FROM campaign_players cp JOIN users u ON u.id = cp.user_id
		 WHERE cp.campaign_id = ? ORDER BY u.name, u.id`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.UserRef{}
	for rows.Next() {
		var p model.UserRef
		if err := rows.Scan(&p.ID, &p.Name, &p.Mail); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListForUser returns the campaigns userID owns or plays in.
func (r *CampaignRepo) ListForUser(ctx context.Context, userID string) ([]*model.Campaign, error) {
	rows, err := r.db.QueryContext(ctx, campaignSelect+`
		WHERE c.owner_id = ? OR c.id IN (SELECT campaign_id FROM campaign_players WHERE user_id = ?)
		ORDER BY c.created_at, c.id`, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Campaign
	for rows.Next() {
		c := new(model.Campaign)
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.CreatedAt, &c.Owner.ID, &c.Owner.Name, &c.Owner.Mail); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, c := range out {
		if c.Players, err = r.players(ctx, c.ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Join adds userID to the campaign with the given code.  Joining twice, or
// joining one's own campaign, is a no-op.
func (r *CampaignRepo) Join(ctx context.Context, code, userID string) (*model.Campaign, error) {
	c, err := r.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if c.HasMember(userID) {
		return c, nil
	}
	if _, err := r.db.ExecContext(ctx,
		"INSERT IGNORE INTO campaign_players (campaign_id, user_id) VALUES (?, ?)", c.ID, userID); err != nil {
		if isMissingReference(err) {
			return nil, fmt.Errorf("user %s: %w", userID, ErrInvalidReference)
		}
		return nil, err
	}
	return r.GetByID(ctx, c.ID)
}

// Update renames a campaign owned by ownerID.
func (r *CampaignRepo) Update(ctx context.Context, id, ownerID, name string) (*model.Campaign, error) {
	if err := r.checkOwner(ctx, id, ownerID); err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, "UPDATE campaigns SET name = ? WHERE id = ?", name, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a campaign owned by ownerID.  Players are unlinked and
// characters detached by the schema's foreign keys.
func (r *CampaignRepo) Delete(ctx context.Context, id, ownerID string) error {
	if err := r.checkOwner(ctx, id, ownerID); err != nil {
		return err
	}
	return deleteByID(ctx, r.db, "campaigns", id)
}

func (r *CampaignRepo) checkOwner(ctx context.Context, id, ownerID string) error {
	var owner string
	if err := r.db.QueryRowContext(ctx, "SELECT owner_id FROM campaigns WHERE id = ?", id).Scan(&owner); err != nil {
		return notFoundOr(err, "campaign", id)
	}
	if owner != ownerID {
		return ErrForbidden
	}
	return nil
}

// IsMember reports whether userID owns or plays in campaign id.
func (r *CampaignRepo) IsMember(ctx context.Context, id, userID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM campaigns c LEFT JOIN campaign_players cp ON cp.campaign_id = c.id AND cp.user_id = ?
		 WHERE c.id = ? AND (c.owner_id = ? OR cp.user_id IS NOT NULL) LIMIT 1`, userID, id, userID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}
