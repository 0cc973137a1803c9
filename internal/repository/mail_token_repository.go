package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cypu/rulebook-api/internal/model"
)

// ErrTokenNotFound is returned when a mail token is unknown or expired.
var ErrTokenNotFound = fmt.Errorf("token %w", ErrNotFound)

// MailTokenRepo stores one-time tokens mailed for password resets.
type MailTokenRepo struct {
	db *sql.DB
}

func NewMailTokenRepo(db *sql.DB) *MailTokenRepo { return &MailTokenRepo{db: db} }

// Create stores t.  ID is filled in.
func (r *MailTokenRepo) Create(ctx context.Context, t *model.MailToken) error {
	t.ID = newID()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	const q = "INSERT INTO mail_tokens (id, user_id, token, created_at, expires_at) VALUES (?, ?, ?, ?, ?)"
	if _, err := r.db.ExecContext(ctx, q, t.ID, t.UserID, t.Token, t.CreatedAt, t.ExpiresAt); err != nil {
		if isMissingReference(err) {
			return fmt.Errorf("user %s: %w", t.UserID, ErrInvalidReference)
		}
		return err
	}
	return nil
}

// Get returns the live token matching userID and token.
func (r *MailTokenRepo) Get(ctx context.Context, userID, token string) (*model.MailToken, error) {
	const q = `SELECT id, user_id, token, created_at, expires_at FROM mail_tokens
	           WHERE user_id = ? AND token = ? LIMIT 1`
	var t model.MailToken
	if err := r.db.QueryRowContext(ctx, q, userID, token).Scan(&t.ID, &t.UserID, &t.Token, &t.CreatedAt, &t.ExpiresAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	if t.Expired(time.Now().UTC()) {
		return nil, ErrTokenNotFound
	}
	return &t, nil
}

// Delete consumes a token.
func (r *MailTokenRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "mail_tokens", id)
}

// DeleteForUser drops every token of a user, used before issuing a new one.
func (r *MailTokenRepo) DeleteForUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM mail_tokens WHERE user_id = ?", userID)
	return err
}

// DeleteExpired removes tokens past their window and returns how many went.
func (r *MailTokenRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM mail_tokens WHERE expires_at <= ?", now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
