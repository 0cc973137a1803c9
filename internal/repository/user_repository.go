package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/cypu/rulebook-api/internal/model"
)

// ErrRoleNotFound is returned when a role name does not exist.
var ErrRoleNotFound = fmt.Errorf("role %w", ErrNotFound)

// UserRepo persists accounts and their role links.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// NormalizeMail lower-cases and trims an address the way it is stored.
func NormalizeMail(mail string) string {
	return strings.ToLower(strings.TrimSpace(mail))
}

const userColumns = "id, mail, password_hash, name, lang, theme, scale, verified, created_at, updated_at"

// Create inserts u with the given role ids.  u.ID is filled in.  A mail that
// is already registered yields ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, u *model.User, roleIDs []string) error {
	u.ID = newID()
	u.Mail = NormalizeMail(u.Mail)
	if u.Lang == "" {
		u.Lang = "en"
	}
	if u.Theme == "" {
		u.Theme = "dark"
	}
	if u.Scale == 0 {
		u.Scale = 1
	}
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		const q = `INSERT INTO users (id, mail, password_hash, name, lang, theme, scale, verified)
		           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
		if _, err := tx.ExecContext(ctx, q, u.ID, u.Mail, u.PasswordHash, u.Name, u.Lang, u.Theme, u.Scale, u.Verified); err != nil {
			if isDuplicateKey(err) {
				return fmt.Errorf("mail %s: %w", u.Mail, ErrDuplicate)
			}
			return err
		}
		if err := setRoles(ctx, tx, u.ID, roleIDs); err != nil {
			return err
		}
		roles, err := rolesOf(ctx, tx, u.ID)
		if err != nil {
			return err
		}
		u.Roles = roles
		return nil
	})
}

func scanUser(row interface{ Scan(...any) error }, u *model.User) error {
	return row.Scan(&u.ID, &u.Mail, &u.PasswordHash, &u.Name, &u.Lang, &u.Theme, &u.Scale, &u.Verified, &u.CreatedAt, &u.UpdatedAt)
}

// GetByID fetches a user with roles resolved.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.getBy(ctx, "id", id)
}

// GetByMail fetches a user by normalized mail.
func (r *UserRepo) GetByMail(ctx context.Context, mail string) (*model.User, error) {
	return r.getBy(ctx, "mail", NormalizeMail(mail))
}

func (r *UserRepo) getBy(ctx context.Context, col, val string) (*model.User, error) {
	var u model.User
	q := "SELECT " + userColumns + " FROM users WHERE " + col + " = ? LIMIT 1"
	if err := scanUser(r.db.QueryRowContext(ctx, q, val), &u); err != nil {
		return nil, notFoundOr(err, "user", val)
	}
	roles, err := rolesOf(ctx, r.db, u.ID)
	if err != nil {
		return nil, err
	}
	u.Roles = roles
	return &u, nil
}

// List returns every user ordered by mail.
func (r *UserRepo) List(ctx context.Context) ([]*model.User, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY mail")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.User
	for rows.Next() {
		u := new(model.User)
		if err := scanUser(rows, u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, u := range out {
		if u.Roles, err = rolesOf(ctx, r.db, u.ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// UpdateProfile writes the user-editable preferences.
func (r *UserRepo) UpdateProfile(ctx context.Context, u *model.User) error {
	const q = `UPDATE users SET name = ?, lang = ?, theme = ?, scale = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	return r.expectOne(ctx, u.ID, q, u.Name, u.Lang, u.Theme, u.Scale, u.ID)
}

// UpdatePassword stores a new hash.
func (r *UserRepo) UpdatePassword(ctx context.Context, id, hash string) error {
	const q = "UPDATE users SET password_hash = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	return r.expectOne(ctx, id, q, hash, id)
}

// SetVerified flips the verified flag.
func (r *UserRepo) SetVerified(ctx context.Context, id string, verified bool) error {
	const q = "UPDATE users SET verified = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	return r.expectOne(ctx, id, q, verified, id)
}

func (r *UserRepo) expectOne(ctx context.Context, id, q string, args ...any) error {
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// MySQL reports zero affected rows when values are unchanged.
		var exists int
		if err := r.db.QueryRowContext(ctx, "SELECT 1 FROM users WHERE id = ?", id).Scan(&exists); err != nil {
			return notFoundOr(err, "user", id)
		}
	}
	return nil
}

// SetRoles replaces the roles of a user.
func (r *UserRepo) SetRoles(ctx context.Context, id string, roleIDs []string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var exists int
		if err := tx.QueryRowContext(ctx, "SELECT 1 FROM users WHERE id = ? FOR UPDATE", id).Scan(&exists); err != nil {
			return notFoundOr(err, "user", id)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM user_roles WHERE user_id = ?", id); err != nil {
			return err
		}
		return setRoles(ctx, tx, id, roleIDs)
	})
}

// Delete removes a user; role links, mail tokens, owned campaigns and
// characters go with it through foreign key cascades.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "users", id)
}

func setRoles(ctx context.Context, tx *sql.Tx, userID string, roleIDs []string) error {
	for _, rid := range roleIDs {
		if _, err := tx.ExecContext(ctx, "INSERT IGNORE INTO user_roles (user_id, role_id) VALUES (?, ?)", userID, rid); err != nil {
			if isMissingReference(err) {
				return fmt.Errorf("role %s: %w", rid, ErrInvalidReference)
			}
			return err
		}
	}
	return nil
}

func rolesOf(ctx context.Context, q querier, userID string) ([]model.Role, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT r.id, r.name FROM roles r JOIN user_roles ur ON ur.role_id = r.id
		 WHERE ur.user_id = ? ORDER BY r.name`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Role{}
	for rows.Next() {
		var role model.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		out = append(out, role)
	}
	return out, rows.Err()
}

// RoleRepo reads the seeded roles.
type RoleRepo struct {
	db *sql.DB
}

func NewRoleRepo(db *sql.DB) *RoleRepo { return &RoleRepo{db: db} }

// List returns every role.
func (r *RoleRepo) List(ctx context.Context) ([]model.Role, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM roles ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Role
	for rows.Next() {
		var role model.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		out = append(out, role)
	}
	return out, rows.Err()
}

// GetByNames resolves role names.  Any unknown name yields ErrRoleNotFound.
func (r *RoleRepo) GetByNames(ctx context.Context, names []string) ([]model.Role, error) {
	if len(names) == 0 {
		return nil, nil
	}
	q := "SELECT id, name FROM roles WHERE name IN (" + placeholders(len(names)) + ")"
	rows, err := r.db.QueryContext(ctx, q, stringArgs(names)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	found := map[string]model.Role{}
	for rows.Next() {
		var role model.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		found[role.Name] = role
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	out := make([]model.Role, 0, len(names))
	seen := map[string]bool{}
	for _, n := range names {
		role, ok := found[n]
		if !ok {
			return nil, fmt.Errorf("%q: %w", n, ErrRoleNotFound)
		}
		if !seen[n] {
			seen[n] = true
			out = append(out, role)
		}
	}
	return out, nil
}

// GetByName resolves a single role.
func (r *RoleRepo) GetByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	if err := r.db.QueryRowContext(ctx, "SELECT id, name FROM roles WHERE name = ?", name).Scan(&role.ID, &role.Name); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%q: %w", name, ErrRoleNotFound)
		}
		return nil, err
	}
	return &role, nil
}
