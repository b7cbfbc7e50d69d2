package sqldb

import (
	"context"
	"time"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/store"
)

type usersRepo struct {
	c conn
}

const userColumns = `id, username, display_name, password_hash, role, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u                  domain.User
		role               string
		created, updatedAt int64
	)
	if err := row.Scan(&u.ID, &u.Username, &u.DisplayName, &u.PasswordHash, &role, &created, &updatedAt); err != nil {
		return domain.User{}, err
	}
	u.Role = domain.Role(role)
	u.CreatedAt = fromNanos(created)
	u.UpdatedAt = fromNanos(updatedAt)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := scanUser(r.c.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	u, err := scanUser(r.c.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	return r.c.insert(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.DisplayName, u.PasswordHash, string(u.Role),
		toNanos(u.CreatedAt), toNanos(u.UpdatedAt),
	)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, hash string, at time.Time) error {
	res, err := r.c.exec(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		hash, toNanos(at), userID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var n int64
	if err := r.c.queryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}
