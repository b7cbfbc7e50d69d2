package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/store"
)

type resetTokensRepo struct {
	c conn
}

const resetTokenColumns = `id, token_hash, owner_id, expires_at, consumed_at, created_at`

func scanResetToken(row interface{ Scan(...any) error }) (domain.ResetToken, error) {
	var (
		t                domain.ResetToken
		expires, created int64
		consumed         sql.NullInt64
	)
	if err := row.Scan(&t.ID, &t.TokenHash, &t.OwnerID, &expires, &consumed, &created); err != nil {
		return domain.ResetToken{}, err
	}
	t.ExpiresAt = fromNanos(expires)
	t.ConsumedAt = fromNullNanos(consumed)
	t.CreatedAt = fromNanos(created)
	return t, nil
}

func (r *resetTokensRepo) CreateResetToken(ctx context.Context, t domain.ResetToken) error {
	return r.c.insert(ctx,
		`INSERT INTO reset_tokens (`+resetTokenColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.TokenHash, t.OwnerID, toNanos(t.ExpiresAt), toNullNanos(t.ConsumedAt), toNanos(t.CreatedAt),
	)
}

func (r *resetTokensRepo) GetResetTokenByHash(ctx context.Context, hash string) (domain.ResetToken, error) {
	t, err := scanResetToken(r.c.queryRow(ctx,
		`SELECT `+resetTokenColumns+` FROM reset_tokens WHERE token_hash = ?`, hash))
	if err != nil {
		return domain.ResetToken{}, mapNotFound(err)
	}
	return t, nil
}

func (r *resetTokensRepo) ConsumeResetToken(ctx context.Context, hash string, now time.Time) (domain.ResetToken, error) {
	ts := toNanos(now)
	t, err := scanResetToken(r.c.queryRow(ctx, `
		UPDATE reset_tokens SET consumed_at = ?
		WHERE token_hash = ? AND consumed_at IS NULL AND expires_at >= ?
		RETURNING `+resetTokenColumns,
		ts, hash, ts,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ResetToken{}, store.ErrNotMatched
	}
	if err != nil {
		return domain.ResetToken{}, err
	}
	return t, nil
}

func (r *resetTokensRepo) DeleteExpiredResetTokens(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.c.exec(ctx, `DELETE FROM reset_tokens WHERE expires_at < ?`, toNanos(cutoff))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
