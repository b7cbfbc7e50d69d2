package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/store"
	"github.com/aussiebroadwan/predictclass/pkg/cryptox"
	"github.com/aussiebroadwan/predictclass/pkg/idx"
	"github.com/aussiebroadwan/predictclass/pkg/slogx"
)

// ResetTokenTTL is how long a password reset token stays redeemable.
const ResetTokenTTL = time.Hour

// ResetTokenLedger issues and redeems single-use password reset tokens.
// Only the SHA-256 fingerprint of a token is stored.
type ResetTokenLedger struct {
	Store store.Store
	Now   func() time.Time

	// NewToken defaults to 256 bits from crypto/rand, base64url encoded.
	NewToken func() (string, error)
}

// Issue mints a token for ownerID valid for ResetTokenTTL. Earlier tokens
// for the same owner stay valid until they expire or are used.
func (l *ResetTokenLedger) Issue(ctx context.Context, ownerID string) (string, time.Time, error) {
	token, err := l.newToken()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("generate reset token: %w", err)
	}

	now := clock(l.Now)
	rec := domain.ResetToken{
		ID:        idx.NewAt(now).String(),
		TokenHash: cryptox.FingerprintToken(token),
		OwnerID:   ownerID,
		ExpiresAt: now.Add(ResetTokenTTL),
		CreatedAt: now,
	}
	if err := l.Store.ResetTokens().CreateResetToken(ctx, rec); err != nil {
		return "", time.Time{}, fmt.Errorf("store reset token: %w", err)
	}

	slogx.FromContext(ctx).Info("reset token issued", "owner_id", ownerID, "expires_at", rec.ExpiresAt)
	return token, rec.ExpiresAt, nil
}

// IsExpired reports whether expiresAt lies strictly in the past. A token is
// still good at the exact instant it expires.
func (l *ResetTokenLedger) IsExpired(expiresAt time.Time) bool {
	return clock(l.Now).After(expiresAt)
}

// ValidateAndConsume redeems token and returns its owner. Exactly one caller
// can redeem a given token; everyone else gets ErrResetTokenUsed.
func (l *ResetTokenLedger) ValidateAndConsume(ctx context.Context, token string) (string, error) {
	return l.consume(ctx, l.Store, token)
}

// ConsumeWith redeems token and runs fn with the owner in the same
// transaction. If fn fails the token stays unused.
func (l *ResetTokenLedger) ConsumeWith(
	ctx context.Context,
	token string,
	fn func(tx store.Tx, ownerID string) error,
) error {
	return l.Store.WithTx(ctx, func(tx store.Tx) error {
		ownerID, err := l.consume(ctx, tx, token)
		if err != nil {
			return err
		}
		return fn(tx, ownerID)
	})
}

func (l *ResetTokenLedger) consume(ctx context.Context, s store.Store, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidResetToken
	}

	hash := cryptox.FingerprintToken(token)
	rec, err := s.ResetTokens().ConsumeResetToken(ctx, hash, clock(l.Now))
	if err == nil {
		slogx.FromContext(ctx).Info("reset token consumed", "owner_id", rec.OwnerID)
		return rec.OwnerID, nil
	}
	if !errors.Is(err, store.ErrNotMatched) {
		return "", fmt.Errorf("consume reset token: %w", err)
	}

	// The guard failed. Work out which part of it.
	existing, err := s.ResetTokens().GetResetTokenByHash(ctx, hash)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return "", ErrInvalidResetToken
	case err != nil:
		return "", fmt.Errorf("load reset token: %w", err)
	case existing.Consumed():
		return "", ErrResetTokenUsed
	default:
		return "", ErrResetTokenExpired
	}
}

func (l *ResetTokenLedger) newToken() (string, error) {
	if l.NewToken != nil {
		return l.NewToken()
	}
	return cryptox.GenerateToken(cryptox.TokenSize256)
}
