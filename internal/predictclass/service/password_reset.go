package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/store"
	"github.com/aussiebroadwan/predictclass/pkg/cryptox"
	"github.com/aussiebroadwan/predictclass/pkg/slogx"
)

// ResetNotifier delivers a freshly issued reset token to its owner.
type ResetNotifier interface {
	NotifyReset(ctx context.Context, user domain.User, token string, expiresAt time.Time) error
}

// LogNotifier "delivers" reset tokens to the log. RevealToken includes the
// token itself and is only meant for local development.
type LogNotifier struct {
	RevealToken bool
}

func (n LogNotifier) NotifyReset(ctx context.Context, user domain.User, token string, expiresAt time.Time) error {
	attrs := []any{slog.String("user_id", user.ID), slog.Time("expires_at", expiresAt)}
	if n.RevealToken {
		attrs = append(attrs, slog.String("token", token))
	}
	slogx.FromContext(ctx).Info("password reset requested", attrs...)
	return nil
}

type PasswordResetService struct {
	Store    store.Store
	Ledger   *ResetTokenLedger
	Hasher   cryptox.PasswordHasher
	Notifier ResetNotifier
	Now      func() time.Time
}

// RequestReset issues a token for username and hands it to the notifier.
// Unknown usernames succeed silently so callers cannot probe for accounts.
func (s *PasswordResetService) RequestReset(ctx context.Context, username string) error {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, normalizeUsername(username))
	if errors.Is(err, store.ErrNotFound) {
		log.Info("password reset for unknown user ignored")
		return nil
	}
	if err != nil {
		return err
	}

	token, expiresAt, err := s.Ledger.Issue(ctx, user.ID)
	if err != nil {
		return err
	}

	if err := s.Notifier.NotifyReset(ctx, user, token, expiresAt); err != nil {
		return fmt.Errorf("notify reset: %w", err)
	}
	return nil
}

// CompleteReset redeems token and sets the owner's password in one
// transaction.
func (s *PasswordResetService) CompleteReset(ctx context.Context, token, newPassword string) error {
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := s.Hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.Ledger.ConsumeWith(ctx, token, func(tx store.Tx, ownerID string) error {
		if err := tx.Users().UpdatePasswordHash(ctx, ownerID, hash, clock(s.Now)); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		slogx.FromContext(ctx).Info("password reset completed", "user_id", ownerID)
		return nil
	})
}
