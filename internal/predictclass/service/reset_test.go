package service_test

import (
	"context"
	"encoding/base64"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/service"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/store"
	"github.com/aussiebroadwan/predictclass/pkg/cryptox"
)

func newLedger(t *testing.T) (*service.ResetTokenLedger, *fakeClock, domain.User) {
	t.Helper()
	s := newTestStore(t)
	clk := newFakeClock()
	owner := register(t, s, "owner", domain.RoleStudent)
	return &service.ResetTokenLedger{Store: s, Now: clk.Now}, clk, owner
}

func TestIssueReturns256BitTokenValidForAnHour(t *testing.T) {
	ctx := context.Background()
	l, clk, owner := newLedger(t)

	token, expiresAt, err := l.Issue(ctx, owner.ID)
	require.NoError(t, err)
	require.Equal(t, clk.Now().Add(time.Hour), expiresAt)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	require.Len(t, raw, 32)

	rec, err := l.Store.ResetTokens().GetResetTokenByHash(ctx, cryptox.FingerprintToken(token))
	require.NoError(t, err)
	require.Equal(t, owner.ID, rec.OwnerID)
	require.NotEqual(t, token, rec.TokenHash)
}

func TestIsExpiredBoundary(t *testing.T) {
	l, clk, _ := newLedger(t)
	expiresAt := clk.Now().Add(time.Hour)

	clk.Advance(time.Hour - time.Nanosecond)
	require.False(t, l.IsExpired(expiresAt), "before expiry")

	clk.Advance(time.Nanosecond)
	require.False(t, l.IsExpired(expiresAt), "exactly at expiry is not expired")

	clk.Advance(time.Nanosecond)
	require.True(t, l.IsExpired(expiresAt), "one nanosecond after")
}

func TestValidateAndConsume(t *testing.T) {
	ctx := context.Background()

	t.Run("valid then used", func(t *testing.T) {
		l, _, owner := newLedger(t)
		token, _, err := l.Issue(ctx, owner.ID)
		require.NoError(t, err)

		got, err := l.ValidateAndConsume(ctx, token)
		require.NoError(t, err)
		require.Equal(t, owner.ID, got)

		_, err = l.ValidateAndConsume(ctx, token)
		require.ErrorIs(t, err, service.ErrResetTokenUsed)
	})

	t.Run("unknown and empty", func(t *testing.T) {
		l, _, _ := newLedger(t)

		_, err := l.ValidateAndConsume(ctx, "never-issued")
		require.ErrorIs(t, err, service.ErrInvalidResetToken)

		_, err = l.ValidateAndConsume(ctx, "")
		require.ErrorIs(t, err, service.ErrInvalidResetToken)
	})

	t.Run("redeemable at the exact expiry instant", func(t *testing.T) {
		l, clk, owner := newLedger(t)
		token, _, err := l.Issue(ctx, owner.ID)
		require.NoError(t, err)

		clk.Advance(service.ResetTokenTTL)
		_, err = l.ValidateAndConsume(ctx, token)
		require.NoError(t, err)
	})

	t.Run("expired just after", func(t *testing.T) {
		l, clk, owner := newLedger(t)
		token, _, err := l.Issue(ctx, owner.ID)
		require.NoError(t, err)

		clk.Advance(service.ResetTokenTTL + time.Nanosecond)
		_, err = l.ValidateAndConsume(ctx, token)
		require.ErrorIs(t, err, service.ErrResetTokenExpired)

		// Still expired, not "used": the failed attempt consumed nothing.
		_, err = l.ValidateAndConsume(ctx, token)
		require.ErrorIs(t, err, service.ErrResetTokenExpired)
	})

	t.Run("used wins over expired", func(t *testing.T) {
		l, clk, owner := newLedger(t)
		token, _, err := l.Issue(ctx, owner.ID)
		require.NoError(t, err)

		_, err = l.ValidateAndConsume(ctx, token)
		require.NoError(t, err)

		clk.Advance(2 * time.Hour)
		_, err = l.ValidateAndConsume(ctx, token)
		require.ErrorIs(t, err, service.ErrResetTokenUsed)
	})

	t.Run("earlier tokens stay valid", func(t *testing.T) {
		l, _, owner := newLedger(t)
		first, _, err := l.Issue(ctx, owner.ID)
		require.NoError(t, err)
		second, _, err := l.Issue(ctx, owner.ID)
		require.NoError(t, err)
		require.NotEqual(t, first, second)

		_, err = l.ValidateAndConsume(ctx, first)
		require.NoError(t, err)
		_, err = l.ValidateAndConsume(ctx, second)
		require.NoError(t, err)
	})
}

func TestValidateAndConsumeConcurrent(t *testing.T) {
	ctx := context.Background()
	l, _, owner := newLedger(t)
	token, _, err := l.Issue(ctx, owner.ID)
	require.NoError(t, err)

	const n = 10
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = l.ValidateAndConsume(ctx, token)
		}()
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		require.ErrorIs(t, err, service.ErrResetTokenUsed)
	}
	require.Equal(t, 1, wins)
}

func TestConsumeWithRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	l, _, owner := newLedger(t)
	token, _, err := l.Issue(ctx, owner.ID)
	require.NoError(t, err)

	err = l.ConsumeWith(ctx, token, func(store.Tx, string) error { return context.DeadlineExceeded })
	require.ErrorIs(t, err, context.DeadlineExceeded)

	var got string
	require.NoError(t, l.ConsumeWith(ctx, token, func(_ store.Tx, ownerID string) error {
		got = ownerID
		return nil
	}))
	require.Equal(t, owner.ID, got)
}

// captureNotifier records what would have been delivered.
type captureNotifier struct {
	user  domain.User
	token string
	calls int
}

func (n *captureNotifier) NotifyReset(_ context.Context, u domain.User, token string, _ time.Time) error {
	n.user, n.token = u, token
	n.calls++
	return nil
}

func TestPasswordResetFlow(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	clk := newFakeClock()
	user := register(t, s, "forgetful", domain.RoleTeacher)

	notifier := &captureNotifier{}
	resets := &service.PasswordResetService{
		Store:    s,
		Ledger:   &service.ResetTokenLedger{Store: s, Now: clk.Now},
		Hasher:   testHasher,
		Notifier: notifier,
		Now:      clk.Now,
	}
	sessions := &service.SessionService{Store: s, Signer: newSigner(t), Hasher: testHasher}

	t.Run("unknown user is silent", func(t *testing.T) {
		require.NoError(t, resets.RequestReset(ctx, "nobody"))
		require.Zero(t, notifier.calls)
	})

	require.NoError(t, resets.RequestReset(ctx, " Forgetful "))
	require.Equal(t, 1, notifier.calls)
	require.Equal(t, user.ID, notifier.user.ID)

	require.ErrorIs(t, resets.CompleteReset(ctx, notifier.token, "short"), service.ErrWeakPassword)
	require.NoError(t, resets.CompleteReset(ctx, notifier.token, "brand new password"))
	require.ErrorIs(t, resets.CompleteReset(ctx, notifier.token, "another new password"), service.ErrResetTokenUsed)

	_, err := sessions.Login(ctx, "forgetful", "correct horse")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, err = sessions.Login(ctx, "forgetful", "brand new password")
	require.NoError(t, err)

	t.Run("expired token leaves password unchanged", func(t *testing.T) {
		require.NoError(t, resets.RequestReset(ctx, "forgetful"))

		clk.Advance(service.ResetTokenTTL + time.Second)
		require.ErrorIs(t, resets.CompleteReset(ctx, notifier.token, "never applied"), service.ErrResetTokenExpired)

		_, err := sessions.Login(ctx, "forgetful", "brand new password")
		require.NoError(t, err)
		_, err = sessions.Login(ctx, "forgetful", "never applied")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}
