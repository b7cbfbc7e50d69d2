package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/service"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/store"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/store/drivers/sqlite"
	"github.com/aussiebroadwan/predictclass/pkg/cryptox"
)

var testHasher = cryptox.PasswordHasher{Pepper: "test-pepper"}

// fakeClock is a settable clock for services that take Now.
type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func register(t *testing.T, s store.Store, username string, role domain.Role) domain.User {
	t.Helper()
	users := &service.UserService{Store: s, Hasher: testHasher}
	u, err := users.Register(context.Background(), service.RegisterInput{
		Username: username,
		Password: "correct horse",
		Role:     role,
	})
	require.NoError(t, err)
	return u
}
