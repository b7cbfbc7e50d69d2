package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/store"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/store/drivers/sqlite"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/store/storetest"
)

func TestConformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		s, err := sqlite.NewStore(":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		require.NoError(t, s.ApplyMigrations())
		return s
	})
}

func TestMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "predictclass.db")

	s, err := sqlite.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Close())

	s, err = sqlite.NewStore(path)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(t.Context()))
}

func TestWithPragmas(t *testing.T) {
	require.Equal(t, ":memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", sqlite.WithPragmas(":memory:"))
	require.Equal(t,
		"file:/data/p.db?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		sqlite.WithPragmas("file:/data/p.db?_pragma=journal_mode(WAL)"))
}

// Each pooled connection must come up with the pragmas, not only the first.
func TestPragmasSurviveReconnect(t *testing.T) {
	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "predictclass.db"))
	require.NoError(t, err)
	defer s.Close()

	db := s.DB()
	for range 2 {
		var fk, timeout int
		require.NoError(t, db.QueryRowContext(t.Context(), `PRAGMA foreign_keys`).Scan(&fk))
		require.NoError(t, db.QueryRowContext(t.Context(), `PRAGMA busy_timeout`).Scan(&timeout))
		require.Equal(t, 1, fk)
		require.Equal(t, 5000, timeout)

		// Drop the idle connection so the next query dials a new one.
		db.SetMaxIdleConns(0)
		db.SetMaxIdleConns(1)
	}
}
