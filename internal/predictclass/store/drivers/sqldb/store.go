package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/store"
)

// Store is the non-transactional root store. Drivers embed it and add
// ApplyMigrations.
type Store struct {
	db *sql.DB
	d  Dialect
}

func New(db *sql.DB, d Dialect) *Store {
	return &Store{db: db, d: d}
}

// DB exposes the pool to drivers for migrations.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &txStore{tx: tx, c: conn{q: tx, d: s.d}}, nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Rollback after Commit is a harmless ErrTxDone.
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) conn() conn { return conn{q: s.db, d: s.d} }

func (s *Store) Users() store.Users             { return &usersRepo{c: s.conn()} }
func (s *Store) Classes() store.Classes         { return &classesRepo{c: s.conn()} }
func (s *Store) Games() store.Games             { return &gamesRepo{c: s.conn()} }
func (s *Store) Predictions() store.Predictions { return &predictionsRepo{c: s.conn()} }
func (s *Store) ResetTokens() store.ResetTokens { return &resetTokensRepo{c: s.conn()} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func (c conn) mapInsertErr(err error) error {
	if err != nil && c.d.IsUniqueViolation != nil && c.d.IsUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

// Timestamps are stored as unix nanoseconds so comparisons are exact and
// behave identically in every engine.

func toNanos(t time.Time) int64 { return t.UnixNano() }

func fromNanos(n int64) time.Time { return time.Unix(0, n).UTC() }

func toNullNanos(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixNano(), Valid: true}
}

func fromNullNanos(n sql.NullInt64) *time.Time {
	if !n.Valid {
		return nil
	}
	t := fromNanos(n.Int64)
	return &t
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
