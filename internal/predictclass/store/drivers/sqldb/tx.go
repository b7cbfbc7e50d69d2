package sqldb

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/store"
)

type txStore struct {
	tx *sql.Tx
	c  conn
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // caller commits or rolls back; the pool stays open

// Ping is a no-op; the connection is held by the transaction.
func (t *txStore) Ping(context.Context) error { return nil }

func (t *txStore) Tx(context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(context.Context, func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx

func (t *txStore) Users() store.Users             { return &usersRepo{c: t.c} }
func (t *txStore) Classes() store.Classes         { return &classesRepo{c: t.c} }
func (t *txStore) Games() store.Games             { return &gamesRepo{c: t.c} }
func (t *txStore) Predictions() store.Predictions { return &predictionsRepo{c: t.c} }
func (t *txStore) ResetTokens() store.ResetTokens { return &resetTokensRepo{c: t.c} }
