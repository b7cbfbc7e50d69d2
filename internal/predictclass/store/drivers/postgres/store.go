package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/store/drivers/sqldb"
)

// uniqueViolation is SQLSTATE 23505.
const uniqueViolation pq.ErrorCode = "23505"

// Store is the postgres-backed store.Store.
type Store struct {
	*sqldb.Store
}

// Dialect is the postgres flavour of sqldb.
var Dialect = sqldb.Dialect{
	Name:              "postgres",
	Numbered:          true,
	IsUniqueViolation: isUniqueViolation,
}

// NewStore connects to dsn (a postgres:// URL or key=value string) and
// checks the connection.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{Store: sqldb.New(db, Dialect)}, nil
}

func isUniqueViolation(err error) bool {
	var pe *pq.Error
	return errors.As(err, &pe) && pe.Code == uniqueViolation
}
