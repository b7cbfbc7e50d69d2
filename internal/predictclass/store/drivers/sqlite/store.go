package sqlite

import (
	"database/sql"
	"errors"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/store/drivers/sqldb"
)

// Store is the sqlite-backed store.Store.
type Store struct {
	*sqldb.Store
}

// Dialect is the sqlite flavour of sqldb.
var Dialect = sqldb.Dialect{
	Name:              "sqlite",
	IsUniqueViolation: isUniqueViolation,
}

// connPragmas are applied by the driver to every connection it opens.
const connPragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// NewStore opens dsn (a file path, a file: URI or ":memory:"). The pool is
// limited to a single connection: sqlite allows one writer at a time and
// ":memory:" databases are per connection.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", WithPragmas(dsn))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	return &Store{Store: sqldb.New(db, Dialect)}, nil
}

// WithPragmas appends the per-connection pragmas (foreign keys, busy
// timeout) to dsn's query string.
func WithPragmas(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + connPragmas
	}
	return dsn + "?" + connPragmas
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		// Extended codes disabled on this connection.
		return strings.Contains(se.Error(), "UNIQUE constraint failed")
	}
	return false
}
