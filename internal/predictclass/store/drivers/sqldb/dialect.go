// Package sqldb is the database/sql implementation of store.Store shared by
// the sqlite and postgres drivers. Queries are written with '?' placeholders
// and rebound per dialect.
package sqldb

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
)

// Dialect captures what differs between the SQL engines we run on.
type Dialect struct {
	Name string

	// Numbered switches '?' placeholders to $1, $2, ... (postgres).
	Numbered bool

	// IsUniqueViolation reports whether err is a unique constraint failure.
	IsUniqueViolation func(error) bool
}

func (d Dialect) rebind(query string) string {
	if !d.Numbered {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// conn binds a querier to a dialect. Every repo goes through it.
type conn struct {
	q querier
	d Dialect
}

func (c conn) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.q.ExecContext(ctx, c.d.rebind(query), args...)
}

func (c conn) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return c.q.QueryContext(ctx, c.d.rebind(query), args...)
}

func (c conn) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return c.q.QueryRowContext(ctx, c.d.rebind(query), args...)
}

// insert runs an INSERT and maps unique violations to store.ErrAlreadyExists.
func (c conn) insert(ctx context.Context, query string, args ...any) error {
	_, err := c.exec(ctx, query, args...)
	return c.mapInsertErr(err)
}
