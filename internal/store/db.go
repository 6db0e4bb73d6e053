package store

import (
	"context"
	"database/sql"
)

// DBTX is the slice of database/sql that item persistence needs: row-returning
// queries only, since every item statement uses RETURNING and reads its result.
// Both *sql.DB and *sql.Tx satisfy it, so a store can run against a connection
// pool in production or inside a transaction in tests.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
