//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/stretchr/testify/require"
)

const itemsSchema = `
	CREATE TABLE IF NOT EXISTS items (
		id bigserial PRIMARY KEY,
		name text NOT NULL CHECK (name <> ''),
		created_at timestamptz NOT NULL DEFAULT now()
	)
`

// getTestDB opens a connection to the database named by DATABASE_URL and
// ensures the items schema exists. Tests are skipped when no database is
// configured, so the unit suite stays runnable everywhere.
func getTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set; skipping database integration test")
	}

	db, err := sql.Open("pgx", url)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, db.PingContext(ctx))

	_, err = db.ExecContext(ctx, itemsSchema)
	require.NoError(t, err)

	return db
}

// withTx runs fn inside a transaction that is always rolled back, keeping
// tests isolated from each other and from any existing data.
func withTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err)
	defer func() {
		_ = tx.Rollback()
	}()

	fn(t, tx)
}
