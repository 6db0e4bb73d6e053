package store

import "database/sql"

// Both the connection pool and a transaction must remain usable as a DBTX so
// integration tests can wrap stores in rolled-back transactions.
var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
