package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/db/schema"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TestDatabaseURLEnv names the variable pointing integration tests at a
// disposable Postgres database.
const TestDatabaseURLEnv = "TEST_DATABASE_URL"

// TestDB provides testing utilities for database operations
type TestDB struct {
	t    *testing.T
	pool *pgxpool.Pool
}

// NewTestDB connects to TEST_DATABASE_URL and skips the test when it is unset
// or unreachable. The pool is closed on cleanup.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()
	dsn := os.Getenv(TestDatabaseURLEnv)
	if dsn == "" {
		t.Skipf("%s not set", TestDatabaseURLEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Skipf("cannot create pool: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("database unreachable: %v", err)
	}

	tdb := &TestDB{t: t, pool: pool}
	t.Cleanup(tdb.Close)
	return tdb
}

// Pool returns the underlying pool
func (d *TestDB) Pool() *pgxpool.Pool {
	return d.pool
}

// Queries returns sqlc queries bound to the pool
func (d *TestDB) Queries() *db.Queries {
	return db.New(d.pool)
}

// SetupSchema recreates every table in a fresh public schema
func (d *TestDB) SetupSchema() {
	d.t.Helper()
	ctx := context.Background()
	if _, err := d.pool.Exec(ctx, "DROP SCHEMA public CASCADE; CREATE SCHEMA public;"); err != nil {
		d.t.Fatalf("failed to reset schema: %v", err)
	}
	if _, err := d.pool.Exec(ctx, schema.SQL); err != nil {
		d.t.Fatalf("failed to apply schema: %v", err)
	}
}

// Truncate empties the given tables
func (d *TestDB) Truncate(tables ...string) {
	d.t.Helper()
	if len(tables) == 0 {
		return
	}
	stmt := fmt.Sprintf("TRUNCATE %s RESTART IDENTITY CASCADE", strings.Join(tables, ", "))
	if _, err := d.pool.Exec(context.Background(), stmt); err != nil {
		d.t.Fatalf("failed to truncate %v: %v", tables, err)
	}
}

// Close closes the test database connection
func (d *TestDB) Close() {
	if d.pool != nil {
		d.pool.Close()
		d.pool = nil
	}
}
