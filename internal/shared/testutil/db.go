package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"awreports/internal/storage"
)

// NewTestDB opens a migrated SQLite database in the test's temp directory and
// loads ds into it when ds is not nil. The database is closed on cleanup.
func NewTestDB(t testing.TB, ds *storage.Dataset) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "reports.db")
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	if err := storage.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	if ds != nil {
		if err := storage.Load(ctx, db, ds); err != nil {
			t.Fatalf("load test dataset: %v", err)
		}
	}
	return db
}
