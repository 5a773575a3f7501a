package tx

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "tx.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if _, err := db.Exec(`CREATE TABLE items (name TEXT NOT NULL)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

func count(t *testing.T, db *sql.DB) int {
	t.Helper()
	n := 0
	if err := db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestSQLManagerRollsBackOnError(t *testing.T) {
	t.Parallel()
	db := openDB(t)
	m := NewSQLManager(db)
	boom := errors.New("boom")
	err := m.Within(context.Background(), func(ctx context.Context) error {
		if _, err := ExecutorFrom(ctx, db).ExecContext(ctx, `INSERT INTO items (name) VALUES ('a')`); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if n := count(t, db); n != 0 {
		t.Fatalf("expected rollback, found %d rows", n)
	}
}

func TestSQLManagerCommitsAndJoinsNested(t *testing.T) {
	t.Parallel()
	db := openDB(t)
	m := NewSQLManager(db)
	err := m.Within(context.Background(), func(ctx context.Context) error {
		if _, err := ExecutorFrom(ctx, db).ExecContext(ctx, `INSERT INTO items (name) VALUES ('a')`); err != nil {
			return err
		}
		return m.Within(ctx, func(inner context.Context) error {
			_, err := ExecutorFrom(inner, db).ExecContext(inner, `INSERT INTO items (name) VALUES ('b')`)
			return err
		})
	})
	if err != nil {
		t.Fatalf("within: %v", err)
	}
	if n := count(t, db); n != 2 {
		t.Fatalf("expected 2 committed rows, got %d", n)
	}
}
