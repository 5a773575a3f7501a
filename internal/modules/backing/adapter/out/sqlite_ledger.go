package out

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"chemlab/internal/modules/backing/domain"
	"chemlab/internal/platform/tx"

	_ "modernc.org/sqlite"
)

// Fixed width keeps created_at sortable as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// OpenSQLite opens the ledger database. A single connection keeps shared
// in-memory databases alive and serializes writers.
func OpenSQLite(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(0)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

type SQLiteLedger struct {
	db *sql.DB
	tx tx.Manager
}

func NewSQLiteLedger(ctx context.Context, db *sql.DB) (*SQLiteLedger, error) {
	ledger := &SQLiteLedger{db: db, tx: tx.NewSQLManager(db)}
	if err := ledger.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return ledger, nil
}

func (s *SQLiteLedger) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS backings (
  id TEXT PRIMARY KEY,
  address TEXT NOT NULL,
  couple_id TEXT NOT NULL,
  milestone_id INTEGER NOT NULL,
  amount INTEGER NOT NULL,
  potential_winnings INTEGER NOT NULL,
  created_at TEXT NOT NULL,
  claimed INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS backings_address ON backings(address, created_at);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create backings table: %w", err)
	}
	return nil
}

// SaveAll inserts every record or none. It joins a transaction already
// carried on ctx.
func (s *SQLiteLedger) SaveAll(ctx context.Context, backings []domain.Backing) error {
	const stmt = `
INSERT INTO backings (id, address, couple_id, milestone_id, amount, potential_winnings, created_at, claimed)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);
`
	return s.tx.Within(ctx, func(ctx context.Context) error {
		exec := tx.ExecutorFrom(ctx, s.db)
		for _, b := range backings {
			if _, err := exec.ExecContext(ctx, stmt, bindBacking(b)...); err != nil {
				return fmt.Errorf("insert backing %s: %w", b.ID, err)
			}
		}
		return nil
	})
}

// Seed inserts records that are not stored yet.
func (s *SQLiteLedger) Seed(ctx context.Context, backings []domain.Backing) error {
	const stmt = `
INSERT INTO backings (id, address, couple_id, milestone_id, amount, potential_winnings, created_at, claimed)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO NOTHING;
`
	return s.tx.Within(ctx, func(ctx context.Context) error {
		exec := tx.ExecutorFrom(ctx, s.db)
		for _, b := range backings {
			if _, err := exec.ExecContext(ctx, stmt, bindBacking(b)...); err != nil {
				return fmt.Errorf("seed backing %s: %w", b.ID, err)
			}
		}
		return nil
	})
}

func (s *SQLiteLedger) ListByAddress(ctx context.Context, address string) ([]domain.Backing, error) {
	const query = `
SELECT id, address, couple_id, milestone_id, amount, potential_winnings, created_at, claimed
FROM backings
WHERE address = ?
ORDER BY created_at ASC, id ASC;
`
	rows, err := tx.ExecutorFrom(ctx, s.db).QueryContext(ctx, query, domain.NormalizeAddress(address))
	if err != nil {
		return nil, fmt.Errorf("query backings: %w", err)
	}
	defer rows.Close()

	out := []domain.Backing{}
	for rows.Next() {
		var (
			b         domain.Backing
			createdAt string
			claimed   int
		)
		if err := rows.Scan(&b.ID, &b.Address, &b.CoupleID, &b.MilestoneID, &b.Amount, &b.PotentialWinnings, &createdAt, &claimed); err != nil {
			return nil, fmt.Errorf("scan backing: %w", err)
		}
		b.CreatedAt, err = time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse backing time %q: %w", createdAt, err)
		}
		b.Claimed = claimed != 0
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate backings: %w", err)
	}
	return out, nil
}

func bindBacking(b domain.Backing) []any {
	claimed := 0
	if b.Claimed {
		claimed = 1
	}
	return []any{
		b.ID,
		domain.NormalizeAddress(b.Address),
		b.CoupleID,
		b.MilestoneID,
		b.Amount,
		b.PotentialWinnings,
		b.CreatedAt.UTC().Format(timeLayout),
		claimed,
	}
}
