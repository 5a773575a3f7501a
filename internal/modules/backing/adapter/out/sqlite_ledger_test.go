package out

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chemlab/internal/modules/backing/domain"
	"chemlab/internal/platform/clock"
)

func newLedger(t *testing.T) *SQLiteLedger {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	ledger, err := NewSQLiteLedger(context.Background(), db)
	require.NoError(t, err)
	return ledger
}

func TestSaveAllIsAllOrNothing(t *testing.T) {
	t.Parallel()
	ledger := newLedger(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, ledger.SaveAll(ctx, []domain.Backing{
		{ID: "x", Address: "0xAA", CoupleID: "1", MilestoneID: 1, Amount: 500_000, PotentialWinnings: 500_000, CreatedAt: at},
	}))
	err := ledger.SaveAll(ctx, []domain.Backing{
		{ID: "y", Address: "0xaa", CoupleID: "1", MilestoneID: 2, Amount: 1_000_000, PotentialWinnings: 1_000_000, CreatedAt: at},
		{ID: "x", Address: "0xaa", CoupleID: "1", MilestoneID: 3, Amount: 1_500_000, PotentialWinnings: 1_500_000, CreatedAt: at},
	})
	require.Error(t, err)

	records, err := ledger.ListByAddress(ctx, "0xAA")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "x", records[0].ID)
	assert.Equal(t, "0xaa", records[0].Address)
	assert.True(t, records[0].CreatedAt.Equal(at))
}

func TestSeedIsIdempotent(t *testing.T) {
	t.Parallel()
	ledger := newLedger(t)
	ctx := context.Background()
	seeds, err := SeedBackings(clock.Fixed{At: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	require.Len(t, seeds, 2)

	require.NoError(t, ledger.Seed(ctx, seeds))
	require.NoError(t, ledger.Seed(ctx, seeds))

	records, err := ledger.ListByAddress(ctx, "0x1234567890123456789012345678901234567890")
	require.NoError(t, err)
	require.Len(t, records, 2)
	// ordered by creation: the day-old backing first
	assert.Equal(t, "seed-2", records[0].ID)
	assert.Equal(t, int64(2_000_000), records[0].Amount)
	assert.Equal(t, records[0].Amount, records[0].PotentialWinnings)
}

func TestSimulatedTransfererHonoursCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewSimulatedTransferer(time.Hour, nil).Transfer(ctx, "0xaa", 1_000_000)
	assert.True(t, errors.Is(err, context.Canceled))

	assert.NoError(t, NewSimulatedTransferer(0, nil).Transfer(context.Background(), "0xaa", 1_000_000))
}
