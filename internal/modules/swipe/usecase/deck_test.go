package usecase_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	backingout "chemlab/internal/modules/backing/adapter/out"
	backingservice "chemlab/internal/modules/backing/service"
	backingusecase "chemlab/internal/modules/backing/usecase"
	couplesout "chemlab/internal/modules/couples/adapter/out"
	couplesdto "chemlab/internal/modules/couples/dto"
	couplesservice "chemlab/internal/modules/couples/service"
	couplesusecase "chemlab/internal/modules/couples/usecase"
	"chemlab/internal/modules/swipe/domain"
	"chemlab/internal/modules/swipe/dto"
	"chemlab/internal/modules/swipe/usecase"
	"chemlab/internal/platform/clock"
	"chemlab/internal/platform/id"
	"chemlab/internal/platform/tx"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func twoCouples() []couplesdto.CoupleOutput {
	return []couplesdto.CoupleOutput{
		{ID: "a", Partner1: couplesdto.PartnerOutput{Name: "Emma"}, Partner2: couplesdto.PartnerOutput{Name: "Jake"}},
		{ID: "b", Partner1: couplesdto.PartnerOutput{Name: "Maya"}, Partner2: couplesdto.PartnerOutput{Name: "Leo"}},
	}
}

func kinds(events []dto.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

func TestCommitOpensBackingAndRecordsVerdict(t *testing.T) {
	t.Parallel()
	deck := usecase.NewDeck(clock.Fixed{At: now}, dto.Viewport{Width: 80, Height: 24})
	deck.SetCouples(twoCouples())

	events := deck.Fling(dto.DecisionCommit)
	assert.Equal(t, []string{dto.EventDecided, dto.EventCommitted}, kinds(events))
	assert.Equal(t, "a", events[1].CoupleID)

	frame := deck.Frame()
	assert.True(t, frame.ModalVisible)
	assert.True(t, frame.SwipeInProgress)
	assert.Equal(t, "a", frame.SelectedCoupleID)
	assert.Equal(t, 0, frame.Index)
	assert.Equal(t, []dto.Verdict{{CoupleID: "a", Decision: dto.DecisionCommit, At: now}}, deck.Verdicts())

	// gestures are blocked while the modal is open
	assert.Nil(t, deck.Fling(dto.DecisionReject))

	events = deck.Tick(domain.ExitDuration)
	assert.Equal(t, []string{dto.EventAdvanced}, kinds(events))
	current, ok := deck.Current()
	require.True(t, ok)
	assert.Equal(t, "b", current.ID)
	_, ok = deck.Peek()
	assert.False(t, ok)

	deck.CloseBacking()
	frame = deck.Frame()
	assert.False(t, frame.ModalVisible)
	assert.Empty(t, frame.SelectedCoupleID)
}

func TestPointerDragDrivesDeck(t *testing.T) {
	t.Parallel()
	deck := usecase.NewDeck(clock.Fixed{At: now}, dto.Viewport{Width: 80, Height: 24})
	deck.SetCouples(twoCouples())
	start := now

	assert.Nil(t, deck.Move(5, 5, start), "moves before a press are ignored")
	deck.Press(40, 12, start)
	deck.Move(50, 12, start.Add(20*time.Millisecond))
	frame := deck.Frame()
	assert.Equal(t, "dragging", frame.Phase)
	assert.InDelta(t, 10, frame.Current.X, 1e-9)
	assert.InDelta(t, 1, frame.Current.Rotation, 1e-9)

	events := deck.Release(20, 12, start.Add(40*time.Millisecond))
	assert.Equal(t, []string{dto.EventDecided}, kinds(events))
	assert.Equal(t, dto.DecisionReject, events[0].Decision)
	assert.False(t, deck.Frame().ModalVisible)

	deck.Tick(domain.ExitDuration)
	events = deck.Fling(dto.DecisionSkip)
	assert.Equal(t, []string{dto.EventDecided}, kinds(events))
	events = deck.Tick(domain.ExitDuration)
	assert.Equal(t, []string{dto.EventExhausted}, kinds(events))
	assert.Equal(t, "exhausted", deck.Frame().Phase)
	assert.Equal(t, 1, deck.Frame().Index)

	summary := deck.Summary()
	assert.Equal(t, dto.Summary{Reviewed: 2, Rejected: 1, Skipped: 1}, summary)

	deck.SetCouples(twoCouples())
	assert.Equal(t, "idle", deck.Frame().Phase)
	assert.Equal(t, 0, deck.Frame().Index)
}

// Two couples: commit the first, back one milestone with $1.00 and let the
// exit finish.
func TestCommitAndBackAdvancesToSecondCouple(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clk := clock.Fixed{At: now}

	couples := couplesusecase.NewInteractor(couplesservice.NewCatalogService(couplesout.NewEmbeddedCoupleSource(clk)), clk)
	list, err := couples.ListCouples(ctx)
	require.NoError(t, err)

	db, err := backingout.OpenSQLite(filepath.Join(t.TempDir(), "e2e.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	ledger, err := backingout.NewSQLiteLedger(ctx, db)
	require.NoError(t, err)
	backing := backingusecase.NewInteractor(backingservice.NewBackingService(
		backingout.NewCouplesCatalogAdapter(couples),
		ledger,
		backingout.NewSimulatedTransferer(0, nil),
		backingout.NewCouplesTallyAdapter(couples),
		tx.NewSQLManager(db),
		clk,
		id.UUID{},
		nil,
	))

	deck := usecase.NewDeck(clk, dto.Viewport{Width: 80, Height: 24})
	deck.SetCouples(list.Couples[:2])

	events := deck.Fling(dto.DecisionCommit)
	require.Equal(t, []string{dto.EventDecided, dto.EventCommitted}, kinds(events))
	committed := events[1].CoupleID

	flow, err := backing.StartFlow(ctx, committed)
	require.NoError(t, err)
	var target int
	for _, m := range flow.Snapshot().Milestones {
		if m.MinStake <= 1_000_000 {
			target = m.MilestoneID
		}
	}
	require.NotZero(t, target)
	_, err = flow.Toggle(target)
	require.NoError(t, err)
	require.NoError(t, flow.SetStake(target, 1_000_000))

	input, err := flow.Begin("0xE2E0000000000000000000000000000000000000")
	require.NoError(t, err)
	out, err := backing.Submit(ctx, input)
	require.NoError(t, err)
	deck.AddBackings(out.Backings)
	deck.CloseBacking()

	deck.Tick(domain.ExitDuration)

	got := deck.Backings()
	require.Len(t, got, 1)
	assert.Equal(t, int64(1_000_000), got[0].Amount)
	assert.Equal(t, int64(1_000_000), got[0].PotentialWinnings)
	assert.Equal(t, 1, deck.Frame().Index)
	current, ok := deck.Current()
	require.True(t, ok)
	assert.Equal(t, list.Couples[1].ID, current.ID)

	summary := deck.Summary()
	assert.Equal(t, 1, summary.Committed)
	assert.Equal(t, int64(1_000_000), summary.TotalStaked)
}
