package in

import (
	"time"

	backingdto "chemlab/internal/modules/backing/dto"
	couplesdto "chemlab/internal/modules/couples/dto"
	"chemlab/internal/modules/swipe/dto"
)

// Deck is the application state of one swipe session. All mutation goes
// through these operations.
type Deck interface {
	SetCouples(couples []couplesdto.CoupleOutput)
	Couples() []couplesdto.CoupleOutput
	Current() (couplesdto.CoupleOutput, bool)
	Peek() (couplesdto.CoupleOutput, bool)

	Handle(sample dto.Sample) []dto.Event
	Press(x, y float64, at time.Time) []dto.Event
	Move(x, y float64, at time.Time) []dto.Event
	Release(x, y float64, at time.Time) []dto.Event
	Fling(decision string) []dto.Event
	Tick(dt time.Duration) []dto.Event
	Resize(vp dto.Viewport)
	Frame() dto.Frame

	OpenBacking(coupleID string) error
	CloseBacking()
	AddBackings(backings []backingdto.BackingOutput)
	RecordVerdict(coupleID, decision string)
	Backings() []backingdto.BackingOutput
	Verdicts() []dto.Verdict
	Summary() dto.Summary
}
