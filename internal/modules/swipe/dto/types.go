package dto

import "time"

const (
	DecisionNone   = "none"
	DecisionReject = "reject"
	DecisionCommit = "commit"
	DecisionSkip   = "skip"
)

const (
	EventDecided   = "decided"
	EventCommitted = "committed"
	EventAdvanced  = "advanced"
	EventExhausted = "exhausted"
)

type Sample struct {
	Active bool
	DX     float64
	DY     float64
	VX     float64
	VY     float64
}

type Viewport struct {
	Width  float64
	Height float64
}

type Transform struct {
	X        float64
	Y        float64
	Rotation float64
	Scale    float64
	Opacity  float64
}

type NextCard struct {
	Scale   float64
	Opacity float64
	YOffset float64
}

// Event reports a controller transition. CoupleID is the couple at Index
// when the event was raised.
type Event struct {
	Kind     string
	Index    int
	Decision string
	CoupleID string
}

type Badges struct {
	Back float64
	Pass float64
	Skip float64
}

type Frame struct {
	Phase            string
	Animating        bool
	Index            int
	Length           int
	SwipeInProgress  bool
	ModalVisible     bool
	SelectedCoupleID string
	Current          Transform
	Badges           Badges
	Next             NextCard
	HasNext          bool
}

type Verdict struct {
	CoupleID string    `json:"coupleId"`
	Decision string    `json:"decision"`
	At       time.Time `json:"at"`
}

type Summary struct {
	Reviewed          int   `json:"reviewed"`
	Committed         int   `json:"committed"`
	Rejected          int   `json:"rejected"`
	Skipped           int   `json:"skipped"`
	Backings          int   `json:"backings"`
	TotalStaked       int64 `json:"totalStaked"`
	PotentialWinnings int64 `json:"potentialWinnings"`
}
