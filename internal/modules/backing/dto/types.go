package dto

import "time"

type ItemInput struct {
	MilestoneID int   `json:"milestoneId"`
	Amount      int64 `json:"amount"`
}

// SubmitInput accepts either a single milestone stake or a batch in Items.
type SubmitInput struct {
	Address     string      `json:"-"`
	CoupleID    string      `json:"coupleId"`
	MilestoneID int         `json:"milestoneId,omitempty"`
	Amount      int64       `json:"amount,omitempty"`
	Items       []ItemInput `json:"items,omitempty"`
}

// AllItems folds the single-stake form into the batch form.
func (in SubmitInput) AllItems() []ItemInput {
	if len(in.Items) > 0 {
		return in.Items
	}
	if in.MilestoneID == 0 && in.Amount == 0 {
		return nil
	}
	return []ItemInput{{MilestoneID: in.MilestoneID, Amount: in.Amount}}
}

type BackingOutput struct {
	ID                string    `json:"id"`
	Address           string    `json:"address"`
	CoupleID          string    `json:"coupleId"`
	MilestoneID       int       `json:"milestoneId"`
	Amount            int64     `json:"amount"`
	PotentialWinnings int64     `json:"potentialWinnings"`
	Timestamp         time.Time `json:"timestamp"`
	Claimed           bool      `json:"claimed"`
}

type ListOutput struct {
	Backings               []BackingOutput `json:"backings"`
	Total                  int             `json:"total"`
	TotalBacked            int64           `json:"totalBacked"`
	TotalPotentialWinnings int64           `json:"totalPotentialWinnings"`
}

type SubmitOutput struct {
	Backings   []BackingOutput `json:"backings"`
	TotalStake int64           `json:"totalStake"`
}

// RecordOutput answers the record endpoint. Backing is the first record of
// the request; Backings lists all of them for batch requests.
type RecordOutput struct {
	Success  bool            `json:"success"`
	Backing  BackingOutput   `json:"backing"`
	Backings []BackingOutput `json:"backings,omitempty"`
}

type ClaimableOutput struct {
	BackingID      string `json:"backingId"`
	CoupleID       string `json:"coupleId"`
	CoupleNames    string `json:"coupleNames"`
	MilestoneID    int    `json:"milestoneId"`
	MilestoneTitle string `json:"milestoneTitle"`
	Amount         int64  `json:"amount"`
	Payout         int64  `json:"payout"`
}

type TermsOutput struct {
	MilestoneID int    `json:"milestoneId"`
	Title       string `json:"title"`
	MinStake    int64  `json:"minStake"`
	Multiplier  int    `json:"multiplier"`
	Resolved    bool   `json:"resolved"`
	Selected    bool   `json:"selected"`
	Stake       int64  `json:"stake"`
}

// FlowOutput is a snapshot of an open backing flow.
type FlowOutput struct {
	CoupleID          string        `json:"coupleId"`
	CoupleNames       string        `json:"coupleNames"`
	Milestones        []TermsOutput `json:"milestones"`
	TotalStake        int64         `json:"totalStake"`
	PotentialWinnings int64         `json:"potentialWinnings"`
	ProjectedPayout   int64         `json:"projectedPayout"`
	Pending           bool          `json:"pending"`
	CanSubmit         bool          `json:"canSubmit"`
	LastError         string        `json:"lastError,omitempty"`
}
