package dto

import "time"

type PartnerOutput struct {
	Name          string   `json:"name"`
	Age           int      `json:"age"`
	Bio           string   `json:"bio"`
	Avatar        string   `json:"avatar"`
	Interests     []string `json:"interests"`
	WalletAddress string   `json:"walletAddress,omitempty"`
	Basename      string   `json:"basename,omitempty"`
	DisplayName   string   `json:"displayName"`
}

type MilestoneOutput struct {
	ID               int       `json:"id"`
	Type             string    `json:"type"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Duration         string    `json:"duration"`
	Multiplier       int       `json:"multiplier"`
	Deadline         time.Time `json:"deadline"`
	TimeRemaining    string    `json:"timeRemaining"`
	MinBackingAmount int64     `json:"minBackingAmount"`
	TotalBacked      int64     `json:"totalBacked"`
	TotalBackers     int       `json:"totalBackers"`
	Resolved         bool      `json:"resolved"`
	Successful       *bool     `json:"successful,omitempty"`
}

type CoupleOutput struct {
	ID             string            `json:"id"`
	Partner1       PartnerOutput     `json:"partner1"`
	Partner2       PartnerOutput     `json:"partner2"`
	MatchedAt      time.Time         `json:"matchedAt"`
	MatchedAgo     string            `json:"matchedAgo"`
	ChemistryScore int               `json:"chemistryScore"`
	ChemistryBand  string            `json:"chemistryBand"`
	Backstory      string            `json:"backstory"`
	Location       string            `json:"location"`
	Milestones     []MilestoneOutput `json:"milestones"`
}

func (c CoupleOutput) Names() string {
	return c.Partner1.Name + " & " + c.Partner2.Name
}

func (c CoupleOutput) Milestone(id int) (MilestoneOutput, bool) {
	for _, m := range c.Milestones {
		if m.ID == id {
			return m, true
		}
	}
	return MilestoneOutput{}, false
}

type ListOutput struct {
	Couples []CoupleOutput `json:"couples"`
	Total   int            `json:"total"`
}

type GetInput struct {
	CoupleID string `json:"coupleId"`
}

type GetOutput struct {
	Couple CoupleOutput `json:"couple"`
}

type TallyInput struct {
	Address     string
	CoupleID    string
	MilestoneID int
	Amount      int64
}
