package domain

import (
	"fmt"
	"strings"
	"time"

	"chemlab/internal/platform/basename"
	"chemlab/internal/platform/clock"
)

const SchemaVersion = 1

type MilestoneKind string

const (
	MilestoneMessages50    MilestoneKind = "MESSAGES_50"
	MilestoneFirstDate     MilestoneKind = "FIRST_DATE"
	MilestoneThreeDates    MilestoneKind = "THREE_DATES"
	MilestoneStillChatting MilestoneKind = "STILL_CHATTING"
)

func (k MilestoneKind) Validate() error {
	switch k {
	case MilestoneMessages50, MilestoneFirstDate, MilestoneThreeDates, MilestoneStillChatting:
		return nil
	default:
		return fmt.Errorf("unsupported milestone kind %q", string(k))
	}
}

type Duration string

const (
	DurationShort  Duration = "short"
	DurationMedium Duration = "medium"
	DurationLong   Duration = "long"
)

func (d Duration) Validate() error {
	switch d {
	case DurationShort, DurationMedium, DurationLong:
		return nil
	default:
		return fmt.Errorf("unsupported duration %q", string(d))
	}
}

// WalletIdentity is the optional on-chain identity of a partner.
type WalletIdentity struct {
	Address  string
	Basename string
}

// DisplayName prefers a valid basename, then a shortened address.
func (w WalletIdentity) DisplayName() string {
	return basename.DisplayName(w.Basename, w.Address)
}

type Partner struct {
	Name      string
	Age       int
	Bio       string
	Avatar    string
	Interests []string
	Wallet    *WalletIdentity
}

// Identity returns the partner's wallet display name and whether a wallet
// is attached at all.
func (p Partner) Identity() (string, bool) {
	if p.Wallet == nil {
		return "Unknown", false
	}
	return p.Wallet.DisplayName(), true
}

type Milestone struct {
	ID           int
	Kind         MilestoneKind
	Title        string
	Description  string
	Duration     Duration
	Multiplier   int
	Deadline     time.Time
	MinStake     int64
	TotalBacked  int64
	TotalBackers int
	Resolved     bool
	Successful   *bool
}

func (m Milestone) Validate() error {
	if m.ID <= 0 {
		return fmt.Errorf("milestone id must be positive")
	}
	if err := m.Kind.Validate(); err != nil {
		return err
	}
	if err := m.Duration.Validate(); err != nil {
		return err
	}
	if m.Multiplier <= 0 {
		return fmt.Errorf("milestone %d: multiplier must be positive", m.ID)
	}
	if m.MinStake <= 0 {
		return fmt.Errorf("milestone %d: minimum stake must be positive", m.ID)
	}
	if !m.Resolved && m.Successful != nil {
		return fmt.Errorf("milestone %d: success flag set before resolution", m.ID)
	}
	return nil
}

// Won reports whether the milestone resolved successfully.
func (m Milestone) Won() bool {
	return m.Resolved && m.Successful != nil && *m.Successful
}

// TimeRemaining renders the distance to the deadline in whole days.
func (m Milestone) TimeRemaining(now time.Time) string {
	diff := m.Deadline.Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	switch {
	case days <= 0:
		return "Expired"
	case days == 1:
		return "1 day left"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}

type Couple struct {
	ID             string
	Partner1       Partner
	Partner2       Partner
	MatchedAt      time.Time
	ChemistryScore int
	Backstory      string
	Location       string
	Milestones     []Milestone
}

func (c Couple) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("couple id is required")
	}
	if strings.TrimSpace(c.Partner1.Name) == "" || strings.TrimSpace(c.Partner2.Name) == "" {
		return fmt.Errorf("couple %s: both partner names are required", c.ID)
	}
	if c.ChemistryScore < 0 || c.ChemistryScore > 100 {
		return fmt.Errorf("couple %s: chemistry score %d out of range", c.ID, c.ChemistryScore)
	}
	seen := map[int]struct{}{}
	for _, m := range c.Milestones {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("couple %s: %w", c.ID, err)
		}
		if _, dup := seen[m.ID]; dup {
			return fmt.Errorf("couple %s: duplicate milestone id %d", c.ID, m.ID)
		}
		seen[m.ID] = struct{}{}
	}
	return nil
}

func (c Couple) Names() string {
	return c.Partner1.Name + " & " + c.Partner2.Name
}

func (c Couple) Milestone(id int) (Milestone, bool) {
	for _, m := range c.Milestones {
		if m.ID == id {
			return m, true
		}
	}
	return Milestone{}, false
}

// MatchedAgo renders "1 day ago" / "N days ago".
func (c Couple) MatchedAgo(now time.Time) string {
	days := clock.DaysBetween(c.MatchedAt, now)
	if days == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", days)
}

type ChemistryBand string

const (
	BandElectric ChemistryBand = "electric"
	BandStrong   ChemistryBand = "strong"
	BandWarm     ChemistryBand = "warm"
	BandCool     ChemistryBand = "cool"
)

func BandFor(score int) ChemistryBand {
	switch {
	case score >= 90:
		return BandElectric
	case score >= 80:
		return BandStrong
	case score >= 70:
		return BandWarm
	default:
		return BandCool
	}
}

// Tally is the running stake total recorded against one milestone.
type Tally struct {
	TotalBacked  int64
	TotalBackers int
}
