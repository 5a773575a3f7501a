package out

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"chemlab/internal/modules/couples/domain"
	couplesout "chemlab/internal/modules/couples/port/out"
	"chemlab/internal/platform/clock"
)

//go:embed fixtures/couples.yaml
var embeddedCouples []byte

type fixtureFile struct {
	SchemaVersion int             `yaml:"schema_version"`
	Couples       []fixtureCouple `yaml:"couples"`
}

type fixturePartner struct {
	Name          string   `yaml:"name"`
	Age           int      `yaml:"age"`
	Bio           string   `yaml:"bio"`
	Avatar        string   `yaml:"avatar"`
	Interests     []string `yaml:"interests"`
	WalletAddress string   `yaml:"wallet_address"`
	Basename      string   `yaml:"basename"`
}

type fixtureMilestone struct {
	ID               int    `yaml:"id"`
	Type             string `yaml:"type"`
	Title            string `yaml:"title"`
	Description      string `yaml:"description"`
	Duration         string `yaml:"duration"`
	Multiplier       int    `yaml:"multiplier"`
	DeadlineInDays   int    `yaml:"deadline_in_days"`
	MinBackingAmount int64  `yaml:"min_backing_amount"`
	Resolved         bool   `yaml:"resolved"`
	Successful       *bool  `yaml:"successful"`
}

type fixtureCouple struct {
	ID             string             `yaml:"id"`
	MatchedDaysAgo int                `yaml:"matched_days_ago"`
	ChemistryScore int                `yaml:"chemistry_score"`
	Location       string             `yaml:"location"`
	Backstory      string             `yaml:"backstory"`
	Partner1       fixturePartner     `yaml:"partner1"`
	Partner2       fixturePartner     `yaml:"partner2"`
	Milestones     []fixtureMilestone `yaml:"milestones"`
}

// YAMLCoupleSource decodes couples from a fixture document. Dates are stored
// as offsets and resolved against the clock at load time.
type YAMLCoupleSource struct {
	clock clock.Clock
	raw   []byte
}

func NewEmbeddedCoupleSource(clk clock.Clock) couplesout.CoupleSource {
	return &YAMLCoupleSource{clock: clk, raw: embeddedCouples}
}

func NewFileCoupleSource(clk clock.Clock, path string) (couplesout.CoupleSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read couples fixture: %w", err)
	}
	return &YAMLCoupleSource{clock: clk, raw: raw}, nil
}

func (s *YAMLCoupleSource) LoadCouples(_ context.Context) ([]domain.Couple, error) {
	file := fixtureFile{}
	if err := yaml.Unmarshal(s.raw, &file); err != nil {
		return nil, fmt.Errorf("decode couples fixture: %w", err)
	}
	if file.SchemaVersion != domain.SchemaVersion {
		return nil, fmt.Errorf("unsupported couples fixture schema %d", file.SchemaVersion)
	}
	now := s.clock.Now()
	out := make([]domain.Couple, 0, len(file.Couples))
	for _, fc := range file.Couples {
		c := domain.Couple{
			ID:             fc.ID,
			Partner1:       toPartner(fc.Partner1),
			Partner2:       toPartner(fc.Partner2),
			MatchedAt:      now.Add(-days(fc.MatchedDaysAgo)),
			ChemistryScore: fc.ChemistryScore,
			Backstory:      fc.Backstory,
			Location:       fc.Location,
		}
		for _, fm := range fc.Milestones {
			c.Milestones = append(c.Milestones, domain.Milestone{
				ID:          fm.ID,
				Kind:        domain.MilestoneKind(fm.Type),
				Title:       fm.Title,
				Description: fm.Description,
				Duration:    domain.Duration(fm.Duration),
				Multiplier:  fm.Multiplier,
				Deadline:    now.Add(days(fm.DeadlineInDays)),
				MinStake:    fm.MinBackingAmount,
				Resolved:    fm.Resolved,
				Successful:  fm.Successful,
			})
		}
		out = append(out, c)
	}
	return out, nil
}

func toPartner(p fixturePartner) domain.Partner {
	partner := domain.Partner{
		Name:      p.Name,
		Age:       p.Age,
		Bio:       p.Bio,
		Avatar:    p.Avatar,
		Interests: p.Interests,
	}
	if p.WalletAddress != "" || p.Basename != "" {
		partner.Wallet = &domain.WalletIdentity{Address: p.WalletAddress, Basename: p.Basename}
	}
	return partner
}

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}
