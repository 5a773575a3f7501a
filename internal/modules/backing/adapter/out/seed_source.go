package out

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"chemlab/internal/modules/backing/domain"
	"chemlab/internal/platform/clock"
)

//go:embed fixtures/backings.yaml
var seedYAML []byte

type seedFile struct {
	SchemaVersion int          `yaml:"schema_version"`
	Backings      []seedRecord `yaml:"backings"`
}

type seedRecord struct {
	ID          string `yaml:"id"`
	Address     string `yaml:"address"`
	CoupleID    string `yaml:"couple_id"`
	MilestoneID int    `yaml:"milestone_id"`
	Amount      int64  `yaml:"amount"`
	HoursAgo    int    `yaml:"hours_ago"`
	Claimed     bool   `yaml:"claimed"`
}

// SeedBackings returns the demo backings, dated relative to clk.
func SeedBackings(clk clock.Clock) ([]domain.Backing, error) {
	file := seedFile{}
	if err := yaml.Unmarshal(seedYAML, &file); err != nil {
		return nil, fmt.Errorf("decode seed backings: %w", err)
	}
	if file.SchemaVersion != 1 {
		return nil, fmt.Errorf("unsupported seed schema version %d", file.SchemaVersion)
	}
	now := clk.Now()
	out := make([]domain.Backing, 0, len(file.Backings))
	for _, r := range file.Backings {
		out = append(out, domain.Backing{
			ID:                r.ID,
			Address:           domain.NormalizeAddress(r.Address),
			CoupleID:          r.CoupleID,
			MilestoneID:       r.MilestoneID,
			Amount:            r.Amount,
			PotentialWinnings: r.Amount,
			CreatedAt:         now.Add(-time.Duration(r.HoursAgo) * time.Hour),
			Claimed:           r.Claimed,
		})
	}
	return out, nil
}
