package out

import (
	"context"
	"net/url"

	"chemlab/internal/modules/backing/domain"
	"chemlab/internal/modules/backing/dto"
	"chemlab/internal/platform/httpx"
)

// APILedger records backings on a running chemlab API. The server tallies
// milestone totals when it records.
type APILedger struct {
	client *httpx.Client
}

func NewAPILedger(client *httpx.Client) *APILedger {
	return &APILedger{client: client}
}

func (l *APILedger) SaveAll(ctx context.Context, backings []domain.Backing) error {
	type batchKey struct{ address, coupleID string }
	batches := map[batchKey][]dto.ItemInput{}
	order := []batchKey{}
	for _, b := range backings {
		k := batchKey{address: domain.NormalizeAddress(b.Address), coupleID: b.CoupleID}
		if _, ok := batches[k]; !ok {
			order = append(order, k)
		}
		batches[k] = append(batches[k], dto.ItemInput{MilestoneID: b.MilestoneID, Amount: b.Amount})
	}
	for _, k := range order {
		body := dto.SubmitInput{CoupleID: k.coupleID, Items: batches[k]}
		out := dto.RecordOutput{}
		if err := l.client.PostJSON(ctx, backingsPath(k.address), body, &out); err != nil {
			return err
		}
	}
	return nil
}

func (l *APILedger) ListByAddress(ctx context.Context, address string) ([]domain.Backing, error) {
	out := dto.ListOutput{}
	if err := l.client.GetJSON(ctx, backingsPath(address), &out); err != nil {
		return nil, err
	}
	records := make([]domain.Backing, 0, len(out.Backings))
	for _, b := range out.Backings {
		records = append(records, domain.Backing{
			ID:                b.ID,
			Address:           b.Address,
			CoupleID:          b.CoupleID,
			MilestoneID:       b.MilestoneID,
			Amount:            b.Amount,
			PotentialWinnings: b.PotentialWinnings,
			CreatedAt:         b.Timestamp,
			Claimed:           b.Claimed,
		})
	}
	return records, nil
}

func backingsPath(address string) string {
	return "/api/backings/" + url.PathEscape(domain.NormalizeAddress(address))
}
