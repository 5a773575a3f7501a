package out

import (
	"context"

	"chemlab/internal/modules/couples/dto"
	"chemlab/internal/platform/httpx"
)

// APIClient reads couples from a running chemlab API.
type APIClient struct {
	client *httpx.Client
}

func NewAPIClient(client *httpx.Client) *APIClient {
	return &APIClient{client: client}
}

func (c *APIClient) ListCouples(ctx context.Context) (dto.ListOutput, error) {
	out := dto.ListOutput{}
	if err := c.client.GetJSON(ctx, "/api/couples", &out); err != nil {
		return dto.ListOutput{}, err
	}
	return out, nil
}

func (c *APIClient) GetCouple(ctx context.Context, id string) (dto.CoupleOutput, error) {
	out := dto.GetOutput{}
	if err := c.client.PostJSON(ctx, "/api/couples", dto.GetInput{CoupleID: id}, &out); err != nil {
		return dto.CoupleOutput{}, err
	}
	return out.Couple, nil
}
