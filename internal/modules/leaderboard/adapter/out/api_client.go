package out

import (
	"context"

	"chemlab/internal/modules/leaderboard/dto"
	"chemlab/internal/platform/httpx"
)

type APIClient struct {
	client *httpx.Client
}

func NewAPIClient(client *httpx.Client) *APIClient {
	return &APIClient{client: client}
}

func (c *APIClient) Board(ctx context.Context) (dto.BoardOutput, error) {
	out := dto.BoardOutput{}
	if err := c.client.GetJSON(ctx, "/api/leaderboard", &out); err != nil {
		return dto.BoardOutput{}, err
	}
	return out, nil
}
