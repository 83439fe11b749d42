package market

import (
	"context"
	"fmt"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnHubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnHubClient(apiKey string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnHubClient{client: client}
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}

func (c *FinnHubClient) SearchSymbol(ctx context.Context, query string) (string, error) {
	res, _, err := c.client.SymbolSearch(ctx).Q(query).Execute()
	if err != nil {
		return "", fmt.Errorf("finnhub symbol search: %w", err)
	}
	if res.Result == nil {
		return "", ErrNoData
	}
	for _, info := range *res.Result {
		if info.Symbol != nil && *info.Symbol != "" {
			return *info.Symbol, nil
		}
	}
	return "", ErrNoData
}
