package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const yahooSearchURL = "https://query2.finance.yahoo.com/v1/finance/search"

type YahooClient struct {
	httpClient *http.Client
}

func NewYahooClient() *YahooClient {
	return &YahooClient{httpClient: &http.Client{Timeout: 10 * time.Second}}
}

func (c *YahooClient) Name() string {
	return "Yahoo Finance News"
}

// Fetch returns headlines only; Yahoo carries no sentiment.
func (c *YahooClient) Fetch(ctx context.Context, ticker string, limit int) ([]Article, error) {
	q := url.Values{}
	q.Set("q", ticker)
	q.Set("quotesCount", "0")
	q.Set("newsCount", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, yahooSearchURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo news fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo news: status %d", resp.StatusCode)
	}

	var raw yahooNewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("yahoo news decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.News))
	for _, item := range raw.News {
		publisher := item.Publisher
		if publisher == "" {
			publisher = "Yahoo"
		}

		var publishedAt time.Time
		if item.ProviderPublishTime > 0 {
			publishedAt = time.Unix(item.ProviderPublishTime, 0)
		}

		articles = append(articles, Article{
			Headline:    item.Title,
			URL:         item.Link,
			Publisher:   publisher,
			PublishedAt: publishedAt,
		})
	}

	return articles, nil
}

type yahooNewsResponse struct {
	News []yahooNewsItem `json:"news"`
}

type yahooNewsItem struct {
	Title               string `json:"title"`
	Publisher           string `json:"publisher"`
	Link                string `json:"link"`
	ProviderPublishTime int64  `json:"providerPublishTime"`
}
