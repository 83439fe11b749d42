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

const (
	alphaVantageURL  = "https://www.alphavantage.co/query"
	neutralSentiment = "Neutral"
)

type AlphaVantageClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewAlphaVantageClient(apiKey string) *AlphaVantageClient {
	return &AlphaVantageClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *AlphaVantageClient) Name() string {
	return "Alpha Vantage News API"
}

// Fetch requests limit items from the sentiment feed. Items without an
// overall label are reported as Neutral.
func (c *AlphaVantageClient) Fetch(ctx context.Context, ticker string, limit int) ([]Article, error) {
	q := url.Values{}
	q.Set("function", "NEWS_SENTIMENT")
	q.Set("tickers", ticker)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, alphaVantageURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw avResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}
	if raw.Feed == nil {
		return nil, ErrNoData
	}

	articles := make([]Article, 0, len(raw.Feed))
	for _, item := range raw.Feed {
		publishedAt, err := time.Parse("20060102T150405", item.TimePublished)
		if err != nil {
			publishedAt = time.Time{}
		}

		sentiment := item.OverallSentimentLabel
		if sentiment == "" {
			sentiment = neutralSentiment
		}

		articles = append(articles, Article{
			Headline:    item.Title,
			URL:         item.URL,
			Publisher:   item.Source,
			PublishedAt: publishedAt,
			Sentiment:   sentiment,
		})
	}

	return articles, nil
}

type avResponse struct {
	Feed []avFeedItem `json:"feed"`
}

type avFeedItem struct {
	Title                 string `json:"title"`
	URL                   string `json:"url"`
	Source                string `json:"source"`
	TimePublished         string `json:"time_published"`
	OverallSentimentLabel string `json:"overall_sentiment_label"`
}
