package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const massiveNewsURL = "https://api.massive.com/v2/reference/news"

type MassiveClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewMassiveClient(apiKey string) *MassiveClient {
	return &MassiveClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *MassiveClient) Name() string {
	return "Massive News API"
}

// Fetch uses the per-ticker insight, when present, as the article sentiment.
func (c *MassiveClient) Fetch(ctx context.Context, ticker string, limit int) ([]Article, error) {
	q := url.Values{}
	q.Set("ticker", ticker)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("order", "desc")
	q.Set("sort", "published_utc")
	q.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, massiveNewsURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("massive fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw massiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("massive decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.Results))
	for _, item := range raw.Results {
		publishedAt, err := time.Parse(time.RFC3339, item.PublishedUTC)
		if err != nil {
			publishedAt = time.Time{}
		}

		articles = append(articles, Article{
			Headline:    item.Title,
			URL:         item.ArticleURL,
			Publisher:   item.Publisher.Name,
			PublishedAt: publishedAt,
			Sentiment:   item.sentimentFor(ticker),
		})
	}

	return articles, nil
}

type massiveResponse struct {
	Results []massiveResult `json:"results"`
}

type massiveResult struct {
	Title        string           `json:"title"`
	ArticleURL   string           `json:"article_url"`
	PublishedUTC string           `json:"published_utc"`
	Publisher    massivePublisher `json:"publisher"`
	Insights     []massiveInsight `json:"insights"`
}

type massivePublisher struct {
	Name string `json:"name"`
}

type massiveInsight struct {
	Ticker    string `json:"ticker"`
	Sentiment string `json:"sentiment"`
}

func (r massiveResult) sentimentFor(ticker string) string {
	for _, in := range r.Insights {
		if strings.EqualFold(in.Ticker, ticker) && in.Sentiment != "" {
			r, size := utf8.DecodeRuneInString(in.Sentiment)
			return string(unicode.ToUpper(r)) + strings.ToLower(in.Sentiment[size:])
		}
	}
	return ""
}
