package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const alphaVantageURL = "https://www.alphavantage.co/query"

type AlphaVantageClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewAlphaVantageClient(apiKey string) *AlphaVantageClient {
	return &AlphaVantageClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *AlphaVantageClient) Name() string {
	return "Alpha Vantage API"
}

// DailyBars returns up to n of the most recent daily bars, most recent first.
func (c *AlphaVantageClient) DailyBars(ctx context.Context, symbol string, n int) ([]Bar, error) {
	q := url.Values{}
	q.Set("function", "TIME_SERIES_DAILY")
	q.Set("symbol", symbol)
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

	var raw avDailyResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}

	if len(raw.Series) == 0 {
		if msg := raw.message(); msg != "" {
			return nil, fmt.Errorf("alphavantage: %s: %w", msg, ErrNoData)
		}
		return nil, ErrNoData
	}

	return latestBars(raw.Series, n)
}

// latestBars picks the n most recent dates by descending string sort, which
// is chronological for YYYY-MM-DD keys.
func latestBars(series map[string]avDay, n int) ([]Bar, error) {
	dates := make([]string, 0, len(series))
	for d := range series {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > n {
		dates = dates[:n]
	}

	bars := make([]Bar, 0, len(dates))
	for _, d := range dates {
		bar, err := series[d].toBar(d)
		if err != nil {
			return nil, fmt.Errorf("alphavantage %s: %w", d, err)
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

type avDailyResponse struct {
	Series      map[string]avDay `json:"Time Series (Daily)"`
	Note        string           `json:"Note"`
	Information string           `json:"Information"`
	Error       string           `json:"Error Message"`
}

func (r avDailyResponse) message() string {
	switch {
	case r.Error != "":
		return r.Error
	case r.Note != "":
		return r.Note
	}
	return r.Information
}

type avDay struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

func (d avDay) toBar(date string) (Bar, error) {
	open, err := decimal.NewFromString(d.Open)
	if err != nil {
		return Bar{}, fmt.Errorf("open: %w", err)
	}
	high, err := decimal.NewFromString(d.High)
	if err != nil {
		return Bar{}, fmt.Errorf("high: %w", err)
	}
	low, err := decimal.NewFromString(d.Low)
	if err != nil {
		return Bar{}, fmt.Errorf("low: %w", err)
	}
	closePrice, err := decimal.NewFromString(d.Close)
	if err != nil {
		return Bar{}, fmt.Errorf("close: %w", err)
	}
	volume, err := strconv.ParseInt(d.Volume, 10, 64)
	if err != nil {
		return Bar{}, fmt.Errorf("volume: %w", err)
	}

	return Bar{
		Date:   date,
		Open:   open,
		High:   high,
		Low:    low,
		Close:  closePrice,
		Volume: volume,
	}, nil
}
