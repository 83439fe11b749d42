package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/shopspring/decimal"
)

func avDayPayload(close string) map[string]string {
	return map[string]string{
		"1. open":   "100.00",
		"2. high":   "110.50",
		"3. low":    "95.25",
		"4. close":  close,
		"5. volume": "1200300",
	}
}

func TestAlphaVantageDailyBars(t *testing.T) {
	var gotQuery string
	series := map[string]interface{}{}
	for day := 1; day <= 35; day++ {
		series[fmt.Sprintf("2026-01-%02d", day%31+1)] = avDayPayload(fmt.Sprintf("%d.00", 100+day))
	}
	series["2025-12-31"] = avDayPayload("99.00")
	series["2026-02-27"] = avDayPayload("250.00")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"Meta Data":           map[string]string{"2. Symbol": "AAPL"},
			"Time Series (Daily)": series,
		})
	}))
	defer srv.Close()

	client := &AlphaVantageClient{apiKey: "test-key", httpClient: testHTTPClient(srv.URL)}

	bars, err := client.DailyBars(context.Background(), "AAPL", 30)

	assert.Equal(t, nil, err)
	assert.Equal(t, 30, len(bars))
	assert.Equal(t, "2026-02-27", bars[0].Date)
	assert.Equal(t, "250", bars[0].Close.String())
	assert.Equal(t, true, bars[1].Date < bars[0].Date)
	assert.Equal(t, true, bars[29].Date < bars[28].Date)
	assert.Equal(t, int64(1200300), bars[0].Volume)
	assert.Equal(t, true, bars[0].High.Equal(decimal.RequireFromString("110.5")))
	assert.Equal(t, "apikey=test-key&function=TIME_SERIES_DAILY&symbol=AAPL", gotQuery)
}

func TestAlphaVantageDailyBars_RateLimitNote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Note":"Thank you for using Alpha Vantage! Our standard API call frequency is 5 calls per minute."}`))
	}))
	defer srv.Close()

	client := &AlphaVantageClient{apiKey: "test-key", httpClient: testHTTPClient(srv.URL)}

	_, err := client.DailyBars(context.Background(), "AAPL", 30)
	assert.Equal(t, true, errors.Is(err, ErrNoData))
}

func TestAlphaVantageDailyBars_BadNumber(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"Time Series (Daily)": map[string]interface{}{
				"2026-02-27": avDayPayload("n/a"),
			},
		})
	}))
	defer srv.Close()

	client := &AlphaVantageClient{apiKey: "test-key", httpClient: testHTTPClient(srv.URL)}

	_, err := client.DailyBars(context.Background(), "AAPL", 30)
	assert.NotEqual(t, nil, err)
}

func TestLatestBars_FewerThanWindow(t *testing.T) {
	series := map[string]avDay{
		"2026-02-25": {Open: "1", High: "2", Low: "0.5", Close: "1.5", Volume: "10"},
		"2026-02-26": {Open: "1", High: "2", Low: "0.5", Close: "1.7", Volume: "10"},
	}

	bars, err := latestBars(series, 30)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(bars))
	assert.Equal(t, "2026-02-26", bars[0].Date)
	assert.Equal(t, "2026-02-25", bars[1].Date)
}
