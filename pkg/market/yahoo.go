package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	yahooChartURL    = "https://query1.finance.yahoo.com/v8/finance/chart/"
	yahooSearchURL   = "https://query2.finance.yahoo.com/v1/finance/search"
	yahooScreenerURL = "https://query2.finance.yahoo.com/v1/finance/screener/predefined/saved"
)

type YahooClient struct {
	httpClient *http.Client
}

func NewYahooClient(timeout time.Duration) *YahooClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &YahooClient{httpClient: &http.Client{Timeout: timeout}}
}

func (c *YahooClient) Name() string {
	return "Yahoo Finance API"
}

// History is one month of daily bars in chronological (ascending) order.
type History struct {
	Symbol   string
	LongName string
	Bars     []Bar
}

func (c *YahooClient) MonthHistory(ctx context.Context, symbol string) (*History, error) {
	u := yahooChartURL + url.PathEscape(symbol) + "?interval=1d&range=1mo"

	var chart yahooChart
	if err := c.getJSON(ctx, u, &chart); err != nil {
		return nil, err
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, ErrNoData
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, ErrNoData
	}
	quote := result.Indicators.Quote[0]

	bars := make([]Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		o, h, l, cl := at(quote.Open, i), at(quote.High, i), at(quote.Low, i), at(quote.Close, i)
		if o == nil || h == nil || l == nil || cl == nil {
			continue // holiday or halted session
		}
		var volume int64
		if v := at(quote.Volume, i); v != nil {
			volume = int64(*v)
		}
		bars = append(bars, Bar{
			Date:   time.Unix(ts, 0).UTC().Format("2006-01-02"),
			Open:   decimal.NewFromFloat(*o),
			High:   decimal.NewFromFloat(*h),
			Low:    decimal.NewFromFloat(*l),
			Close:  decimal.NewFromFloat(*cl),
			Volume: volume,
		})
	}
	if len(bars) == 0 {
		return nil, ErrNoData
	}

	name := result.Meta.LongName
	if name == "" {
		name = result.Meta.ShortName
	}

	return &History{Symbol: symbol, LongName: name, Bars: bars}, nil
}

// SearchSymbol returns the symbol of the top quote matching query.
func (c *YahooClient) SearchSymbol(ctx context.Context, query string) (string, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("quotesCount", "1")
	q.Set("newsCount", "0")

	var res yahooSearch
	if err := c.getJSON(ctx, yahooSearchURL+"?"+q.Encode(), &res); err != nil {
		return "", err
	}
	if len(res.Quotes) == 0 || res.Quotes[0].Symbol == "" {
		return "", ErrNoData
	}
	return res.Quotes[0].Symbol, nil
}

// ScreenerSymbols returns up to count symbols from a predefined screener.
func (c *YahooClient) ScreenerSymbols(ctx context.Context, screenerID string, count int) ([]string, error) {
	q := url.Values{}
	q.Set("scrIds", screenerID)
	q.Set("count", strconv.Itoa(count))

	var res yahooScreener
	if err := c.getJSON(ctx, yahooScreenerURL+"?"+q.Encode(), &res); err != nil {
		return nil, err
	}
	if res.Finance.Error != nil {
		return nil, fmt.Errorf("yahoo screener error: %s", res.Finance.Error.Description)
	}
	if len(res.Finance.Result) == 0 {
		return nil, ErrNoData
	}

	var symbols []string
	for _, quote := range res.Finance.Result[0].Quotes {
		if quote.Symbol == "" {
			continue
		}
		symbols = append(symbols, quote.Symbol)
		if len(symbols) == count {
			break
		}
	}
	if len(symbols) == 0 {
		return nil, ErrNoData
	}
	return symbols, nil
}

func (c *YahooClient) getJSON(ctx context.Context, u string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("yahoo decode: %w", err)
	}
	return nil
}

func at(values []*float64, i int) *float64 {
	if i >= len(values) {
		return nil
	}
	return values[i]
}

type yahooError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol    string `json:"symbol"`
				LongName  string `json:"longName"`
				ShortName string `json:"shortName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *yahooError `json:"error"`
	} `json:"chart"`
}

type yahooSearch struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		LongName  string `json:"longname"`
		ShortName string `json:"shortname"`
	} `json:"quotes"`
}

type yahooScreener struct {
	Finance struct {
		Result []struct {
			Quotes []struct {
				Symbol string `json:"symbol"`
			} `json:"quotes"`
		} `json:"result"`
		Error *yahooError `json:"error"`
	} `json:"finance"`
}
