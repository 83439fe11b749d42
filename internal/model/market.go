package model

import "github.com/shopspring/decimal"

const SnapshotWindow = 30

type DailyBar struct {
	Date   string          `json:"date"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume int64           `json:"volume"`
}

// MarketSnapshot summarizes up to SnapshotWindow daily bars. DailyData is
// most-recent-first.
type MarketSnapshot struct {
	Ticker          string          `json:"ticker"`
	CompanyName     string          `json:"company_name"`
	DailyData       []DailyBar      `json:"daily_data"`
	CurrentPrice    decimal.Decimal `json:"current_price"`
	PeriodHigh      decimal.Decimal `json:"period_high"`
	PeriodLow       decimal.Decimal `json:"period_low"`
	PeriodAvg       decimal.Decimal `json:"period_avg"`
	PeriodChangePct decimal.Decimal `json:"period_change_pct"`
	Source          string          `json:"source"`
}

// NewMarketSnapshot derives the window aggregates from bars, which must be
// non-empty and ordered most-recent-first.
func NewMarketSnapshot(ticker, companyName, source string, bars []DailyBar) *MarketSnapshot {
	if len(bars) == 0 {
		return nil
	}
	if companyName == "" {
		companyName = ticker
	}

	high := bars[0].High
	low := bars[0].Low
	sum := decimal.Zero
	for _, b := range bars {
		if b.High.GreaterThan(high) {
			high = b.High
		}
		if b.Low.LessThan(low) {
			low = b.Low
		}
		sum = sum.Add(b.Close)
	}

	latest := bars[0].Close
	oldest := bars[len(bars)-1].Close
	change := decimal.Zero
	if !oldest.IsZero() {
		change = latest.Sub(oldest).Div(oldest).Mul(decimal.NewFromInt(100))
	}

	return &MarketSnapshot{
		Ticker:          ticker,
		CompanyName:     companyName,
		DailyData:       bars,
		CurrentPrice:    latest,
		PeriodHigh:      high,
		PeriodLow:       low,
		PeriodAvg:       sum.Div(decimal.NewFromInt(int64(len(bars)))),
		PeriodChangePct: change,
		Source:          source,
	}
}
