package provider

import (
	"context"
	"fmt"

	"stockassistant/pkg/market"
	"stockassistant/pkg/news"

	"github.com/shopspring/decimal"
)

type fakeSeries struct {
	bars  []market.Bar
	err   error
	calls int
}

func (f *fakeSeries) DailyBars(_ context.Context, _ string, n int) ([]market.Bar, error) {
	f.calls++
	if len(f.bars) > n {
		return f.bars[:n], f.err
	}
	return f.bars, f.err
}

func (f *fakeSeries) Name() string { return "Alpha Vantage API" }

type fakeHistory struct {
	history *market.History
	err     error
	calls   int
}

func (f *fakeHistory) MonthHistory(context.Context, string) (*market.History, error) {
	f.calls++
	return f.history, f.err
}

func (f *fakeHistory) Name() string { return "Yahoo Finance API" }

type fakeNews struct {
	name     string
	articles []news.Article
	err      error
	calls    int
}

func (f *fakeNews) Fetch(context.Context, string, int) ([]news.Article, error) {
	f.calls++
	return f.articles, f.err
}

func (f *fakeNews) Name() string { return f.name }

// bars builds count bars whose closes step by one from start. Dates run in
// the given direction.
func bars(count int, start float64, descending bool) []market.Bar {
	out := make([]market.Bar, count)
	for i := 0; i < count; i++ {
		day := i + 1
		if descending {
			day = count - i
		}
		c := decimal.NewFromFloat(start + float64(day))
		out[i] = market.Bar{
			Date:   fmt.Sprintf("2026-01-%02d", day),
			Open:   c,
			High:   c.Add(decimal.NewFromInt(1)),
			Low:    c.Sub(decimal.NewFromInt(1)),
			Close:  c,
			Volume: int64(1000 * day),
		}
	}
	return out
}
