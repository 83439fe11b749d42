package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"stockassistant/internal/cache"
	"stockassistant/pkg/market"

	"github.com/go-playground/assert/v2"
	"github.com/shopspring/decimal"
)

func TestSnapshot_Primary(t *testing.T) {
	primary := &fakeSeries{bars: bars(30, 100, true)}
	secondary := &fakeHistory{}
	p := NewMarketProvider(primary, secondary, cache.NewMemoryCache(time.Hour))

	snap, ok := p.Snapshot(context.Background(), "AAPL")

	assert.Equal(t, true, ok)
	assert.Equal(t, "Alpha Vantage API", snap.Source)
	assert.Equal(t, "AAPL", snap.CompanyName)
	assert.Equal(t, 30, len(snap.DailyData))
	assert.Equal(t, "2026-01-30", snap.DailyData[0].Date)
	assert.Equal(t, true, snap.CurrentPrice.Equal(snap.DailyData[0].Close))
	assert.Equal(t, true, snap.PeriodHigh.Equal(decimal.NewFromInt(131)))
	assert.Equal(t, true, snap.PeriodLow.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 0, secondary.calls)

	// (130 - 101) / 101 * 100
	want := decimal.NewFromInt(29).Div(decimal.NewFromInt(101)).Mul(decimal.NewFromInt(100))
	assert.Equal(t, want.StringFixed(6), snap.PeriodChangePct.StringFixed(6))
}

func TestSnapshot_FallbackOnEmptyPrimary(t *testing.T) {
	primary := &fakeSeries{bars: nil}
	secondary := &fakeHistory{history: &market.History{Symbol: "TSLA", LongName: "Tesla, Inc.", Bars: bars(21, 200, false)}}
	p := NewMarketProvider(primary, secondary, cache.NewMemoryCache(time.Hour))

	snap, ok := p.Snapshot(context.Background(), "TSLA")

	assert.Equal(t, true, ok)
	assert.Equal(t, "Yahoo Finance API", snap.Source)
	assert.Equal(t, "Tesla, Inc.", snap.CompanyName)
	assert.Equal(t, 21, len(snap.DailyData))
	assert.Equal(t, "2026-01-21", snap.DailyData[0].Date)
	assert.Equal(t, "2026-01-01", snap.DailyData[20].Date)
	assert.Equal(t, true, snap.CurrentPrice.Equal(decimal.NewFromInt(221)))
	assert.Equal(t, true, snap.PeriodChangePct.IsPositive())
}

func TestSnapshot_FallbackOnPrimaryError(t *testing.T) {
	primary := &fakeSeries{err: errors.New("rate limited")}
	secondary := &fakeHistory{history: &market.History{Bars: bars(5, 10, false)}}
	p := NewMarketProvider(primary, secondary, cache.NewMemoryCache(time.Hour))

	snap, ok := p.Snapshot(context.Background(), "XOM")

	assert.Equal(t, true, ok)
	assert.Equal(t, "Yahoo Finance API", snap.Source)
	assert.Equal(t, "XOM", snap.CompanyName)
}

func TestSnapshot_NoPrimaryConfigured(t *testing.T) {
	secondary := &fakeHistory{history: &market.History{Bars: bars(5, 10, false)}}
	p := NewMarketProvider(nil, secondary, cache.NewMemoryCache(time.Hour))

	snap, ok := p.Snapshot(context.Background(), "XOM")

	assert.Equal(t, true, ok)
	assert.Equal(t, "Yahoo Finance API", snap.Source)
}

func TestSnapshot_SecondaryTruncatedToWindow(t *testing.T) {
	secondary := &fakeHistory{history: &market.History{Bars: bars(31, 0, false)}}
	p := NewMarketProvider(nil, secondary, cache.NewMemoryCache(time.Hour))

	snap, _ := p.Snapshot(context.Background(), "MSFT")

	assert.Equal(t, 30, len(snap.DailyData))
	assert.Equal(t, "2026-01-31", snap.DailyData[0].Date)
	assert.Equal(t, "2026-01-02", snap.DailyData[29].Date)
}

func TestSnapshot_BothFail(t *testing.T) {
	p := NewMarketProvider(&fakeSeries{err: errors.New("down")}, &fakeHistory{err: errors.New("down")}, cache.NewMemoryCache(time.Hour))

	snap, ok := p.Snapshot(context.Background(), "AAPL")

	assert.Equal(t, false, ok)
	assert.Equal(t, true, snap == nil)
}

func TestSnapshot_CachedAcrossCalls(t *testing.T) {
	primary := &fakeSeries{err: errors.New("down")}
	secondary := &fakeHistory{history: &market.History{LongName: "Exxon Mobil", Bars: bars(5, 10, false)}}
	p := NewMarketProvider(primary, secondary, cache.NewMemoryCache(time.Hour))

	first, _ := p.Snapshot(context.Background(), "XOM")
	second, ok := p.Snapshot(context.Background(), "XOM")

	assert.Equal(t, true, ok)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
	assert.Equal(t, first.CompanyName, second.CompanyName)
	assert.Equal(t, true, first.PeriodHigh.Equal(second.PeriodHigh))
	assert.Equal(t, first.DailyData[0].Date, second.DailyData[0].Date)
}
