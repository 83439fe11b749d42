package provider

import (
	"context"
	"fmt"
	"log/slog"

	"stockassistant/internal/cache"
	"stockassistant/internal/model"
	"stockassistant/pkg/market"
)

// SeriesSource returns the n most recent bars, most recent first.
type SeriesSource interface {
	DailyBars(ctx context.Context, symbol string, n int) ([]market.Bar, error)
	Name() string
}

// HistorySource returns about one month of bars in ascending order along
// with the company's display name.
type HistorySource interface {
	MonthHistory(ctx context.Context, symbol string) (*market.History, error)
	Name() string
}

type MarketProvider struct {
	primary   SeriesSource
	secondary HistorySource
	cache     cache.Cache
}

// NewMarketProvider accepts a nil primary, which restricts the chain to the
// secondary source.
func NewMarketProvider(primary SeriesSource, secondary HistorySource, c cache.Cache) *MarketProvider {
	return &MarketProvider{primary: primary, secondary: secondary, cache: c}
}

func snapshotKey(ticker string) string {
	return fmt.Sprintf("%s_%dd", ticker, model.SnapshotWindow)
}

// Snapshot returns the 30-day snapshot for ticker, trying the primary source
// and then the secondary. ok is false when both fail.
func (p *MarketProvider) Snapshot(ctx context.Context, ticker string) (*model.MarketSnapshot, bool) {
	key := snapshotKey(ticker)
	if cached, ok := cache.Load[model.MarketSnapshot](ctx, p.cache, cache.NamespaceMarket, key); ok {
		return &cached, true
	}

	snap := p.fromPrimary(ctx, ticker)
	if snap == nil {
		slog.Info("fallback to secondary market source", "ticker", ticker)
		snap = p.fromSecondary(ctx, ticker)
	}
	if snap == nil {
		return nil, false
	}

	cache.Store(ctx, p.cache, cache.NamespaceMarket, key, snap)
	return snap, true
}

func (p *MarketProvider) fromPrimary(ctx context.Context, ticker string) *model.MarketSnapshot {
	if p.primary == nil {
		return nil
	}

	bars, err := p.primary.DailyBars(ctx, ticker, model.SnapshotWindow)
	if err != nil {
		slog.Warn("primary market source failed", "source", p.primary.Name(), "ticker", ticker, "error", err)
		return nil
	}
	if len(bars) == 0 {
		return nil
	}

	// The primary series carries no display name.
	return model.NewMarketSnapshot(ticker, ticker, p.primary.Name(), toDailyBars(bars))
}

func (p *MarketProvider) fromSecondary(ctx context.Context, ticker string) *model.MarketSnapshot {
	if p.secondary == nil {
		return nil
	}

	h, err := p.secondary.MonthHistory(ctx, ticker)
	if err != nil {
		slog.Warn("secondary market source failed", "source", p.secondary.Name(), "ticker", ticker, "error", err)
		return nil
	}
	if h == nil || len(h.Bars) == 0 {
		return nil
	}

	bars := toDailyBars(h.Bars)
	for i, j := 0, len(bars)-1; i < j; i, j = i+1, j-1 {
		bars[i], bars[j] = bars[j], bars[i]
	}
	if len(bars) > model.SnapshotWindow {
		bars = bars[:model.SnapshotWindow]
	}

	return model.NewMarketSnapshot(ticker, h.LongName, p.secondary.Name(), bars)
}

func toDailyBars(bars []market.Bar) []model.DailyBar {
	out := make([]model.DailyBar, len(bars))
	for i, b := range bars {
		out[i] = model.DailyBar{
			Date:   b.Date,
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		}
	}
	return out
}
