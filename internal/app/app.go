package app

import (
	"context"
	"fmt"
	"log/slog"

	"stockassistant/db"
	"stockassistant/internal/assistant"
	"stockassistant/internal/cache"
	"stockassistant/internal/composer"
	"stockassistant/internal/config"
	"stockassistant/internal/extractor"
	"stockassistant/internal/provider"
	"stockassistant/internal/repository"
	"stockassistant/internal/resolver"
	"stockassistant/pkg/llm"
	"stockassistant/pkg/market"
	"stockassistant/pkg/news"
)

// App holds the assembled assistant and the pieces the HTTP shim exposes.
// Answers is nil when no database is configured.
type App struct {
	Assistant *assistant.Assistant
	Sectors   *resolver.SectorDirectory
	Answers   *repository.AnswerRepository
}

// Build wires every component from cfg. Optional backends that fail to
// connect are logged and left out. Close must be called when done.
func Build(ctx context.Context, cfg *config.AppConfig) (*App, error) {
	completer, err := llm.New(ctx, cfg.LLM.Provider, cfg.LLM.APIKey(), cfg.LLM.Model)
	if err != nil {
		return nil, fmt.Errorf("llm: %w", err)
	}
	if _, ok := completer.(llm.Unconfigured); ok {
		slog.Warn("llm credential not set, questions cannot be answered", "provider", cfg.LLM.Provider)
	}

	extra := map[string]string{}
	if cfg.SectorsFile != "" {
		extra, err = resolver.LoadSectorAliases(cfg.SectorsFile)
		if err != nil {
			return nil, fmt.Errorf("sector aliases: %w", err)
		}
	}

	c := newCache(ctx, cfg)
	yahoo := market.NewYahooClient(0)

	searchers := []resolver.SymbolSearcher{yahoo}
	if cfg.FinnhubAPIKey != "" {
		searchers = append(searchers, market.NewFinnHubClient(cfg.FinnhubAPIKey))
	}

	var series provider.SeriesSource
	if cfg.AlphaVantageAPIKey != "" {
		series = market.NewAlphaVantageClient(cfg.AlphaVantageAPIKey)
	} else {
		slog.Warn("alpha vantage key not set, using yahoo only")
	}

	var sources []news.NewsClient
	if cfg.AlphaVantageAPIKey != "" {
		sources = append(sources, news.NewAlphaVantageClient(cfg.AlphaVantageAPIKey))
	}
	sources = append(sources, news.NewYahooClient())
	if cfg.FinnhubAPIKey != "" {
		sources = append(sources, news.NewFinnHubClient(cfg.FinnhubAPIKey))
	}
	if cfg.MassiveAPIKey != "" {
		sources = append(sources, news.NewMassiveClient(cfg.MassiveAPIKey))
	}

	sectors := resolver.NewSectorDirectory(yahoo, extra)
	answers := newAnswerLog(cfg)

	opts := []assistant.Option{
		assistant.WithSectorCount(cfg.SectorCount),
		assistant.WithSectorDelay(cfg.SectorDelay),
	}
	if answers != nil {
		opts = append(opts, assistant.WithAnswerLog(answers))
	}

	a := assistant.New(
		extractor.New(completer, c),
		resolver.NewTickerResolver(searchers...),
		sectors,
		provider.NewMarketProvider(series, yahoo, c),
		provider.NewNewsProvider(c, sources...),
		composer.New(completer),
		opts...,
	)

	return &App{Assistant: a, Sectors: sectors, Answers: answers}, nil
}

func (a *App) Close() {
	db.Close()
	db.CloseRedis()
}

func newCache(ctx context.Context, cfg *config.AppConfig) cache.Cache {
	if cfg.RedisURL == "" {
		return cache.NewMemoryCache(cfg.CacheTTL)
	}

	if err := db.ConnectRedis(ctx, cfg.RedisURL); err != nil {
		slog.Warn("redis unavailable, using in-memory cache", "error", err)
		return cache.NewMemoryCache(cfg.CacheTTL)
	}

	slog.Info("using redis cache", "ttl", cfg.CacheTTL)
	return cache.NewRedisCache(db.Redis, cfg.CacheTTL)
}

func newAnswerLog(cfg *config.AppConfig) *repository.AnswerRepository {
	if cfg.DatabaseURL == "" {
		return nil
	}

	if err := db.Connect(cfg.DatabaseURL); err != nil {
		slog.Warn("database unavailable, answer log disabled", "error", err)
		return nil
	}

	repo := repository.NewAnswerRepository(db.DB)
	if err := repo.EnsureSchema(); err != nil {
		slog.Warn("answer log schema failed, answer log disabled", "error", err)
		return nil
	}

	return repo
}
