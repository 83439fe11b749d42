package provider

import (
	"context"
	"log/slog"

	"stockassistant/internal/cache"
	"stockassistant/internal/model"
	"stockassistant/pkg/news"
)

// newsFetchLimit is what each tier is asked for; bundles keep the first
// model.MaxNewsArticles.
const newsFetchLimit = 10

type NewsProvider struct {
	sources []news.NewsClient
	cache   cache.Cache
}

// NewNewsProvider tries sources in order. Nil sources, such as an
// unconfigured primary, are skipped.
func NewNewsProvider(c cache.Cache, sources ...news.NewsClient) *NewsProvider {
	var configured []news.NewsClient
	for _, s := range sources {
		if s != nil {
			configured = append(configured, s)
		}
	}
	return &NewsProvider{sources: configured, cache: c}
}

// Bundle returns recent headlines for ticker from the first source that has
// any. ok is false when every source fails.
func (p *NewsProvider) Bundle(ctx context.Context, ticker string) (*model.NewsBundle, bool) {
	if cached, ok := cache.Load[model.NewsBundle](ctx, p.cache, cache.NamespaceNews, ticker); ok {
		return &cached, true
	}

	for _, s := range p.sources {
		articles, err := s.Fetch(ctx, ticker, newsFetchLimit)
		if err != nil {
			slog.Warn("news source failed", "source", s.Name(), "ticker", ticker, "error", err)
			continue
		}
		if len(articles) == 0 {
			slog.Info("news source returned no articles", "source", s.Name(), "ticker", ticker)
			continue
		}

		bundle := model.NewNewsBundle(s.Name(), toNewsArticles(articles))
		cache.Store(ctx, p.cache, cache.NamespaceNews, ticker, bundle)
		return bundle, true
	}
	return nil, false
}

func toNewsArticles(articles []news.Article) []model.NewsArticle {
	out := make([]model.NewsArticle, 0, len(articles))
	for _, a := range articles {
		out = append(out, model.NewsArticle{
			Title:     a.Headline,
			Source:    a.Publisher,
			Sentiment: a.Sentiment,
		})
	}
	return out
}
