package resolver

import (
	"context"
	"log/slog"
	"strings"
)

type SymbolSearcher interface {
	SearchSymbol(ctx context.Context, query string) (string, error)
	Name() string
}

// TickerResolver maps a company name to a ticker using the first searcher
// that returns a match.
type TickerResolver struct {
	searchers []SymbolSearcher
}

func NewTickerResolver(searchers ...SymbolSearcher) *TickerResolver {
	return &TickerResolver{searchers: searchers}
}

// Resolve never fails; an unresolvable name yields ok == false.
func (r *TickerResolver) Resolve(ctx context.Context, company string) (string, bool) {
	company = strings.TrimSpace(company)
	if company == "" {
		return "", false
	}

	for _, s := range r.searchers {
		symbol, err := s.SearchSymbol(ctx, company)
		if err != nil {
			slog.Warn("ticker search failed", "source", s.Name(), "company", company, "error", err)
			continue
		}
		if symbol != "" {
			return strings.ToUpper(symbol), true
		}
	}
	return "", false
}
