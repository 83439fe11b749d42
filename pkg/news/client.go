package news

import (
	"context"
	"errors"
	"time"
)

var ErrNoData = errors.New("news: no articles returned")

type Article struct {
	Headline    string
	URL         string
	Publisher   string
	PublishedAt time.Time
	// Sentiment is empty when the source does not annotate articles.
	Sentiment string
}

type NewsClient interface {
	Fetch(ctx context.Context, ticker string, limit int) ([]Article, error)
	Name() string
}
