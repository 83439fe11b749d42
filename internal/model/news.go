package model

const MaxNewsArticles = 5

type NewsArticle struct {
	Title     string `json:"title"`
	Source    string `json:"source"`
	Sentiment string `json:"sentiment,omitempty"`
}

type NewsBundle struct {
	Articles []NewsArticle `json:"articles"`
	Source   string        `json:"source"`
	Count    int           `json:"count"`
}

func NewNewsBundle(source string, articles []NewsArticle) *NewsBundle {
	if len(articles) > MaxNewsArticles {
		articles = articles[:MaxNewsArticles]
	}
	return &NewsBundle{Articles: articles, Source: source, Count: len(articles)}
}
