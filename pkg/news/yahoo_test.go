package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestYahooFetch(t *testing.T) {
	var gotCount string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCount = r.URL.Query().Get("newsCount")
		w.Write([]byte(`{"quotes":[],"news":[
			{"title":"Tesla Recalls Model Y","publisher":"Motley Fool","link":"https://example.com/a","providerPublishTime":1772100000},
			{"title":"EV Stocks Rally","link":"https://example.com/b"}
		]}`))
	}))
	defer srv.Close()

	client := &YahooClient{httpClient: srv.Client()}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	articles, err := client.Fetch(context.Background(), "TSLA", 5)

	assert.Equal(t, nil, err)
	assert.Equal(t, "5", gotCount)
	assert.Equal(t, 2, len(articles))
	assert.Equal(t, "Tesla Recalls Model Y", articles[0].Headline)
	assert.Equal(t, "Motley Fool", articles[0].Publisher)
	assert.Equal(t, "", articles[0].Sentiment)
	assert.Equal(t, "Yahoo", articles[1].Publisher)
}

func TestYahooFetch_Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := &YahooClient{httpClient: srv.Client()}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	_, err := client.Fetch(context.Background(), "TSLA", 5)
	assert.NotEqual(t, nil, err)
}
