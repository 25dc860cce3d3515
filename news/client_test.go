package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/synapse/market"
)

func TestSentiment(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/news-sentiment", r.URL.Path)
		assert.Equal(t, "EURUSD", r.URL.Query().Get("symbol"))
		assert.Equal(t, "1", r.URL.Query().Get("count"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"title": "ECB holds rates steady",
			"sentiment": "positive",
			"description": "Markets rallied on the decision.",
			"url": "https://example.com/ecb",
			"publishedAt": "2026-03-02T09:30:00Z"
		}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)

	h, err := c.Sentiment(context.Background(), " eurusd ", 1)
	assert.NoError(t, err)
	assert.Equal(t, "ECB holds rates steady", h.Title)
	assert.Equal(t, market.Positive, h.Sentiment)
	assert.Equal(t, "https://example.com/ecb", h.URL)
}

func TestSentimentUnknownLabelCoerced(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"title": "Quiet session", "sentiment": "mixed"}`))
	}))
	t.Cleanup(srv.Close)

	h, err := NewClient(srv.URL).Sentiment(context.Background(), "EURUSD", 1)
	assert.NoError(t, err)
	assert.Equal(t, market.Neutral, h.Sentiment)
}

func TestSentimentServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream news API failed", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(srv.URL).Sentiment(context.Background(), "EURUSD", 1)
	assert.Error(t, err)
}

func TestSentimentUnreachable(t *testing.T) {
	t.Parallel()

	// a server that is already gone
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).Sentiment(context.Background(), "EURUSD", 1)
	assert.Error(t, err)
}
