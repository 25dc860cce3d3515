// Package news is the client side of the news-sentiment service boundary.
// The service itself (news lookup, sentiment analysis) is opaque; this client
// only speaks its wire shape and normalizes the sentiment label.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rustyeddy/synapse/market"
)

// Headline is one analyzed news item for a symbol.
type Headline struct {
	Title       string           `json:"title"`
	Sentiment   market.Sentiment `json:"sentiment"`
	Description string           `json:"description,omitempty"`
	URL         string           `json:"url,omitempty"`
	PublishedAt string           `json:"publishedAt,omitempty"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Sentiment fetches the latest analyzed headline for symbol. count asks the
// service how many articles to consider; the response is always a single
// headline. An unrecognized sentiment label is coerced to neutral, matching
// the service's own fallback.
func (c *Client) Sentiment(ctx context.Context, symbol string, count int) (Headline, error) {
	q := url.Values{}
	q.Set("symbol", market.NormalizeSymbol(symbol))
	q.Set("count", strconv.Itoa(count))

	endpoint := fmt.Sprintf("%s/news-sentiment?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Headline{}, fmt.Errorf("build news request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Headline{}, fmt.Errorf("fetch news sentiment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Headline{}, fmt.Errorf("news sentiment for %s: unexpected status %s", symbol, resp.Status)
	}

	var h Headline
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		return Headline{}, fmt.Errorf("decode news sentiment: %w", err)
	}

	sentiment, err := market.ParseSentiment(string(h.Sentiment))
	if err != nil {
		sentiment = market.Neutral
	}
	h.Sentiment = sentiment

	return h, nil
}
