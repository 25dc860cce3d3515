package market

import (
	"fmt"
	"strings"
)

// Sentiment is the trader's (or a news feed's) read on a symbol.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

// Sentiments lists all values in display order.
var Sentiments = []Sentiment{Positive, Neutral, Negative}

// ParseSentiment normalizes a sentiment label.
func ParseSentiment(s string) (Sentiment, error) {
	switch Sentiment(strings.ToLower(strings.TrimSpace(s))) {
	case Positive:
		return Positive, nil
	case Negative:
		return Negative, nil
	case Neutral:
		return Neutral, nil
	default:
		return "", fmt.Errorf("unknown sentiment %q (want positive, negative or neutral)", s)
	}
}
