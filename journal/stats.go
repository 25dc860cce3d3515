package journal

import "github.com/rustyeddy/synapse/market"

// Statistics is a pure projection over the full record set, recomputed on
// demand and never stored. Bucket counts always sum to Total within each
// partition.
type Statistics struct {
	Total       int                      `json:"total"`
	BySentiment map[market.Sentiment]int `json:"by_sentiment"`
	ByResult    map[Result]int           `json:"by_result"`
}

// Aggregate counts records into sentiment and result buckets. Every enum
// value gets an entry even at zero, so chart consumers see all three bars.
func Aggregate(records []TradeRecord) Statistics {
	stats := Statistics{
		Total:       len(records),
		BySentiment: make(map[market.Sentiment]int, len(market.Sentiments)),
		ByResult:    make(map[Result]int, len(Results)),
	}
	for _, s := range market.Sentiments {
		stats.BySentiment[s] = 0
	}
	for _, r := range Results {
		stats.ByResult[r] = 0
	}
	for _, rec := range records {
		stats.BySentiment[rec.Sentiment]++
		stats.ByResult[rec.Result]++
	}
	return stats
}

// ShareSummary condenses the journal into the handful of numbers a trader
// shares: how much they traded, how often they won, what they traded most
// and how they felt about it.
type ShareSummary struct {
	TotalTrades       int              `json:"total_trades"`
	ProfitableTrades  int              `json:"profitable_trades"`
	WinRate           float64          `json:"win_rate"` // percent of trades with a profit result
	TopSymbol         string           `json:"top_symbol"`
	DominantSentiment market.Sentiment `json:"dominant_sentiment"`
}

// Summarize derives a ShareSummary from records. With no records the summary
// is zero-valued with a Neutral sentiment. Frequency ties keep the symbol or
// sentiment that reached the count first.
func Summarize(records []TradeRecord) ShareSummary {
	sum := ShareSummary{
		TotalTrades:       len(records),
		DominantSentiment: market.Neutral,
	}
	if len(records) == 0 {
		return sum
	}

	symbolCounts := make(map[string]int)
	sentimentCounts := make(map[market.Sentiment]int)
	topSymbol, topSymbolN := "", 0
	topSentiment, topSentimentN := market.Neutral, 0

	for _, rec := range records {
		if rec.Result == Profit {
			sum.ProfitableTrades++
		}

		symbolCounts[rec.Symbol]++
		if symbolCounts[rec.Symbol] > topSymbolN {
			topSymbol, topSymbolN = rec.Symbol, symbolCounts[rec.Symbol]
		}

		sentimentCounts[rec.Sentiment]++
		if sentimentCounts[rec.Sentiment] > topSentimentN {
			topSentiment, topSentimentN = rec.Sentiment, sentimentCounts[rec.Sentiment]
		}
	}

	sum.WinRate = float64(sum.ProfitableTrades) / float64(sum.TotalTrades) * 100
	sum.TopSymbol = topSymbol
	sum.DominantSentiment = topSentiment
	return sum
}
