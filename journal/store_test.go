package journal

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/synapse/market"
)

// Contract tests run against both backends; backend-specific behavior lives
// in sqlite_test.go.
func eachStore(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Helper()

	backends := map[string]func(t *testing.T) Store{
		"sqlite": func(t *testing.T) Store {
			s, err := NewSQLite(filepath.Join(t.TempDir(), "journal.db"))
			assert.NoError(t, err)
			return s
		},
		"memory": func(t *testing.T) Store {
			return NewMemory()
		},
	}

	for name, open := range backends {
		name, open := name, open
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s := open(t)
			t.Cleanup(func() { _ = s.Close() })
			fn(t, s)
		})
	}
}

func TestAddNormalizes(t *testing.T) {
	t.Parallel()

	eachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		before := time.Now().UTC().Add(-time.Second)
		rec, err := s.Add(ctx, AddInput{
			Symbol:    " eurusd ",
			Sentiment: "Positive",
			Result:    "PROFIT",
			Notes:     "held through NFP",
		})
		assert.NoError(t, err)

		assert.Equal(t, "EURUSD", rec.Symbol)
		assert.Equal(t, market.Positive, rec.Sentiment)
		assert.Equal(t, Profit, rec.Result)
		assert.Equal(t, "held through NFP", rec.Notes)
		assert.NotEmpty(t, rec.ID)
		assert.True(t, rec.CreatedAt.After(before))

		got, err := s.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, rec.ID, got[0].ID)
		assert.Equal(t, rec.Symbol, got[0].Symbol)
		assert.Equal(t, rec.Sentiment, got[0].Sentiment)
		assert.Equal(t, rec.Result, got[0].Result)
		assert.Equal(t, rec.Notes, got[0].Notes)
		assert.True(t, got[0].CreatedAt.Equal(rec.CreatedAt))
	})
}

func TestAddInvalidInput(t *testing.T) {
	t.Parallel()

	eachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		tests := []struct {
			name string
			in   AddInput
		}{
			{"empty_symbol", AddInput{Symbol: "  ", Sentiment: market.Neutral, Result: Breakeven}},
			{"bad_sentiment", AddInput{Symbol: "EURUSD", Sentiment: "bullish", Result: Breakeven}},
			{"bad_result", AddInput{Symbol: "EURUSD", Sentiment: market.Neutral, Result: "win"}},
		}

		for _, tt := range tests {
			_, err := s.Add(ctx, tt.in)
			assert.Error(t, err, tt.name)
			assert.True(t, errors.Is(err, ErrInvalidInput), tt.name)
		}

		// rejected input causes no state change
		got, err := s.List(ctx)
		assert.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestListInsertionOrderAndIdempotent(t *testing.T) {
	t.Parallel()

	eachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		symbols := []string{"EURUSD", "GBPUSD", "USDJPY", "EURUSD"}
		for _, sym := range symbols {
			_, err := s.Add(ctx, AddInput{Symbol: sym, Sentiment: market.Neutral, Result: Breakeven})
			assert.NoError(t, err)
		}

		first, err := s.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, first, len(symbols))
		for i, rec := range first {
			assert.Equal(t, symbols[i], rec.Symbol)
		}

		second, err := s.List(ctx)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestRapidAddsUniqueIDs(t *testing.T) {
	t.Parallel()

	eachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		const n = 50
		seen := make(map[string]bool, n)
		for i := 0; i < n; i++ {
			rec, err := s.Add(ctx, AddInput{Symbol: "EURUSD", Sentiment: market.Neutral, Result: Breakeven})
			assert.NoError(t, err)
			assert.False(t, seen[rec.ID], "colliding id %s", rec.ID)
			seen[rec.ID] = true
		}

		got, err := s.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, got, n)
	})
}

func TestStats(t *testing.T) {
	t.Parallel()

	eachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		adds := []AddInput{
			{Symbol: "EURUSD", Sentiment: market.Positive, Result: Profit},
			{Symbol: "GBPUSD", Sentiment: market.Positive, Result: Loss},
			{Symbol: "EURUSD", Sentiment: market.Negative, Result: Profit},
		}
		for _, in := range adds {
			_, err := s.Add(ctx, in)
			assert.NoError(t, err)
		}

		stats, err := s.Stats(ctx)
		assert.NoError(t, err)

		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, map[market.Sentiment]int{
			market.Positive: 2,
			market.Negative: 1,
			market.Neutral:  0,
		}, stats.BySentiment)
		assert.Equal(t, map[Result]int{
			Profit:    2,
			Loss:      1,
			Breakeven: 0,
		}, stats.ByResult)

		// counts sum to total within each partition
		sentimentSum, resultSum := 0, 0
		for _, n := range stats.BySentiment {
			sentimentSum += n
		}
		for _, n := range stats.ByResult {
			resultSum += n
		}
		assert.Equal(t, stats.Total, sentimentSum)
		assert.Equal(t, stats.Total, resultSum)
	})
}
