package journal

import (
	"context"
	"time"

	"github.com/rustyeddy/synapse/market"
)

// ListBySymbol returns all records for one symbol, oldest first. The symbol
// is normalized the same way Add normalizes it.
func (s *SQLite) ListBySymbol(ctx context.Context, symbol string) ([]TradeRecord, error) {
	return s.listQuery(ctx, `
		SELECT trade_id, symbol, sentiment, result, created_at, notes
		FROM trades
		WHERE symbol = ?
		ORDER BY trade_id ASC`, market.NormalizeSymbol(symbol))
}

// ListBetween returns records created within [start, end), oldest first.
func (s *SQLite) ListBetween(ctx context.Context, start, end time.Time) ([]TradeRecord, error) {
	return s.listQuery(ctx, `
		SELECT trade_id, symbol, sentiment, result, created_at, notes
		FROM trades
		WHERE created_at >= ? AND created_at < ?
		ORDER BY trade_id ASC`, start.UTC(), end.UTC())
}
