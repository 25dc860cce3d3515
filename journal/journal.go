package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/synapse/market"
	"github.com/rustyeddy/synapse/pkg/id"
)

// Result is the outcome bucket of a journaled trade.
type Result string

const (
	Profit    Result = "profit"
	Loss      Result = "loss"
	Breakeven Result = "breakeven"
)

// Results lists all values in display order.
var Results = []Result{Profit, Breakeven, Loss}

// ParseResult normalizes a user-supplied result label.
func ParseResult(s string) (Result, error) {
	switch Result(strings.ToLower(strings.TrimSpace(s))) {
	case Profit:
		return Profit, nil
	case Loss:
		return Loss, nil
	case Breakeven:
		return Breakeven, nil
	default:
		return "", fmt.Errorf("unknown result %q (want profit, loss or breakeven)", s)
	}
}

// TradeRecord is one journal entry. Records are immutable once created;
// the journal only ever grows.
type TradeRecord struct {
	ID        string           `json:"id"`
	Symbol    string           `json:"symbol"`
	Sentiment market.Sentiment `json:"sentiment"`
	Result    Result           `json:"result"`
	CreatedAt time.Time        `json:"created_at"`
	Notes     string           `json:"notes,omitempty"`
}

// AddInput is the user-entered portion of a record. ID and CreatedAt are
// assigned by the store.
type AddInput struct {
	Symbol    string
	Sentiment market.Sentiment
	Result    Result
	Notes     string
}

var (
	// ErrInvalidInput flags input rejected before anything is persisted.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStorageUnavailable flags a backend that cannot be opened, read or
	// written. The caller decides whether to retry; the store never does.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Store is a durable append-only trade ledger. Add is serialized per store;
// List and Stats may run concurrently and never observe a partial record.
type Store interface {
	// Add validates, normalizes and durably appends a record. On success the
	// record is visible to List/Stats and survives a crash; on failure
	// nothing changed.
	Add(ctx context.Context, in AddInput) (TradeRecord, error)
	// List returns every record, oldest first.
	List(ctx context.Context) ([]TradeRecord, error)
	// Stats aggregates over List without mutating the ledger.
	Stats(ctx context.Context) (Statistics, error)
	Close() error
}

// newRecord validates user input and stamps a fresh record. Both backends go
// through here so normalization is identical.
func newRecord(in AddInput) (TradeRecord, error) {
	symbol := market.NormalizeSymbol(in.Symbol)
	if symbol == "" {
		return TradeRecord{}, fmt.Errorf("%w: symbol must not be empty", ErrInvalidInput)
	}
	sentiment, err := market.ParseSentiment(string(in.Sentiment))
	if err != nil {
		return TradeRecord{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	result, err := ParseResult(string(in.Result))
	if err != nil {
		return TradeRecord{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return TradeRecord{
		ID:        id.New(),
		Symbol:    symbol,
		Sentiment: sentiment,
		Result:    result,
		CreatedAt: time.Now().UTC(),
		Notes:     in.Notes,
	}, nil
}
