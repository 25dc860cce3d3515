package journal

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/synapse/market"
)

// opTimeout bounds every storage operation so a wedged backend surfaces
// ErrStorageUnavailable instead of hanging the caller.
const opTimeout = 5 * time.Second

// SQLite is the durable Store backend. Writes are serialized by mu so
// concurrent Add calls cannot interleave their insert.
type SQLite struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLite opens (or creates) the journal database at path. Safe to call
// once per process; reopening an existing file is a no-op schema-wise.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrStorageUnavailable, path, err)
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create schema: %v", ErrStorageUnavailable, err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Add(ctx context.Context, in AddInput) (TradeRecord, error) {
	rec, err := newRecord(in)
	if err != nil {
		return TradeRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// The primary key makes an id collision fail loudly instead of
	// overwriting an earlier record.
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO trades (trade_id, symbol, sentiment, result, created_at, notes)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Symbol, string(rec.Sentiment), string(rec.Result), rec.CreatedAt, rec.Notes,
	)
	if err != nil {
		return TradeRecord{}, fmt.Errorf("%w: insert trade: %v", ErrStorageUnavailable, err)
	}
	return rec, nil
}

func (s *SQLite) List(ctx context.Context) ([]TradeRecord, error) {
	// ULIDs sort by creation time, so ordering by id is insertion order even
	// for records created within the same millisecond.
	return s.listQuery(ctx, `
		SELECT trade_id, symbol, sentiment, result, created_at, notes
		FROM trades
		ORDER BY trade_id ASC`)
}

func (s *SQLite) Stats(ctx context.Context) (Statistics, error) {
	records, err := s.List(ctx)
	if err != nil {
		return Statistics{}, err
	}
	return Aggregate(records), nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) listQuery(ctx context.Context, query string, args ...any) ([]TradeRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query trades: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		var rec TradeRecord
		var sentiment, result string
		if err := rows.Scan(&rec.ID, &rec.Symbol, &sentiment, &result, &rec.CreatedAt, &rec.Notes); err != nil {
			return nil, fmt.Errorf("%w: scan trade: %v", ErrStorageUnavailable, err)
		}
		rec.Sentiment = market.Sentiment(sentiment)
		rec.Result = Result(result)
		rec.CreatedAt = rec.CreatedAt.UTC()
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read trades: %v", ErrStorageUnavailable, err)
	}
	return out, nil
}
