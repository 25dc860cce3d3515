package journal

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/synapse/market"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "journal.db")

	s, err := NewSQLite(path)
	assert.NoError(t, err)

	return s, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	s, path := newTestSQLite(t)
	assert.NoError(t, s.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='trades'`).Scan(&name)
	assert.NoError(t, err)
	assert.Equal(t, "trades", name)
}

func TestSQLiteOpenIdempotent(t *testing.T) {
	t.Parallel()

	s, path := newTestSQLite(t)
	_, err := s.Add(context.Background(), AddInput{Symbol: "EURUSD", Sentiment: market.Neutral, Result: Breakeven})
	assert.NoError(t, err)
	assert.NoError(t, s.Close())

	// reopening the same file recreates nothing and loses nothing
	again, err := NewSQLite(path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = again.Close() })

	got, err := again.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSQLiteOpenUnavailable(t *testing.T) {
	t.Parallel()

	// a directory path is not a usable database file
	_, err := NewSQLite(t.TempDir())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestSQLiteDurableAcrossRestart(t *testing.T) {
	t.Parallel()

	s, path := newTestSQLite(t)

	rec, err := s.Add(context.Background(), AddInput{
		Symbol:    "gbpusd",
		Sentiment: market.Negative,
		Result:    Loss,
		Notes:     "stopped out",
	})
	assert.NoError(t, err)
	assert.NoError(t, s.Close())

	// a fresh store over the same backend must still have the record
	reopened, err := NewSQLite(path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, rec.ID, got[0].ID)
	assert.Equal(t, "GBPUSD", got[0].Symbol)
	assert.Equal(t, market.Negative, got[0].Sentiment)
	assert.Equal(t, Loss, got[0].Result)
	assert.Equal(t, "stopped out", got[0].Notes)
	assert.True(t, got[0].CreatedAt.Equal(rec.CreatedAt))
}

func TestSQLiteDuplicateIDRejected(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = s.Close() })

	now := time.Now().UTC()
	insert := func() error {
		_, err := s.db.Exec(`
			INSERT INTO trades (trade_id, symbol, sentiment, result, created_at, notes)
			VALUES (?, ?, ?, ?, ?, ?)`,
			"SAME-ID", "EURUSD", "neutral", "breakeven", now, "")
		return err
	}

	assert.NoError(t, insert())
	// second insert with the same id must fail, not overwrite
	assert.Error(t, insert())

	got, err := s.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSQLiteConcurrentAdds(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = s.Close() })

	const writers = 8
	const perWriter = 10

	errs := make(chan error, writers)
	for w := 0; w < writers; w++ {
		go func() {
			for i := 0; i < perWriter; i++ {
				_, err := s.Add(context.Background(), AddInput{
					Symbol: "EURUSD", Sentiment: market.Neutral, Result: Breakeven,
				})
				if err != nil {
					errs <- err
					return
				}
			}
			errs <- nil
		}()
	}
	for w := 0; w < writers; w++ {
		assert.NoError(t, <-errs)
	}

	got, err := s.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, writers*perWriter)

	seen := make(map[string]bool, len(got))
	for _, rec := range got {
		assert.False(t, seen[rec.ID])
		seen[rec.ID] = true
	}
}
