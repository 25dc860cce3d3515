package journal

import (
	"context"
	"fmt"
	"sync"
)

// Memory is the non-durable Store backend, for tests and ephemeral hosts.
// The Store contract is otherwise identical to SQLite.
type Memory struct {
	mu      sync.RWMutex
	byID    map[string]bool
	records []TradeRecord
}

func NewMemory() *Memory {
	return &Memory{byID: make(map[string]bool)}
}

func (m *Memory) Add(ctx context.Context, in AddInput) (TradeRecord, error) {
	rec, err := newRecord(in)
	if err != nil {
		return TradeRecord{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.byID[rec.ID] {
		return TradeRecord{}, fmt.Errorf("%w: duplicate trade id %s", ErrStorageUnavailable, rec.ID)
	}
	m.byID[rec.ID] = true
	m.records = append(m.records, rec)
	return rec, nil
}

func (m *Memory) List(ctx context.Context) ([]TradeRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]TradeRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *Memory) Stats(ctx context.Context) (Statistics, error) {
	records, err := m.List(ctx)
	if err != nil {
		return Statistics{}, err
	}
	return Aggregate(records), nil
}

func (m *Memory) Close() error { return nil }
