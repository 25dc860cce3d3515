// Package dashboard drives the host-view loop: refresh prices from an
// injected source, rescore risk, publish the result. Rendering lives with
// the host; this package only produces the numbers.
package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/rustyeddy/synapse/market"
	"github.com/rustyeddy/synapse/risk"
)

// Monitor recomputes the risk assessment whenever prices, positions or the
// balance change. One goroutine (Run) owns the tick loop; Snapshot and the
// Updates channel are safe from any goroutine.
type Monitor struct {
	source   market.PriceSource
	interval time.Duration

	mu         sync.Mutex
	balance    float64
	positions  []market.Position
	assessment risk.Assessment

	updates chan risk.Assessment
}

// New builds a monitor and computes the initial assessment. Fails if the
// balance is invalid for the given positions.
func New(balance float64, positions []market.Position, source market.PriceSource, interval time.Duration) (*Monitor, error) {
	a, err := risk.Assess(balance, positions)
	if err != nil {
		return nil, err
	}

	m := &Monitor{
		source:     source,
		interval:   interval,
		balance:    balance,
		positions:  append([]market.Position(nil), positions...),
		assessment: a,
		updates:    make(chan risk.Assessment, 1),
	}
	return m, nil
}

// Run applies ticks until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := m.Tick(); err != nil {
				return err
			}
		}
	}
}

// Tick applies one price update and rescores. Exposed so hosts and tests can
// drive the loop without a timer.
func (m *Monitor) Tick() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := market.Advance(m.source, m.positions)
	a, err := risk.Assess(m.balance, next)
	if err != nil {
		return err
	}

	m.positions = next
	m.assessment = a
	m.publish(a)
	return nil
}

// SetBalance updates the account balance and rescores immediately.
func (m *Monitor) SetBalance(balance float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, err := risk.Assess(balance, m.positions)
	if err != nil {
		return err
	}
	m.balance = balance
	m.assessment = a
	m.publish(a)
	return nil
}

// SetPositions replaces the open positions and rescores immediately.
func (m *Monitor) SetPositions(positions []market.Position) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, err := risk.Assess(m.balance, positions)
	if err != nil {
		return err
	}
	m.positions = append([]market.Position(nil), positions...)
	m.assessment = a
	m.publish(a)
	return nil
}

// Snapshot returns the current positions and assessment.
func (m *Monitor) Snapshot() ([]market.Position, risk.Assessment) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]market.Position, len(m.positions))
	copy(out, m.positions)
	return out, m.assessment
}

// Updates delivers the latest assessment after each recompute. Only the most
// recent value is kept; a slow reader never blocks the loop.
func (m *Monitor) Updates() <-chan risk.Assessment {
	return m.updates
}

func (m *Monitor) publish(a risk.Assessment) {
	select {
	case m.updates <- a:
	default:
		select {
		case <-m.updates:
		default:
		}
		select {
		case m.updates <- a:
		default:
		}
	}
}
