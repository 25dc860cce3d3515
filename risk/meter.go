package risk

import (
	"errors"
	"fmt"
	"math"

	"github.com/rustyeddy/synapse/market"
)

// Band is a coarse classification of account risk.
type Band string

const (
	Low    Band = "low"
	Medium Band = "medium"
	High   Band = "high"
)

// Band thresholds, applied to the raw percentage before capping so a heavily
// exposed account cannot read as Medium just because the display value
// saturates at 100.
const (
	lowMax    = 2.0
	mediumMax = 5.0
)

// ErrInvalidInput flags arguments the scorer refuses to divide by.
var ErrInvalidInput = errors.New("invalid input")

// Assessment is a presentational snapshot of account risk. It is recomputed
// on every call and never stored.
type Assessment struct {
	Percentage float64 `json:"percentage"`
	Band       Band    `json:"band"`
}

// Assess scores open-position risk against the account balance.
//
// Each position contributes volume * |currentPrice - openPrice| regardless of
// side; hedged buy/sell pairs are not offset. The sum over the balance gives
// the risk percentage, capped at 100 for display. This is a deliberately
// simplified worst-case exposure model: margin, leverage and stop-loss are
// ignored.
//
// With no positions the answer is always {0, Low}; otherwise the balance must
// be positive or the call fails with ErrInvalidInput.
func Assess(accountBalance float64, positions []market.Position) (Assessment, error) {
	if len(positions) == 0 {
		return Assessment{Percentage: 0, Band: Low}, nil
	}
	if accountBalance <= 0 {
		return Assessment{}, fmt.Errorf("%w: account balance must be positive, got %v",
			ErrInvalidInput, accountBalance)
	}

	var totalExposure float64
	for _, p := range positions {
		totalExposure += p.Exposure()
	}

	raw := (totalExposure / accountBalance) * 100

	return Assessment{
		Percentage: math.Min(raw, 100),
		Band:       bandFor(raw),
	}, nil
}

func bandFor(raw float64) Band {
	switch {
	case raw <= lowMax:
		return Low
	case raw <= mediumMax:
		return Medium
	default:
		return High
	}
}
