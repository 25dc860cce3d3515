package market

import (
	"fmt"
	"math"
	"strings"
)

// Side is the direction of an open position.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// ParseSide normalizes a user-supplied side label.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy", "long":
		return Buy, nil
	case "sell", "short":
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown side %q (want buy or sell)", s)
	}
}

// Position is a snapshot of an open trade as supplied by the host on each
// evaluation. It is never stored or mutated by the risk engine.
type Position struct {
	Symbol       string  `json:"symbol" yaml:"symbol"`
	Volume       float64 `json:"volume" yaml:"volume"`
	OpenPrice    float64 `json:"open_price" yaml:"open_price"`
	CurrentPrice float64 `json:"current_price" yaml:"current_price"`
	Side         Side    `json:"side" yaml:"side"`
}

// Exposure is the worst-case notional loss proxy for the position:
// volume times the absolute deviation of current price from entry.
// Side does not reduce it; buys and sells both contribute their full
// deviation (hedged pairs are not offset).
func (p Position) Exposure() float64 {
	return p.Volume * math.Abs(p.CurrentPrice-p.OpenPrice)
}

// NormalizeSymbol uppercases and trims a user-entered symbol.
func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
