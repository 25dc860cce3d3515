package market

import "math/rand"

// PriceSource supplies the next current price for a symbol. Hosts with a real
// feed implement this over live quotes; demos and tests inject simulated ones.
type PriceSource interface {
	NextPrice(symbol string, current float64) float64
}

// RandomWalk jitters each price by a uniform amount in [-Step/2, +Step/2]
// per tick. It stands in for a live feed in demos.
type RandomWalk struct {
	Step float64
	rng  *rand.Rand
}

// NewRandomWalk returns a walk with the given per-tick step. A fixed seed
// gives a reproducible walk; pass a varying seed for demo use.
func NewRandomWalk(step float64, seed int64) *RandomWalk {
	return &RandomWalk{
		Step: step,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (w *RandomWalk) NextPrice(symbol string, current float64) float64 {
	return current + (w.rng.Float64()-0.5)*w.Step
}

// Quotes is a fixed price table by symbol. Symbols without an entry keep
// their current price. Useful as a deterministic PriceSource in tests.
type Quotes map[string]float64

func (q Quotes) NextPrice(symbol string, current float64) float64 {
	if px, ok := q[symbol]; ok {
		return px
	}
	return current
}

// Advance returns a copy of positions with CurrentPrice refreshed from src.
// The input slice is not modified.
func Advance(src PriceSource, positions []Position) []Position {
	out := make([]Position, len(positions))
	copy(out, positions)
	for i := range out {
		out[i].CurrentPrice = src.NextPrice(out[i].Symbol, out[i].CurrentPrice)
	}
	return out
}
