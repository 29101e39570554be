package fire

import (
	"fmt"

	"doomfire/internal/core"
)

// MaxDecay is the largest intensity drop a cell can take in one step.
const MaxDecay = 2

// DecaySource draws the per-cell decay amount. Values must lie in
// [0, MaxDecay].
type DecaySource interface {
	Decay() uint8
}

// DecayFunc adapts a plain function to DecaySource.
type DecayFunc func() uint8

// Decay calls f.
func (f DecayFunc) Decay() uint8 { return f() }

// FixedDecay always returns the same amount.
type FixedDecay uint8

// Decay returns d.
func (d FixedDecay) Decay() uint8 { return uint8(d) }

// RandomDecay draws uniformly from {0, 1, 2}.
type RandomDecay struct {
	rng *core.RNG
}

// NewRandomDecay returns a deterministic source for the given seed.
func NewRandomDecay(seed int64) *RandomDecay {
	return &RandomDecay{rng: core.NewRNG(seed)}
}

// Decay returns the next draw.
func (d *RandomDecay) Decay() uint8 { return d.rng.Uint8n(MaxDecay + 1) }

// Reseed restarts the draw sequence.
func (d *RandomDecay) Reseed(seed int64) { d.rng.Reseed(seed) }

type reseeder interface {
	Reseed(seed int64)
}

func checkedDecay(src DecaySource) uint8 {
	d := src.Decay()
	if d > MaxDecay {
		panic(fmt.Sprintf("fire: decay source returned %d, want [0, %d]", d, MaxDecay))
	}
	return d
}
