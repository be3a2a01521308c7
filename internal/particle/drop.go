// Package particle simulates the rain, snow and cloud layers. Particles are
// plain values stored in fixed slices; a particle that leaves the visible
// area is re-randomized in its slot instead of being replaced.
package particle

import (
	"math/rand/v2"

	"github.com/lox/nimbus/internal/assets"
)

// Bounds is the area particles were spawned for. It is fixed at spawn time
// and may be stale after the terminal is resized.
type Bounds struct {
	MaxX, MaxY float64
}

// Regime is a band of fall speeds with the sideways wind that goes with it.
type Regime struct {
	MinSpeed, MaxSpeed float64
	Wind               float64
}

var (
	// Calm is steady rain with a light drift.
	Calm = Regime{MinSpeed: 1.2, MaxSpeed: 2.0, Wind: 0.15}
	// Storm is fast, wind-driven rain for thunder scenes.
	Storm = Regime{MinSpeed: 2.5, MaxSpeed: 4.0, Wind: 0.9}
)

// regimeThreshold is the speed that separates calm drops from storm drops.
const regimeThreshold = 2.5

// Drop is a falling raindrop.
type Drop struct {
	X, Y  float64
	Speed float64
	Glyph rune
}

func newDrop(rng *rand.Rand, b Bounds) Drop {
	var d Drop
	d.respawn(rng, b, true)
	return d
}

// respawn re-randomizes d. An initial spawn starts up to half a screen
// above the top so drops enter staggered; later respawns start at the top.
func (d *Drop) respawn(rng *rand.Rand, b Bounds, initial bool) {
	d.X = uniform(rng, 0, b.MaxX)
	if initial {
		d.Y = uniform(rng, -b.MaxY*0.5, 0)
	} else {
		d.Y = 0
	}
	d.Speed = uniform(rng, Calm.MinSpeed, Calm.MaxSpeed)
	d.Glyph = pick(rng, assets.DropGlyphs)
}

// Update advances d by one tick, blown sideways by wind.
func (d *Drop) Update(rng *rand.Rand, wind float64, b Bounds) {
	d.Y += d.Speed
	d.X += wind
	if d.Y > b.MaxY || d.X > b.MaxX {
		d.respawn(rng, b, false)
	}
}

// adopt moves d into r's speed band if it is on the wrong side of the
// regime threshold. Drops already in the right band keep their speed.
func (d *Drop) adopt(rng *rand.Rand, r Regime) {
	switch {
	case r.MinSpeed >= regimeThreshold && d.Speed < regimeThreshold:
		d.Speed = uniform(rng, r.MinSpeed, r.MaxSpeed)
	case r.MinSpeed < regimeThreshold && d.Speed > regimeThreshold:
		d.Speed = uniform(rng, r.MinSpeed, r.MaxSpeed)
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// randInt returns an integer in [lo, hi].
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

func pick(rng *rand.Rand, glyphs []rune) rune {
	return glyphs[rng.IntN(len(glyphs))]
}
