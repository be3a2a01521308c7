package particle

import (
	"math"
	"math/rand/v2"

	"github.com/lox/nimbus/internal/assets"
)

// swayAmplitude bounds a flake's sideways movement per tick.
const swayAmplitude = 0.4

// flakeReentryY is where respawned flakes start, just above the top row.
const flakeReentryY = -2

// Flake is a snowflake swaying on a sine wave as it falls.
type Flake struct {
	X, Y  float64
	Speed float64
	Phase float64
	Freq  float64
	Glyph rune
}

func newFlake(rng *rand.Rand, b Bounds) Flake {
	var f Flake
	f.respawn(rng, b, true)
	return f
}

func (f *Flake) respawn(rng *rand.Rand, b Bounds, initial bool) {
	f.X = uniform(rng, 0, b.MaxX)
	if initial {
		f.Y = uniform(rng, -b.MaxY*0.3, 0)
	} else {
		f.Y = flakeReentryY
	}
	f.Speed = uniform(rng, 0.3, 0.9)
	f.Freq = uniform(rng, 0.05, 0.15)
	f.Phase = uniform(rng, 0, 2*math.Pi)
	f.Glyph = pick(rng, assets.FlakeGlyphs)
}

// Update advances f by one tick.
func (f *Flake) Update(rng *rand.Rand, b Bounds) {
	f.Y += f.Speed
	f.Phase += f.Freq
	f.X += math.Sin(f.Phase) * swayAmplitude
	if f.Y > b.MaxY {
		f.respawn(rng, b, false)
	}
}
