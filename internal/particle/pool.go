package particle

import (
	"math/rand/v2"

	"github.com/lox/nimbus/internal/assets"
	"github.com/lox/nimbus/internal/models"
)

const (
	MaxDrops  = 60
	MaxFlakes = 40
)

// fleet is the lane range and shape of each cloud, left to right.
var fleet = []struct {
	minRow, maxRow int
	shape          []string
}{
	{1, 6, assets.CloudLarge},
	{2, 5, assets.CloudSmall},
	{1, 4, assets.CloudLarge},
	{3, 7, assets.CloudSmall},
	{1, 5, assets.CloudLarge},
}

// Pool owns every live particle. It is not safe for concurrent use.
type Pool struct {
	Drops  []Drop
	Flakes []Flake
	Clouds []Cloud

	bounds Bounds
	rng    *rand.Rand
}

// Spawn sizes a pool for a width×height surface: half a drop and half a
// flake per column up to their caps, plus the cloud fleet. A surface with
// no columns gets an empty pool.
func Spawn(width, height int, rng *rand.Rand) *Pool {
	p := &Pool{
		bounds: Bounds{MaxX: float64(width), MaxY: float64(height)},
		rng:    rng,
	}
	if width <= 0 || height < 0 {
		return p
	}

	p.Drops = make([]Drop, min(MaxDrops, width/2))
	for i := range p.Drops {
		p.Drops[i] = newDrop(rng, p.bounds)
	}
	p.Flakes = make([]Flake, min(MaxFlakes, width/2))
	for i := range p.Flakes {
		p.Flakes[i] = newFlake(rng, p.bounds)
	}
	p.Clouds = make([]Cloud, len(fleet))
	for i, c := range fleet {
		p.Clouds[i] = newCloud(rng, p.bounds, randInt(rng, c.minRow, c.maxRow), c.shape)
	}
	return p
}

// Bounds returns the area the pool was spawned for.
func (p *Pool) Bounds() Bounds {
	return p.bounds
}

// Empty reports whether the pool holds no particles at all.
func (p *Pool) Empty() bool {
	return len(p.Drops) == 0 && len(p.Flakes) == 0 && len(p.Clouds) == 0
}

// Tick advances every particle one step. Thunder drives drops in the storm
// regime, anything else in the calm one.
func (p *Pool) Tick(weather models.WeatherType) {
	regime := Calm
	if weather == models.Thunder {
		regime = Storm
	}

	for i := range p.Drops {
		d := &p.Drops[i]
		d.adopt(p.rng, regime)
		d.Update(p.rng, regime.Wind, p.bounds)
	}
	for i := range p.Flakes {
		p.Flakes[i].Update(p.rng, p.bounds)
	}
	for i := range p.Clouds {
		p.Clouds[i].Update(p.bounds)
	}
}
