package particle

import (
	"math/rand/v2"
	"unicode/utf8"
)

// cloudGap is how far past its own width a wrapped cloud restarts.
const cloudGap = 5

// Cloud is a multi-line shape drifting right along a fixed row.
type Cloud struct {
	X     float64
	Row   int
	Speed float64
	Shape []string
	Width int
}

func newCloud(rng *rand.Rand, b Bounds, row int, shape []string) Cloud {
	width := 0
	for _, line := range shape {
		width = max(width, utf8.RuneCountInString(line))
	}
	return Cloud{
		X:     float64(randInt(rng, -cloudGap, int(b.MaxX))),
		Row:   row,
		Speed: uniform(rng, 0.05, 0.15),
		Shape: shape,
		Width: width,
	}
}

// Update advances c by one tick. Once fully past the right edge it jumps
// back to just off the left edge.
func (c *Cloud) Update(b Bounds) {
	c.X += c.Speed
	if c.X > b.MaxX+float64(c.Width) {
		c.X = -float64(c.Width + cloudGap)
	}
}
