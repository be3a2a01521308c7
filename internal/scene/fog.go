package scene

import (
	"math"

	"github.com/lox/nimbus/internal/assets"
	"github.com/lox/nimbus/internal/surface"
)

// fogTimeStep converts frames to the phase of the fog wave.
const fogTimeStep = 0.02

// drawFog fills the sky with fog whose rows drift sideways on a slow sine
// wave, so denser patches roll vertically through the scene.
func drawFog(s surface.Surface, l layout, frame int) {
	t := float64(frame) * fogTimeStep
	for row := 0; row < l.sky; row++ {
		s.Write(row, 0, tile(assets.FogBand, fogOffset(t, row), l.w), pal.Dim.WithDim())
	}
}

// fogOffset is the column shift of fog row at time t.
func fogOffset(t float64, row int) int {
	return int(math.Sin(t+float64(row)*0.3) * 3)
}
