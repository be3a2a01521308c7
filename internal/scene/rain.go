package scene

import (
	"github.com/lox/nimbus/internal/assets"
	"github.com/lox/nimbus/internal/particle"
	"github.com/lox/nimbus/internal/surface"
)

const (
	// ripplePeriod is how many frames each ripple glyph is held.
	ripplePeriod = 6
	// rippleSpacing is the column distance between puddles.
	rippleSpacing = 9
)

// drawRain is a calm drizzle: tinted sky, two cloud bands scrolling at
// different speeds, straight drops and puddle ripples along the ground.
func drawRain(s surface.Surface, l layout, drops []particle.Drop, frame int) {
	l.fillSky(s, func(row int) surface.Attr {
		if row < l.sky/2 {
			return pal.Ripple.WithDim()
		}
		return pal.Ripple
	})

	drawRainBand(s, l, 1, assets.RainBands[0], frame/2)
	drawRainBand(s, l, 4, assets.RainBands[1], frame/3)

	for _, d := range drops {
		iy, ix := int(d.Y), int(d.X)
		if l.inSky(iy, ix) {
			s.Write(iy, ix, string(d.Glyph), pal.Rain)
		}
	}

	for col := 3; col < l.w-3; col += rippleSpacing {
		glyph := rippleAt(frame, col)
		s.Write(l.sky, col, glyph, pal.Ripple.WithBold())
		if col+2 < l.w-1 {
			s.Write(l.sky, col+2, glyph, pal.Rain)
		}
	}
}

// rippleAt returns the ripple glyph for the puddle at col. Each column is
// offset in phase so neighbouring puddles do not pulse together.
func rippleAt(frame, col int) string {
	return assets.Ripples[((frame+col*3)/ripplePeriod)%len(assets.Ripples)]
}

// drawRainBand scrolls band rightwards by offset columns along row.
func drawRainBand(s surface.Surface, l layout, row int, band string, offset int) {
	if row < 0 || row >= l.sky {
		return
	}
	s.Write(row, 0, tile([]rune(band), -offset, l.w), pal.General.WithBold())
}
