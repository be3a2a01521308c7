package scene

import (
	"unicode"

	"github.com/lox/nimbus/internal/assets"
	"github.com/lox/nimbus/internal/particle"
	"github.com/lox/nimbus/internal/surface"
)

func drawSnow(s surface.Surface, l layout, flakes []particle.Flake) {
	l.fillSky(s, constant(pal.General.WithDim()))

	for _, f := range flakes {
		iy, ix := int(f.Y), int(f.X)
		if l.inSky(iy, ix) {
			s.Write(iy, ix, string(flakeGlyph(f.Glyph)), pal.Snow)
		}
	}

	ground := repeat(assets.GroundSnow, l.w/len(assets.GroundSnow)+1)
	s.Write(l.sky, 0, fit(ground, l.w), pal.Snow)
}

// flakeGlyph substitutes an asterisk for glyphs a plain terminal may not
// draw.
func flakeGlyph(r rune) rune {
	if r > unicode.MaxASCII || !unicode.IsPrint(r) {
		return '*'
	}
	return r
}
