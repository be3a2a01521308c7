package scene

import (
	"github.com/lox/nimbus/internal/assets"
	"github.com/lox/nimbus/internal/particle"
	"github.com/lox/nimbus/internal/surface"
)

const (
	// thunderCycle is the length in frames of one strike cycle.
	thunderCycle = 90
	flashFrames  = 4
	boltFrames   = 6
	shakeFrames  = 3
)

// strike is where in the thunder cycle a frame falls.
type strike struct {
	cycle int // index of the current cycle
	flash bool
	bolt  bool
	shake int // rows the sky is pushed down
}

func strikeAt(frame int) strike {
	pos := frame % thunderCycle
	st := strike{
		cycle: frame / thunderCycle,
		flash: pos < flashFrames,
		bolt:  pos < boltFrames,
	}
	if pos < shakeFrames && frame%2 == 0 {
		st.shake = 1
	}
	return st
}

// drawThunder is a violent storm: dark sky, heavy cloud bands, slanted
// streaking rain, a sky-wide flash with a bolt at the start of every cycle
// and flood water on the ground.
func drawThunder(s surface.Surface, l layout, drops []particle.Drop, frame int) {
	st := strikeAt(frame)

	if st.flash {
		flash := repeat("░", l.w)
		for row := 0; row < l.sky; row++ {
			if y := row + st.shake; y < l.sky {
				s.Write(y, 0, flash, pal.Flash)
			}
		}
	} else {
		l.fillSky(s, constant(pal.Rain.WithDim()))
	}

	for i, band := range assets.StormBands {
		row := i + st.shake
		if row < 0 || row >= l.sky {
			continue
		}
		attr := pal.Dim
		if i == 2 {
			attr = attr.WithDim()
		}
		s.Write(row, 0, tile([]rune(band), frame/4+i*7, l.w), attr)
	}

	if st.bolt {
		drawBolt(s, l, st)
	}

	for _, d := range drops {
		iy, ix := int(d.Y)+st.shake, int(d.X)
		glyph := "/"
		if int(d.X*7)%3 == 0 {
			glyph = "|"
		}
		attr := pal.Rain
		if st.flash {
			attr = pal.General.WithBold()
		}
		if l.inSky(iy, ix) {
			s.Write(iy, ix, glyph, attr)
		}
		if l.inSky(iy+1, ix) {
			s.Write(iy+1, ix, "/", pal.Rain.WithDim())
		}
	}

	wave := make([]rune, max(l.w, 0))
	for col := range wave {
		wave[col] = assets.FloodWave[(col+frame/2)%len(assets.FloodWave)]
	}
	s.Write(l.sky, 0, string(wave), pal.Rain.WithBold())
	if l.sky+1 < l.h-1 {
		s.Write(l.sky+1, 0, repeat("░", l.w), pal.Rain.WithDim())
	}
}

// drawBolt draws the bolt for st's cycle. Each cycle uses the next bolt
// shape and strikes further along the sky.
func drawBolt(s surface.Surface, l layout, st strike) {
	bolt := assets.LightningBolts[st.cycle%len(assets.LightningBolts)]
	x := l.w / 3
	if half := l.w / 2; half > 0 {
		x += (st.cycle * 17) % half
	}
	y := len(assets.StormBands) + 1 + st.shake

	for i, line := range bolt {
		row := y + i
		if row < 0 || row >= l.sky {
			continue
		}
		col := max(0, min(x, l.w-len(line)-1))
		s.Write(row, col, line, pal.Flash)
	}
}
