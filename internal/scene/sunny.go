package scene

import (
	"github.com/lox/nimbus/internal/assets"
	"github.com/lox/nimbus/internal/particle"
	"github.com/lox/nimbus/internal/surface"
)

// sunFramePeriod is how many frames each sun rotation frame is held.
const sunFramePeriod = 15

func drawSunny(s surface.Surface, l layout, clouds []particle.Cloud, frame int) {
	l.fillSky(s, constant(pal.Sun.WithDim()))

	sun := assets.SunFrames[(frame/sunFramePeriod)%len(assets.SunFrames)]
	x := max(0, l.w/2-10)
	for i, line := range sun {
		if y := 3 + i; y < l.sky {
			s.Write(y, x, line, pal.Sun)
		}
	}

	for _, c := range clouds {
		drawCloud(s, l, c, pal.General.WithBold())
	}

	s.Write(l.sky, 0, repeat(assets.GroundGrass, l.w), pal.Ground)
}

func drawCloudy(s surface.Surface, l layout, clouds []particle.Cloud) {
	l.fillSky(s, constant(pal.Dim.WithDim()))

	for _, c := range clouds {
		drawCloud(s, l, c, pal.Dim.WithBold())
	}
}
