// Package scene composes weather scenes onto a surface. Every function here
// is a pure function of its arguments: the same inputs always produce the
// same cells, and nothing outside the surface is written.
package scene

import (
	"strings"
	"unicode/utf8"

	"github.com/lox/nimbus/internal/models"
	"github.com/lox/nimbus/internal/particle"
	"github.com/lox/nimbus/internal/surface"
)

// Version is shown in the status bar.
const Version = "v1.0"

const (
	// MinWidth and MinHeight are the smallest surface a full scene fits on.
	MinWidth  = 50
	MinHeight = 20

	// groundOffset is the number of rows from the ground line to the
	// bottom: the house, the info panel and the status bar.
	groundOffset = 14
	panelOffset  = 13
)

// layout is the frame geometry, read fresh from the surface on every draw
// because the terminal may have been resized since the last one.
type layout struct {
	w, h int
	sky  int
}

func newLayout(s surface.Surface) layout {
	w, h := s.Size()
	return layout{w: w, h: h, sky: h - groundOffset}
}

// inSky reports whether row, col lies inside the sky area.
func (l layout) inSky(row, col int) bool {
	return row >= 0 && row < l.sky && col >= 0 && col < l.w
}

// fillSky paints every sky row with attr'd blanks.
func (l layout) fillSky(s surface.Surface, attr func(row int) surface.Attr) {
	blank := strings.Repeat(" ", max(l.w, 0))
	for row := 0; row < l.sky; row++ {
		s.Write(row, 0, blank, attr(row))
	}
}

func constant(a surface.Attr) func(int) surface.Attr {
	return func(int) surface.Attr { return a }
}

// Draw renders a complete frame for weather: the scene, the house, the
// info panel for snap and the status bar, in that order so later layers
// occlude earlier ones.
func Draw(s surface.Surface, weather models.WeatherType, pool *particle.Pool, frame int, snap *models.Snapshot) {
	DrawScene(s, weather, pool, frame)
	DrawHouse(s, weather)
	DrawInfoPanel(s, snap, frame)
	DrawStatusBar(s, frame)
}

// DrawScene renders the sky, particles and ground for weather.
func DrawScene(s surface.Surface, weather models.WeatherType, pool *particle.Pool, frame int) {
	if pool == nil {
		pool = &particle.Pool{}
	}
	frame = max(frame, 0)
	l := newLayout(s)

	switch weather {
	case models.Cloud:
		drawCloudy(s, l, pool.Clouds)
	case models.Rain:
		drawRain(s, l, pool.Drops, frame)
	case models.Thunder:
		drawThunder(s, l, pool.Drops, frame)
	case models.Snow:
		drawSnow(s, l, pool.Flakes)
	case models.Fog:
		drawFog(s, l, frame)
	default:
		drawSunny(s, l, pool.Clouds[:min(2, len(pool.Clouds))], frame)
	}
}

// drawCloud renders one cloud, clipped to the sky.
func drawCloud(s surface.Surface, l layout, c particle.Cloud, attr surface.Attr) {
	for i, line := range c.Shape {
		y := c.Row + i
		if y < 0 || y >= l.sky {
			continue
		}
		x := int(c.X)
		runes := []rune(line)
		if x < 0 {
			runes = runes[min(-x, len(runes)):]
			x = 0
		}
		if x+len(runes) > l.w {
			runes = runes[:max(0, l.w-x)]
		}
		if len(runes) > 0 {
			s.Write(y, x, string(runes), attr)
		}
	}
}

// tile returns width runes of band starting at offset, wrapping as needed.
// Negative offsets scroll the other way.
func tile(band []rune, offset, width int) string {
	if len(band) == 0 || width <= 0 {
		return ""
	}
	out := make([]rune, width)
	n := len(band)
	for i := range out {
		out[i] = band[((offset+i)%n+n)%n]
	}
	return string(out)
}

func repeat(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(s, width)
}

// fit truncates or right-pads text to exactly width runes.
func fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	n := utf8.RuneCountInString(text)
	if n > width {
		return string([]rune(text)[:width])
	}
	return text + strings.Repeat(" ", width-n)
}
