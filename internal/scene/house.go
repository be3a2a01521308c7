package scene

import (
	"github.com/lox/nimbus/internal/assets"
	"github.com/lox/nimbus/internal/models"
	"github.com/lox/nimbus/internal/surface"
)

// DrawHouse centres the house just above the info panel. Its windows are
// lit on sunny days.
func DrawHouse(s surface.Surface, weather models.WeatherType) {
	w, h := s.Size()
	row := max(1, h-groundOffset-len(assets.House)+2)
	col := max(0, (w-assets.HouseWidth)/2)
	drawHouseAt(s, row, col, weather == models.Sun)
}

// drawHouseAt places the house's top-left at row, col. Every glyph is
// checked against the current surface on its own, so a shrunken terminal
// truncates the house instead of misplacing it.
func drawHouseAt(s surface.Surface, row, col int, lit bool) {
	w, h := s.Size()
	window := pal.Window.WithDim()
	if lit {
		window = pal.Window
	}

	for i, line := range assets.House {
		y := row + i
		if y >= h-1 {
			break
		}
		if y < 0 {
			continue
		}
		x := col
		for _, ch := range line {
			if x >= 0 && x < w-1 {
				attr := pal.House
				if ch == '[' || ch == ']' {
					attr = window
				}
				s.Write(y, x, string(ch), attr)
			}
			x++
		}
	}
}
