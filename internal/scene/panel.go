package scene

import (
	"fmt"
	"unicode/utf8"

	"github.com/lox/nimbus/internal/forecast"
	"github.com/lox/nimbus/internal/models"
	"github.com/lox/nimbus/internal/surface"
)

// DrawInfoPanel draws the panel in the bottom rows: a loading line while
// snap is nil, the error message for an error snapshot, otherwise the
// location header and three weather cards.
func DrawInfoPanel(s surface.Surface, snap *models.Snapshot, frame int) {
	w, h := s.Size()
	top := h - panelOffset

	s.Write(top, 0, repeat("─", w), pal.Sun)

	switch {
	case snap == nil:
		dots := repeat(".", (max(frame, 0)/10)%4)
		s.Write(top+1, 2, "  Fetching weather data"+dots, pal.General)
	case snap.IsError():
		s.Write(top+1, 2, "  Error: "+snap.Error, pal.Error)
		s.Write(top+2, 2, "  Tip: pass a city name -- e.g.  nimbus Bengaluru", pal.General)
	default:
		drawWeatherCards(s, top, snap)
	}
}

type cardLine struct {
	text string
	attr surface.Attr
}

func drawWeatherCards(s surface.Surface, top int, snap *models.Snapshot) {
	w, _ := s.Size()
	location := snap.Location
	if location == "" {
		location = "Unknown"
	}
	header := fmt.Sprintf("  %s  %s", forecast.Label(snap.Type), location)
	s.Write(top+1, 0, header, pal.Title)
	s.Write(top+1, utf8.RuneCountInString(header), "  ["+snap.Description+"]", pal.General)

	row := top + 3
	colW := (w - 2) / 3

	drawCard(s, row, 1, colW-1, []cardLine{
		{"  TEMPERATURE  ", pal.Sun},
		{fmt.Sprintf("  %s°C  /  %s°F  ", snap.TempC, snap.TempF), pal.General.WithBold()},
		{fmt.Sprintf("  Feels like: %s°C  ", snap.FeelsLikeC), pal.General},
	})
	drawCard(s, row, colW+1, colW-1, []cardLine{
		{"  WIND & HUMIDITY  ", pal.Rain.WithBold()},
		{fmt.Sprintf("  Humidity: %s%%  ", snap.Humidity), pal.General},
		{fmt.Sprintf("  Wind: %s km/h  ", snap.WindKmph), pal.General},
	})
	drawCard(s, row, colW*2+1, colW-2, []cardLine{
		{"  VISIBILITY  ", pal.Ground.WithBold()},
		{fmt.Sprintf("  %s km  ", snap.Visibility), pal.General.WithBold()},
		{"  Press Q to quit  ", pal.Dim},
	})
}

// drawCard draws a bordered box of the given width at row, col with one
// line of text per entry. Text is cut to fit inside the border.
func drawCard(s surface.Surface, row, col, width int, lines []cardLine) {
	sw, sh := s.Size()
	if col >= sw || row >= sh || width < 3 {
		return
	}
	border := pal.Dim
	inner := width - 2

	s.Write(row, col, "┌"+repeat("─", inner)+"┐", border)
	for i, ln := range lines {
		y := row + 1 + i
		if y >= sh-1 {
			break
		}
		s.Write(y, col, "│", border)
		s.Write(y, col+1, fit(ln.text, inner), ln.attr)
		if col+width-1 < sw-1 {
			s.Write(y, col+width-1, "│", border)
		}
	}
	if bottom := row + 1 + len(lines); bottom < sh-1 {
		s.Write(bottom, col, "└"+repeat("─", inner)+"┘", border)
	}
}

// DrawStatusBar pins the key help and frame counter to the last row.
func DrawStatusBar(s surface.Surface, frame int) {
	w, h := s.Size()
	text := fmt.Sprintf(" [R] Refresh  [Q] Quit  |  Nimbus %s  |  Frame: %d ", Version, frame)
	s.Write(h-1, 0, fit(text, w), pal.Status)
}

// DrawLoading is the splash shown until the first snapshot arrives.
func DrawLoading(s surface.Surface, frame int) {
	w, h := s.Size()
	cx, cy := w/2, h/2
	title := "  Nimbus  "
	spinner := string(`|/-\`[(max(frame, 0)/3)%4])

	x := cx - len(title)/2
	s.Write(cy-3, x, "╔"+repeat("═", len(title))+"╗", pal.Sun)
	s.Write(cy-2, x, "║"+title+"║", pal.Sun)
	s.Write(cy-1, x, "╚"+repeat("═", len(title))+"╝", pal.Sun)
	s.Write(cy+1, cx-12, "Fetching weather data...", pal.General)
	s.Write(cy+2, cx, spinner, pal.Sun)
}

// DrawTooSmall replaces the scene when the surface cannot fit it.
func DrawTooSmall(s surface.Surface) {
	w, h := s.Size()
	msg := fmt.Sprintf("Terminal too small — need %d×%d, got %d×%d", MinWidth, MinHeight, w, h)
	s.Write(0, 0, msg, pal.Error)
}

// Fits reports whether a full scene fits on a width×height surface.
func Fits(width, height int) bool {
	return width >= MinWidth && height >= MinHeight
}
