package scene

import "github.com/lox/nimbus/internal/surface"

// Palette names the attributes every scene and panel draws with.
type Palette struct {
	Rain    surface.Attr
	Ripple  surface.Attr
	General surface.Attr
	Sun     surface.Attr
	Ground  surface.Attr
	Error   surface.Attr
	Status  surface.Attr
	Dim     surface.Attr
	House   surface.Attr
	Title   surface.Attr
	Flash   surface.Attr
	Snow    surface.Attr
	Window  surface.Attr
}

// DefaultPalette uses the basic eight colors plus a 256-color gray, so
// every common terminal renders it.
var DefaultPalette = Palette{
	Rain:    surface.Attr{FG: surface.ColorBlue},
	Ripple:  surface.Attr{FG: surface.ColorCyan},
	General: surface.Attr{FG: surface.ColorWhite},
	Sun:     surface.Attr{FG: surface.ColorYellow, Bold: true},
	Ground:  surface.Attr{FG: surface.ColorGreen},
	Error:   surface.Attr{FG: surface.ColorRed},
	Status:  surface.Attr{FG: surface.ColorYellow, BG: surface.ColorBlack},
	Dim:     surface.Attr{FG: surface.ColorGray},
	House:   surface.Attr{FG: surface.ColorWhite, Bold: true},
	Title:   surface.Attr{FG: surface.ColorYellow, Bold: true},
	Flash:   surface.Attr{FG: surface.ColorYellow, Bold: true},
	Snow:    surface.Attr{FG: surface.ColorWhite, Bold: true},
	Window:  surface.Attr{FG: surface.ColorYellow},
}

var pal = DefaultPalette
