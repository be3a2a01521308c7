package models

import "strings"

// WeatherType selects which scene the compositor draws.
type WeatherType int

const (
	Sun WeatherType = iota
	Cloud
	Rain
	Snow
	Thunder
	Fog
)

// WeatherTypes lists every weather type in declaration order.
var WeatherTypes = []WeatherType{Sun, Cloud, Rain, Snow, Thunder, Fog}

func (w WeatherType) String() string {
	switch w {
	case Sun:
		return "sun"
	case Cloud:
		return "cloud"
	case Rain:
		return "rain"
	case Snow:
		return "snow"
	case Thunder:
		return "thunder"
	case Fog:
		return "fog"
	default:
		return "sun"
	}
}

// ParseWeatherType maps a name like "rain" to its WeatherType. Unknown
// names map to Sun and report false.
func ParseWeatherType(s string) (WeatherType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sun":
		return Sun, true
	case "cloud":
		return Cloud, true
	case "rain":
		return Rain, true
	case "snow":
		return Snow, true
	case "thunder":
		return Thunder, true
	case "fog":
		return Fog, true
	default:
		return Sun, false
	}
}

// Snapshot is one weather result handed from the feed to the render loop.
// A snapshot with a non-empty Error is the error variant and carries no
// other data.
type Snapshot struct {
	Type        WeatherType
	Description string
	TempC       string
	TempF       string
	FeelsLikeC  string
	Humidity    string
	WindKmph    string
	Visibility  string
	Location    string

	Error string
}

// ErrorSnapshot returns the error variant for msg.
func ErrorSnapshot(msg string) *Snapshot {
	return &Snapshot{Error: msg}
}

func (s *Snapshot) IsError() bool {
	return s != nil && s.Error != ""
}

// SceneType returns the weather type to render for s. Error and missing
// snapshots render the sun scene.
func (s *Snapshot) SceneType() WeatherType {
	if s == nil || s.IsError() {
		return Sun
	}
	return s.Type
}
