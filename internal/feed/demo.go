package feed

import (
	"context"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lox/nimbus/internal/metrics"
	"github.com/lox/nimbus/internal/models"
)

// Demo serves fixed readings for a chosen weather type without touching
// the network.
type Demo struct {
	weather models.WeatherType
}

func NewDemo(weather models.WeatherType) *Demo {
	return &Demo{weather: weather}
}

func (d *Demo) Fetch(ctx context.Context) models.Snapshot {
	metrics.FetchesTotal.WithLabelValues("demo", "ok").Inc()
	return DemoSnapshot(d.weather)
}

// DemoSnapshot returns the demo readings for weather.
func DemoSnapshot(weather models.WeatherType) models.Snapshot {
	return models.Snapshot{
		Type:        weather,
		Description: cases.Title(language.English).String(weather.String()) + " (Demo)",
		TempC:       "22",
		TempF:       "72",
		FeelsLikeC:  "21",
		Humidity:    "65",
		WindKmph:    "15",
		Visibility:  "10",
		Location:    "Demo City",
	}
}
