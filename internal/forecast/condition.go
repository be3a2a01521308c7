package forecast

import (
	"strings"

	"github.com/lox/nimbus/internal/models"
)

// conditionKeywords is checked in order; the first weather type with a
// keyword contained in the description wins.
var conditionKeywords = []struct {
	weather  models.WeatherType
	keywords []string
}{
	{models.Thunder, []string{"thunder", "storm", "lightning"}},
	{models.Rain, []string{"rain", "drizzle", "shower"}},
	{models.Snow, []string{"snow", "sleet", "blizzard", "ice"}},
	{models.Sun, []string{"sunny", "clear"}},
	{models.Cloud, []string{"cloud", "overcast"}},
	{models.Fog, []string{"fog", "mist", "haze"}},
}

// ClassifyCondition maps a free-text weather description such as
// "Patchy light rain" to the scene that best represents it. Descriptions
// that match nothing render as sun.
func ClassifyCondition(description string) models.WeatherType {
	lower := strings.ToLower(description)

	for _, c := range conditionKeywords {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.weather
			}
		}
	}
	return models.Sun
}

// Label returns the short banner shown next to the location in the info
// panel.
func Label(w models.WeatherType) string {
	switch w {
	case models.Sun:
		return "( SUN )"
	case models.Cloud:
		return "~CLOUDS~"
	case models.Rain:
		return `///RAIN\\\`
	case models.Snow:
		return "* SNOW *"
	case models.Thunder:
		return "!STORM!"
	case models.Fog:
		return "...FOG..."
	default:
		return "?"
	}
}
