package forecast

import (
	"testing"

	"github.com/lox/nimbus/internal/models"
)

func TestClassifyCondition(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        models.WeatherType
	}{
		{
			name:        "thunderstorm",
			description: "Thundery outbreaks possible",
			want:        models.Thunder,
		},
		{
			name:        "storm beats rain",
			description: "Moderate or heavy rain with thunder",
			want:        models.Thunder,
		},
		{
			name:        "light rain",
			description: "Patchy light rain",
			want:        models.Rain,
		},
		{
			name:        "drizzle",
			description: "Light drizzle",
			want:        models.Rain,
		},
		{
			name:        "showers",
			description: "Light rain shower",
			want:        models.Rain,
		},
		{
			name:        "snow",
			description: "Heavy snow",
			want:        models.Snow,
		},
		{
			name:        "sleet",
			description: "Light sleet",
			want:        models.Snow,
		},
		{
			name:        "ice pellets",
			description: "Ice pellets",
			want:        models.Snow,
		},
		{
			name:        "sunny",
			description: "Sunny",
			want:        models.Sun,
		},
		{
			name:        "clear",
			description: "Clear",
			want:        models.Sun,
		},
		{
			name:        "partly cloudy",
			description: "Partly cloudy",
			want:        models.Cloud,
		},
		{
			name:        "overcast",
			description: "Overcast",
			want:        models.Cloud,
		},
		{
			name:        "fog",
			description: "Freezing fog",
			want:        models.Fog,
		},
		{
			name:        "mist",
			description: "Mist",
			want:        models.Fog,
		},
		{
			name:        "case insensitive",
			description: "HAZE",
			want:        models.Fog,
		},
		{
			name:        "unknown defaults to sun",
			description: "Volcanic ash",
			want:        models.Sun,
		},
		{
			name:        "empty defaults to sun",
			description: "",
			want:        models.Sun,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyCondition(tt.description)
			if got != tt.want {
				t.Errorf("ClassifyCondition(%q) = %v, want %v", tt.description, got, tt.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	seen := make(map[string]models.WeatherType)
	for _, w := range models.WeatherTypes {
		label := Label(w)
		if label == "" || label == "?" {
			t.Errorf("Label(%v) = %q, want a banner", w, label)
		}
		if other, ok := seen[label]; ok {
			t.Errorf("Label(%v) = %q, same as %v", w, label, other)
		}
		seen[label] = w
	}
}
