package models

import "testing"

func TestParseWeatherType(t *testing.T) {
	tests := []struct {
		in     string
		want   WeatherType
		wantOK bool
	}{
		{"sun", Sun, true},
		{"Rain", Rain, true},
		{" snow ", Snow, true},
		{"cloud", Cloud, true},
		{"THUNDER", Thunder, true},
		{"fog", Fog, true},
		{"hail", Sun, false},
		{"", Sun, false},
	}
	for _, tt := range tests {
		got, ok := ParseWeatherType(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseWeatherType(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}

	for _, w := range WeatherTypes {
		if got, ok := ParseWeatherType(w.String()); !ok || got != w {
			t.Errorf("ParseWeatherType(%q) = %v, %v, want %v", w.String(), got, ok, w)
		}
	}
}

func TestSceneType(t *testing.T) {
	var missing *Snapshot
	tests := []struct {
		name string
		snap *Snapshot
		want WeatherType
	}{
		{"nil", missing, Sun},
		{"error", ErrorSnapshot("timeout"), Sun},
		{"error keeps sun even with a type", &Snapshot{Type: Rain, Error: "x"}, Sun},
		{"snow", &Snapshot{Type: Snow}, Snow},
		{"out of range", &Snapshot{Type: WeatherType(42)}, WeatherType(42)},
	}
	for _, tt := range tests {
		if got := tt.snap.SceneType(); got != tt.want {
			t.Errorf("%s: SceneType() = %v, want %v", tt.name, got, tt.want)
		}
	}

	if missing.IsError() {
		t.Error("nil snapshot should not be an error")
	}
	if WeatherType(42).String() != "sun" {
		t.Errorf("unknown type String() = %q, want sun", WeatherType(42).String())
	}
}
