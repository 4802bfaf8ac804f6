package config

import "testing"

const defaults = `
geocoding:
  baseUrl: https://geocoding-api.open-meteo.com/v1/search
  count: 10

weather:
  baseUrl: https://api.open-meteo.com/v1/forecast
`

func TestLoadDefaults(t *testing.T) {
	config, err := Load([]byte(defaults))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Geocoding.BaseURL != "https://geocoding-api.open-meteo.com/v1/search" {
		t.Errorf("unexpected geocoding base: %q", config.Geocoding.BaseURL)
	}
	if config.Geocoding.Count != 10 {
		t.Errorf("unexpected count: %d", config.Geocoding.Count)
	}
	if config.Weather.BaseURL != "https://api.open-meteo.com/v1/forecast" {
		t.Errorf("unexpected weather base: %q", config.Weather.BaseURL)
	}
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("GEOCODING_BASE_URL", "http://127.0.0.1:9090/v1/search")
	t.Setenv("WEATHER_BASE_URL", "http://127.0.0.1:9091/v1/forecast")

	config, err := Load([]byte(defaults))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Geocoding.BaseURL != "http://127.0.0.1:9090/v1/search" {
		t.Errorf("expected the override, got %q", config.Geocoding.BaseURL)
	}
	if config.Weather.BaseURL != "http://127.0.0.1:9091/v1/forecast" {
		t.Errorf("expected the override, got %q", config.Weather.BaseURL)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing weather base", "geocoding:\n  baseUrl: https://example.com\n  count: 5\n"},
		{"count out of range", "geocoding:\n  baseUrl: https://example.com\n  count: 11\nweather:\n  baseUrl: https://example.com\n"},
		{"not yaml", "{{"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Load([]byte(c.raw)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
