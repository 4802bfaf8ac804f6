package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

type Config struct {
	Geocoding struct {
		BaseURL string `yaml:"baseUrl" validate:"required,url"`
		Count   int    `yaml:"count" validate:"min=1,max=10"`
	} `yaml:"geocoding"`
	Weather struct {
		BaseURL string `yaml:"baseUrl" validate:"required,url"`
	} `yaml:"weather"`
}

// Load parses the embedded defaults, then applies environment overrides.
// A missing .env file is not an error.
func Load(raw []byte) (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}

	if err := yaml.Unmarshal(raw, config); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if v := os.Getenv("GEOCODING_BASE_URL"); v != "" {
		config.Geocoding.BaseURL = v
	}
	if v := os.Getenv("WEATHER_BASE_URL"); v != "" {
		config.Weather.BaseURL = v
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return config, nil
}
