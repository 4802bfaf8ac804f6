package main

import (
	"context"
	_ "embed"
	"log"

	"github.com/eskendarov/weather-app/apis/geocoding"
	"github.com/eskendarov/weather-app/apis/openmeteo"
	"github.com/eskendarov/weather-app/cli"
	"github.com/eskendarov/weather-app/config"
	"github.com/eskendarov/weather-app/manager"
)

//go:embed config.yaml
var configRaw []byte

func main() {
	ctx := context.Background()

	cfg, err := config.Load(configRaw)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	lookup := manager.New(
		geocoding.New(cfg.Geocoding.BaseURL, cfg.Geocoding.Count),
		openmeteo.New(cfg.Weather.BaseURL),
	)

	cmd, err := cli.New(lookup)
	if err != nil {
		log.Printf("new cli: %s\n", err)
	}

	if err = cmd.ExecuteContext(ctx); err != nil {
		log.Printf("exec: %s\n", err)
	}
}
