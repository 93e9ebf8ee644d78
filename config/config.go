package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment overrides, e.g. VEHICLES_TRUCK__MAX_LOAD.
const EnvPrefix = "VEHICLES_"

type Config struct {
	Truck   TruckConfig   `json:"truck"`
	Car     CarConfig     `json:"car"`
	Bus     BusConfig     `json:"bus"`
	Logging LoggingConfig `json:"logging"`
	Metrics MetricsConfig `json:"metrics"`
}

// Default returns the demo fleet used when nothing is configured.
func Default() Config {
	return Config{
		Truck:   TruckConfig{Brand: "Volvo", Model: "FH16", MaxLoad: 20000, Cargo: 5000},
		Car:     CarConfig{Brand: "Toyota", Model: "Camry", Doors: 4},
		Bus:     BusConfig{Brand: "Mercedes", Model: "Sprinter", Capacity: 20},
		Logging: LoggingConfig{Level: "debug", Format: "console"},
	}
}

// Load reads path on top of Default and applies environment overrides.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		var parser koanf.Parser
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Truck.Validate(); err != nil {
		return fmt.Errorf("truck: %w", err)
	}
	if err := c.Car.Validate(); err != nil {
		return fmt.Errorf("car: %w", err)
	}
	if err := c.Bus.Validate(); err != nil {
		return fmt.Errorf("bus: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}
