package config

// ============================================================================
// CONFIG — Optional gapboard.yaml plus environment overrides
// ============================================================================
// Everything is defaulted so the binary runs with no configuration at all.
// Precedence: defaults < yaml file < environment.
// ============================================================================

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPort matches the port the dashboard has always lived on.
const DefaultPort = 8050

// Config is the full process configuration.
type Config struct {
	Port     int           `yaml:"port"`
	LogLevel string        `yaml:"logLevel"`
	Dataset  DatasetConfig `yaml:"dataset"`
	Defaults Defaults      `yaml:"defaults"`
}

// DatasetConfig selects the dataset source. File, when set, wins over URL.
type DatasetConfig struct {
	URL            string `yaml:"url"`
	File           string `yaml:"file"`
	FetchTimeoutMS int    `yaml:"fetchTimeoutMs"`
}

// Defaults seeds the initial widget state for every session.
type Defaults struct {
	Rows      int    `yaml:"rows"`
	XField    string `yaml:"xField"`
	YField    string `yaml:"yField"`
	Country   string `yaml:"country"`
	Year      int    `yaml:"year"`
	Variable  string `yaml:"variable"`
	Continent string `yaml:"continent"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Port:     DefaultPort,
		LogLevel: "info",
		Dataset: DatasetConfig{
			FetchTimeoutMS: 30_000,
		},
		Defaults: Defaults{
			Rows:      10,
			XField:    "gdpPercap",
			YField:    "lifeExp",
			Country:   "United States",
			Year:      2007,
			Variable:  "gdpPercap",
			Continent: "Asia",
		},
	}
}

// Load reads path (when it exists) over the defaults, then applies
// environment overrides. A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, cfg); err != nil {
				return nil, errors.Wrapf(err, "parse config %s", path)
			}
		case os.IsNotExist(err):
			// run on defaults
		default:
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	cfg.Port = envInt("GAPBOARD_PORT", cfg.Port)
	cfg.LogLevel = envString("GAPBOARD_LOG_LEVEL", cfg.LogLevel)
	cfg.Dataset.URL = envString("GAPBOARD_DATASET_URL", cfg.Dataset.URL)
	cfg.Dataset.File = envString("GAPBOARD_DATASET_FILE", cfg.Dataset.File)

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, errors.Errorf("invalid port %d", cfg.Port)
	}
	return cfg, nil
}

func envString(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}
