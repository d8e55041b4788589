// Package config loads service configuration, layering defaults, an
// optional YAML file and environment variables in that order.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// defaultConfigPaths are searched in order when no explicit path is given.
var defaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/kokomo-events/config.yaml",
}

const (
	// envPrefix namespaces the environment overrides, e.g.
	// KOKOMO_EVENTS_SERVER__LISTEN=:9000.
	envPrefix = "KOKOMO_EVENTS_"

	// configPathEnvVar overrides the config file location.
	configPathEnvVar = "KOKOMO_EVENTS_CONFIG"
)

// Server holds the delivery boundary settings.
type Server struct {
	Listen string `koanf:"listen"`
}

// Scrape holds the pipeline settings.
type Scrape struct {
	SourceTimeout time.Duration `koanf:"source_timeout"`
	FetchTimeout  time.Duration `koanf:"fetch_timeout"`
	MarkerWait    time.Duration `koanf:"marker_wait"`
	UserAgent     string        `koanf:"user_agent"`
	Disabled      []string      `koanf:"disabled"`
}

// Log holds the logging settings.
type Log struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Config is the full service configuration.
type Config struct {
	Server Server `koanf:"server"`
	Scrape Scrape `koanf:"scrape"`
	Log    Log    `koanf:"log"`
}

// defaults returns the configuration used when nothing is overridden.
func defaults() *Config {
	return &Config{
		Server: Server{
			Listen: ":3000",
		},
		Scrape: Scrape{
			SourceTimeout: 45 * time.Second,
			FetchTimeout:  30 * time.Second,
			MarkerWait:    10 * time.Second,
			UserAgent:     "", // empty selects the fetch package default
			Disabled:      nil,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (or
// the first default path that exists when path is empty), then environment
// variables with the KOKOMO_EVENTS_ prefix. A missing file is not an error;
// a malformed one is.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path == "" {
		path = os.Getenv(configPathEnvVar)
	}
	if path == "" {
		for _, candidate := range defaultConfigPaths {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("loading config file %s: %w", path, err)
			}
		}
	}

	// KOKOMO_EVENTS_SCRAPE__SOURCE_TIMEOUT=60s -> scrape.source_timeout
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Listen == "" {
		return fmt.Errorf("server.listen must not be empty")
	}
	if c.Scrape.SourceTimeout <= 0 {
		return fmt.Errorf("scrape.source_timeout must be positive")
	}
	if c.Scrape.FetchTimeout <= 0 {
		return fmt.Errorf("scrape.fetch_timeout must be positive")
	}
	if c.Scrape.MarkerWait <= 0 {
		return fmt.Errorf("scrape.marker_wait must be positive")
	}
	return nil
}
