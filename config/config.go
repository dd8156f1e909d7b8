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

	"github.com/clinicops/pmplan/core/metrics"
	"github.com/clinicops/pmplan/core/planner"
)

type Config struct {
	Planner planner.Config `json:"planner"`
	Metrics metrics.Config `json:"metrics"`
	API     APIConfig      `json:"api"`
}

// APIConfig defines the HTTP surface used by serve mode.
type APIConfig struct {
	Addr  string `json:"addr"`
	Token string `json:"token"`
}

// SetDefaults applies sane defaults.
func (c *APIConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
}

// Default returns a configuration with all defaults applied and no file
// loaded.
func Default() *Config {
	cfg := &Config{}
	cfg.Planner.SetDefaults()
	cfg.API.SetDefaults()
	if cfg.Metrics.PrometheusPort == "" {
		cfg.Metrics.PrometheusPort = ":9090"
	}
	return cfg
}

// Load reads the configuration file at path. An empty path yields the
// defaults. Environment variables prefixed with K_ override file values,
// with __ separating nested keys.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("K_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "k_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Planner.SetDefaults()
	cfg.API.SetDefaults()
	if cfg.Metrics.PrometheusPort == "" {
		cfg.Metrics.PrometheusPort = ":9090"
	}
	if err := cfg.Planner.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
