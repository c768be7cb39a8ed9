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

	"github.com/primovera12/load-planner/core/axle"
	"github.com/primovera12/load-planner/core/catalog"
	"github.com/primovera12/load-planner/core/fit"
	"github.com/primovera12/load-planner/core/model"
	"github.com/primovera12/load-planner/core/packing"
)

// Config is the full planning configuration. Every limit and lever constant
// the engine uses lives here as a named field so alternate jurisdictions are
// a matter of configuration, never code.
type Config struct {
	Limits    model.LegalLimits     `json:"limits"`
	Superload model.SuperloadLimits `json:"superload"`
	Permits   fit.PermitFeeSchedule `json:"permits"`
	Axles     axle.Config           `json:"axles"`
	Packing   packing.Options       `json:"packing"`
	Metrics   MetricsConfig         `json:"metrics"`
	// Trailers overlays the built-in catalog: matching IDs replace built-in
	// specs, new IDs extend the catalog.
	Trailers []model.TrailerSpec `json:"trailers"`
}

// MetricsConfig selects and configures the optional metrics sinks.
type MetricsConfig struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusPort    string `json:"prometheus_port"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// SetDefaults applies sane defaults.
func (c *MetricsConfig) SetDefaults() {
	if c.PrometheusPort == "" {
		c.PrometheusPort = ":9464"
	}
}

// Validate checks mandatory fields.
func (c MetricsConfig) Validate() error {
	if c.InfluxEnabled && c.InfluxURL == "" {
		return fmt.Errorf("influx_url is required when influx is enabled")
	}
	return nil
}

// Default returns a fully usable configuration: federal limits, tandem axle
// assumptions, rotation enabled, metrics off.
func Default() *Config {
	cfg := &Config{
		Limits:    model.DefaultLegalLimits(),
		Superload: model.DefaultSuperloadLimits(),
		Permits:   fit.DefaultPermitFees(),
		Axles:     axle.DefaultConfig(),
		Packing:   packing.DefaultOptions(),
	}
	cfg.Metrics.SetDefaults()
	return cfg
}

// Load reads a yaml or json configuration file, applies LP_-prefixed
// environment overrides, and merges the result onto the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
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
	// Optional environment overrides
	if err := k.Load(env.Provider("LP_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "lp_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Metrics.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Limits.Validate(); err != nil {
		return err
	}
	if err := c.Superload.Validate(); err != nil {
		return err
	}
	if err := c.Axles.Validate(); err != nil {
		return err
	}
	if err := c.Metrics.Validate(); err != nil {
		return err
	}
	for _, t := range c.Trailers {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Catalog returns the effective trailer catalog: the built-in specs with any
// configured overrides applied.
func (c *Config) Catalog() []model.TrailerSpec {
	return catalog.Merge(catalog.Standard(), c.Trailers)
}
