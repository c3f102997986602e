// Package config loads the apiaccess YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "apiaccess.yaml"

type Config struct {
	Import ImportConfig `yaml:"import"`
	Export ExportConfig `yaml:"export"`
	Xray   XrayConfig   `yaml:"xray"`
	HTTP   HTTPConfig   `yaml:"http"`
	GeoIP  GeoIPConfig  `yaml:"geoip"`
}

type ImportConfig struct {
	// Enabled is the flag given to freshly imported methods.
	Enabled bool           `yaml:"enabled"`
	Sources []SourceConfig `yaml:"sources"`
}

type ExportConfig struct {
	Exporters []ExporterConfig `yaml:"exporters"`
}

type XrayConfig struct {
	TagPrefix string `yaml:"tag_prefix"`
}

type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// GeoIPConfig points at MaxMind databases. Both are optional; without
// them peer lookups report "-".
type GeoIPConfig struct {
	ASNPath     string `yaml:"asn_path"`
	CountryPath string `yaml:"country_path"`
}

type SourceConfig struct {
	Name   string                 `yaml:"name"`
	Type   string                 `yaml:"type"`
	Params map[string]interface{} `yaml:"params"`
}

type ExporterConfig struct {
	Name   string                 `yaml:"name"`
	Type   string                 `yaml:"type"`
	Params map[string]interface{} `yaml:"params"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Import: ImportConfig{Enabled: true},
		Xray:   XrayConfig{TagPrefix: "api-"},
		HTTP:   HTTPConfig{Timeout: 30 * time.Second},
	}
}

// Load reads path over the defaults. An empty path means DefaultPath,
// which may be absent; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config yaml: %w", err)
	}

	if cfg.HTTP.Timeout <= 0 {
		cfg.HTTP.Timeout = 30 * time.Second
	}
	for i := range cfg.Import.Sources {
		if cfg.Import.Sources[i].Params == nil {
			cfg.Import.Sources[i].Params = make(map[string]interface{})
		}
	}
	for i := range cfg.Export.Exporters {
		if cfg.Export.Exporters[i].Params == nil {
			cfg.Export.Exporters[i].Params = make(map[string]interface{})
		}
	}

	return cfg, nil
}

func (c *Config) FilterSources(names []string) {
	if len(names) == 0 {
		return
	}
	whitelist := toSet(names)
	var filtered []SourceConfig
	for _, item := range c.Import.Sources {
		if whitelist[item.Name] {
			filtered = append(filtered, item)
		}
	}
	c.Import.Sources = filtered
}

func (c *Config) FilterExporters(names []string) {
	if len(names) == 0 {
		return
	}
	whitelist := toSet(names)
	var filtered []ExporterConfig
	for _, item := range c.Export.Exporters {
		if whitelist[item.Name] {
			filtered = append(filtered, item)
		}
	}
	c.Export.Exporters = filtered
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
