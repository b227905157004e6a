package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables read as configuration, e.g.
// CINELOG_OMDB_API_KEY sets omdb.api_key.
const EnvPrefix = "CINELOG_"

type Config struct {
	Catalog CatalogConfig `koanf:"catalog"`
	OMDb    OMDbConfig    `koanf:"omdb"`
	Report  ReportConfig  `koanf:"report"`
	Log     LogConfig     `koanf:"log"`
}

type CatalogConfig struct {
	Path string `koanf:"path" validate:"required"`
	// Backend is one of json, yaml or csv. Empty means infer from Path.
	Backend string `koanf:"backend" validate:"omitempty,oneof=json yaml csv"`
}

type OMDbConfig struct {
	APIKey            string        `koanf:"api_key"`
	BaseURL           string        `koanf:"base_url" validate:"required,url"`
	Timeout           time.Duration `koanf:"timeout" validate:"gt=0"`
	RequestsPerSecond float64       `koanf:"requests_per_second" validate:"gte=0"`
}

type ReportConfig struct {
	Template string `koanf:"template" validate:"required"`
	Output   string `koanf:"output" validate:"required"`
	Title    string `koanf:"title"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=console json"`
}

func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path: DefaultCatalogPath(),
		},
		OMDb: OMDbConfig{
			BaseURL:           "https://www.omdbapi.com/",
			Timeout:           10 * time.Second,
			RequestsPerSecond: 5,
		},
		Report: ReportConfig{
			Template: "_static/index_template.html",
			Output:   "_static/index.html",
			Title:    "My Movie App",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load layers defaults, the YAML file at path and CINELOG_* environment
// variables, in that order. An empty path falls back to DefaultConfigPath and
// tolerates its absence; an explicit path must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	} else if explicit || !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(c)
}

// envKey maps CINELOG_OMDB_API_KEY to omdb.api_key. Section names never
// contain underscores, so only the first one separates section from key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, key, ok := strings.Cut(s, "_")
	if !ok {
		return s
	}
	return section + "." + key
}
