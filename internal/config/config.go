// Package config handles wikipath configuration.
//
// Values are layered: built-in defaults, then the YAML file, then
// environment variables (optionally seeded from a .env file). Command-line
// flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFile is the config file looked up when none is given.
	DefaultFile = "wikipath.yaml"

	DefaultPages     = "pages.txt"
	DefaultLinks     = "links.txt"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// Environment variables that override file values.
const (
	EnvPages     = "WIKIPATH_PAGES"
	EnvLinks     = "WIKIPATH_LINKS"
	EnvDB        = "WIKIPATH_DB"
	EnvLogLevel  = "WIKIPATH_LOG_LEVEL"
	EnvLogFormat = "WIKIPATH_LOG_FORMAT"
	EnvMaxDepth  = "WIKIPATH_MAX_DEPTH"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config aggregates wikipath settings.
type Config struct {
	Pages  string       `yaml:"pages"`
	Links  string       `yaml:"links"`
	DB     string       `yaml:"db"`
	Log    LogConfig    `yaml:"log"`
	Search SearchConfig `yaml:"search"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // console|json
}

// SearchConfig tunes shortest-path queries.
type SearchConfig struct {
	MaxDepth int `yaml:"max_depth"` // 0 = unlimited
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Pages: DefaultPages,
		Links: DefaultLinks,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// LoadEnv seeds the process environment from .env-style files. Missing
// files are ignored; variables already set are left untouched.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	setIfPresent(EnvPages, &c.Pages)
	setIfPresent(EnvLinks, &c.Links)
	setIfPresent(EnvDB, &c.DB)
	setIfPresent(EnvLogLevel, &c.Log.Level)
	setIfPresent(EnvLogFormat, &c.Log.Format)

	if v := os.Getenv(EnvMaxDepth); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvMaxDepth, v, err)
		}
		c.Search.MaxDepth = d
	}
	return nil
}

// Validate checks enumerated and numeric fields.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if c.Search.MaxDepth < 0 {
		return fmt.Errorf("%w: search.max_depth %d", ErrInvalid, c.Search.MaxDepth)
	}
	return nil
}

func setIfPresent(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
