// Package config loads cardscan settings from defaults, an optional YAML
// file, an optional .env file and CARDKIT_* environment variables, in that
// order of precedence (later wins).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/wudi/cardkit/ocr"
	"github.com/wudi/cardkit/scan"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CARDKIT_"

// Config holds the full cardscan configuration.
type Config struct {
	Languages   []string      `yaml:"languages"`
	DPI         int           `yaml:"dpi"`
	PageSegMode int           `yaml:"psm"`
	MinWidth    int           `yaml:"min_width"`
	Timeout     time.Duration `yaml:"timeout"`
	Concurrency int           `yaml:"concurrency"`
	LogLevel    string        `yaml:"log_level"`
	LogFormat   string        `yaml:"log_format"` // text | json
}

// DefaultConfig returns sane defaults.
func DefaultConfig() *Config {
	return &Config{
		Languages:   []string{"eng"},
		DPI:         300,
		PageSegMode: 0,
		MinWidth:    1000,
		Timeout:     30 * time.Second,
		Concurrency: 2,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment. envFile names a dotenv file whose
// values are added to the process environment without overriding variables
// that are already set; a missing envFile is ignored.
func Load(path, envFile string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from CARDKIT_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "LANGUAGES"); ok {
		c.Languages = splitList(v)
	}
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"DPI", &c.DPI},
		{"PSM", &c.PageSegMode},
		{"MIN_WIDTH", &c.MinWidth},
		{"CONCURRENCY", &c.Concurrency},
	} {
		v, ok := lookup(EnvPrefix + f.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, f.name, err)
		}
		*f.dst = n
	}
	if v, ok := lookup(EnvPrefix + "TIMEOUT"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%sTIMEOUT: %w", EnvPrefix, err)
		}
		c.Timeout = d
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvPrefix + "LOG_FORMAT"); ok {
		c.LogFormat = strings.TrimSpace(v)
	}
	return nil
}

// Validate checks that values are sane.
func (c *Config) Validate() error {
	if len(c.Languages) == 0 {
		return fmt.Errorf("languages: at least one language is required")
	}
	if c.DPI < 0 {
		return fmt.Errorf("dpi must be >= 0")
	}
	if c.PageSegMode < 0 || c.PageSegMode > 13 {
		return fmt.Errorf("psm must be between 0 and 13, got %d", c.PageSegMode)
	}
	if c.MinWidth < 0 {
		return fmt.Errorf("min_width must be >= 0")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0")
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be > 0")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log_format %q (use text or json)", c.LogFormat)
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// InputOptions translates the OCR settings into input options.
func (c *Config) InputOptions() []ocr.InputOption {
	opts := []ocr.InputOption{
		ocr.WithLanguages(c.Languages...),
		ocr.WithDPI(c.DPI),
		ocr.WithMinWidth(c.MinWidth),
	}
	if c.PageSegMode > 0 {
		opts = append(opts, ocr.WithTesseractPSM(c.PageSegMode))
	}
	return opts
}

// ScanOptions translates the configuration into scanner options.
func (c *Config) ScanOptions() []scan.Option {
	return []scan.Option{
		scan.WithTimeout(c.Timeout),
		scan.WithConcurrency(c.Concurrency),
		scan.WithInputOptions(c.InputOptions()...),
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
