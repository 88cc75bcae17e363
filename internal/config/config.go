package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/skinledger/skinledger/internal/model"
	"github.com/skinledger/skinledger/internal/report"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "skinledger.yaml"

// Config represents the top-level skinledger.yaml configuration.
type Config struct {
	API      APIConfig    `yaml:"api"`
	Report   ReportConfig `yaml:"report"`
	Server   ServerConfig `yaml:"server"`
	LogLevel string       `yaml:"log_level"`
}

// APIConfig controls how the transaction history is fetched.
type APIConfig struct {
	BaseURL           string        `yaml:"base_url"`
	PageLimit         int           `yaml:"page_limit"`
	Order             model.Order   `yaml:"order"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"` // 0 = unlimited
}

// ReportConfig holds defaults for the report commands.
type ReportConfig struct {
	Smoothing   string `yaml:"smoothing"`
	ExcludeFees bool   `yaml:"exclude_fees"`
	RangeDays   int    `yaml:"range_days"`
}

// ServerConfig controls the local JSON API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Load reads a skinledger.yaml file from disk. Fields missing from the file
// keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional is Load, but a missing file yields Default.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config for the public API with a one-year report range.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:           "https://api.skinport.com",
			PageLimit:         100,
			Order:             model.OrderDesc,
			Timeout:           30 * time.Second,
			RequestsPerSecond: 1,
		},
		Report: ReportConfig{
			Smoothing: "nothing",
			RangeDays: 365,
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
		LogLevel: "info",
	}
}

// Validate checks values the commands cannot fall back from.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if c.API.PageLimit <= 0 {
		return fmt.Errorf("api.page_limit must be positive, got %d", c.API.PageLimit)
	}
	if !c.API.Order.Valid() {
		return fmt.Errorf("api.order must be asc or desc, got %q", c.API.Order)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}
	if c.API.RequestsPerSecond < 0 {
		return fmt.Errorf("api.requests_per_second must not be negative, got %g", c.API.RequestsPerSecond)
	}
	if _, err := report.ParseSmoothing(c.Report.Smoothing); err != nil {
		return fmt.Errorf("report.smoothing: %w", err)
	}
	if c.Report.RangeDays <= 0 {
		return fmt.Errorf("report.range_days must be positive, got %d", c.Report.RangeDays)
	}
	return nil
}
