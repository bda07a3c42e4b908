// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the config file when --config is absent.
const EnvironmentVariable = "LAWSUITS_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Config is the viewer configuration.
type Config struct {
	Environment Environment `yaml:"environment" json:"environment"`

	API       APIConfig       `yaml:"api" json:"api"`
	Search    SearchConfig    `yaml:"search" json:"search"`
	Theme     ThemeConfig     `yaml:"theme" json:"theme"`
	Telemetry TelemetryConfig `yaml:"telemetry" json:"telemetry"`
	Log       LogConfig       `yaml:"log" json:"log"`

	Development *Overrides `yaml:"development,omitempty" json:"development,omitempty"`
	Staging     *Overrides `yaml:"staging,omitempty" json:"staging,omitempty"`
	Production  *Overrides `yaml:"production,omitempty" json:"production,omitempty"`
}

// Overrides are the fields an environment section may replace.
type Overrides struct {
	API       *APIConfig       `yaml:"api,omitempty" json:"api,omitempty"`
	Telemetry *TelemetryConfig `yaml:"telemetry,omitempty" json:"telemetry,omitempty"`
	Log       *LogConfig       `yaml:"log,omitempty" json:"log,omitempty"`
}

// APIConfig locates the lawsuit API.
type APIConfig struct {
	// BaseURL is the API root, e.g. https://api.example.com/v1.
	BaseURL string `yaml:"base_url" json:"base_url"`

	// Timeout bounds each request, as a Go duration. Empty means no
	// timeout beyond the transport's own.
	Timeout string `yaml:"timeout" json:"timeout"`

	// UserAgent is sent with every request.
	UserAgent string `yaml:"user_agent" json:"user_agent"`
}

// SearchConfig tunes the search session.
type SearchConfig struct {
	// Debounce is how long input must be idle before a query is
	// sent. Default: 800ms.
	Debounce string `yaml:"debounce" json:"debounce"`

	// PageSize is the initial page size. Must be one of
	// PageSizeOptions. Default: 20.
	PageSize int `yaml:"page_size" json:"page_size"`

	// PageSizeOptions are the page sizes the user can cycle through.
	// Default: 10, 20, 30, 50, 100.
	PageSizeOptions []int `yaml:"page_size_options" json:"page_size_options"`

	// CatalogPageSize is the page size used to walk the API for the
	// court list. Default: 100, the API maximum.
	CatalogPageSize int `yaml:"catalog_page_size" json:"catalog_page_size"`
}

// ThemeConfig selects the color scheme.
type ThemeConfig struct {
	// Mode is "dark", "light" or "auto" (follow the terminal).
	// Default: auto.
	Mode string `yaml:"mode" json:"mode"`

	// StateFile persists the user's explicit dark/light choice.
	StateFile string `yaml:"state_file" json:"state_file"`
}

// TelemetryConfig enables OpenTelemetry tracing of API requests.
type TelemetryConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`

	// ServiceName is the service.name resource attribute.
	ServiceName string `yaml:"service_name" json:"service_name"`

	// Endpoint is the OTLP/gRPC collector address. Empty uses the
	// OTEL_EXPORTER_OTLP_ENDPOINT environment variable or the
	// exporter default.
	Endpoint string `yaml:"endpoint" json:"endpoint"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is debug, info, warn or error. Default: info.
	Level string `yaml:"level" json:"level"`
}

// Default returns the configuration used when no file is given and the
// base every file is merged into.
func Default() *Config {
	return &Config{
		Environment: Development,
		API: APIConfig{
			BaseURL: "${LAWSUITS_API_URL:-http://localhost:3000}",
		},
		Search: SearchConfig{
			Debounce:        "800ms",
			PageSize:        20,
			PageSizeOptions: []int{10, 20, 30, 50, 100},
			CatalogPageSize: 100,
		},
		Theme: ThemeConfig{
			Mode:      "auto",
			StateFile: "${XDG_STATE_HOME:-${HOME}/.local/state}/lawsuits/theme",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "lawsuits",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads the file named by LAWSUITS_CONFIG, or returns the
// defaults when the variable is unset.
func Load() (*Config, error) {
	path := os.Getenv(EnvironmentVariable)
	if path == "" {
		cfg := Default()
		cfg.applyEnvironmentOverrides()
		cfg.expandVariables()
		return cfg, nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from path over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("config: loading %s: %w", path, err)
	}
	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()
	return cfg, nil
}

// loadFile merges one file into the config, choosing the parser by
// extension.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		// yaml.v3 reads JSON, and decoding through it keeps one set
		// of merge semantics for both formats.
		return yaml.Unmarshal(jsonc.ToJSON(data), c)
	default:
		return yaml.Unmarshal(data, c)
	}
}

// applyEnvironmentOverrides applies the section matching Environment.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *Overrides
	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
	}
	if overrides == nil {
		return
	}

	if overrides.API != nil {
		if overrides.API.BaseURL != "" {
			c.API.BaseURL = overrides.API.BaseURL
		}
		if overrides.API.Timeout != "" {
			c.API.Timeout = overrides.API.Timeout
		}
		if overrides.API.UserAgent != "" {
			c.API.UserAgent = overrides.API.UserAgent
		}
	}

	if overrides.Telemetry != nil {
		// Enabled is a bool, so the section always decides it.
		c.Telemetry.Enabled = overrides.Telemetry.Enabled
		if overrides.Telemetry.ServiceName != "" {
			c.Telemetry.ServiceName = overrides.Telemetry.ServiceName
		}
		if overrides.Telemetry.Endpoint != "" {
			c.Telemetry.Endpoint = overrides.Telemetry.Endpoint
		}
	}

	if overrides.Log != nil && overrides.Log.Level != "" {
		c.Log.Level = overrides.Log.Level
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in the
// string fields that name locations.
func (c *Config) expandVariables() {
	c.API.BaseURL = expandVars(c.API.BaseURL)
	c.API.UserAgent = expandVars(c.API.UserAgent)
	c.Theme.StateFile = expandVars(c.Theme.StateFile)
	c.Telemetry.Endpoint = expandVars(c.Telemetry.Endpoint)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-((?:[^{}]|\$\{[^}]*\})*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default}. A default may itself
// contain one level of ${VAR}.
func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		return expandVars(parts[2])
	})
}

// DebounceDelay parses Search.Debounce.
func (c *Config) DebounceDelay() (time.Duration, error) {
	return parseDuration("search.debounce", c.Search.Debounce)
}

// RequestTimeout parses API.Timeout. Zero means no timeout.
func (c *Config) RequestTimeout() (time.Duration, error) {
	return parseDuration("api.timeout", c.API.Timeout)
}

func parseDuration(field, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if duration < 0 {
		return 0, fmt.Errorf("%s must not be negative", field)
	}
	return duration, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if c.API.BaseURL == "" {
		errs = append(errs, errors.New("api.base_url is required"))
	}
	if _, err := c.RequestTimeout(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.DebounceDelay(); err != nil {
		errs = append(errs, err)
	}

	if len(c.Search.PageSizeOptions) == 0 {
		errs = append(errs, errors.New("search.page_size_options must not be empty"))
	}
	for _, size := range c.Search.PageSizeOptions {
		if size <= 0 || size > 100 {
			errs = append(errs, fmt.Errorf("search.page_size_options: %d is outside 1..100", size))
		}
	}
	if !slices.Contains(c.Search.PageSizeOptions, c.Search.PageSize) {
		errs = append(errs, fmt.Errorf("search.page_size %d is not one of %v", c.Search.PageSize, c.Search.PageSizeOptions))
	}

	if c.Search.CatalogPageSize <= 0 || c.Search.CatalogPageSize > 100 {
		errs = append(errs, fmt.Errorf("search.catalog_page_size: %d is outside 1..100", c.Search.CatalogPageSize))
	}

	themeModes := []string{"auto", "dark", "light"}
	if !slices.Contains(themeModes, c.Theme.Mode) {
		errs = append(errs, fmt.Errorf("theme.mode must be one of: %v", themeModes))
	}

	logLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(logLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of: %v", logLevels))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
