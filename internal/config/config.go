// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Environment variables read by FromEnv.
const (
	EnvStoreDir   = "RESUME_STORE_DIR"
	EnvChromePath = "CHROME_PATH"
	EnvPort       = "PORT"
)

// Duration is a time.Duration that reads as a Go duration string ("10s")
// in JSON.
type Duration time.Duration

// UnmarshalJSON accepts "10s" style strings and plain nanosecond counts.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(v)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid duration %s", data)
	}
	*d = Duration(n)
	return nil
}

// MarshalJSON writes the duration as a string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// StoreDir holds the autosaved session record.
	StoreDir string `json:"store_dir,omitempty"`

	// AutosaveInterval is the period between autosaves.
	AutosaveInterval Duration `json:"autosave_interval,omitempty" validate:"gte=0"`

	// OutputDir is where CLI exports are written.
	OutputDir string `json:"output_dir,omitempty"`

	Port int `json:"port,omitempty" validate:"gte=0,lte=65535"`

	// PDFEngine is "paint" or "browser".
	PDFEngine string `json:"pdf_engine,omitempty" validate:"omitempty,oneof=paint browser"`

	// ChromePath overrides the Chrome binary used by the browser engine.
	ChromePath     string   `json:"chrome_path,omitempty"`
	BrowserTimeout Duration `json:"browser_timeout,omitempty" validate:"gte=0"`

	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		StoreDir:         filepath.Join(".", ".resume_builder"),
		AutosaveInterval: Duration(10 * time.Second),
		OutputDir:        ".",
		Port:             8080,
		PDFEngine:        "paint",
		BrowserTimeout:   Duration(60 * time.Second),
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config holding only the values set in the environment.
func FromEnv() (Config, error) {
	cfg := Config{
		StoreDir:   os.Getenv(EnvStoreDir),
		ChromePath: os.Getenv(EnvChromePath),
	}
	if raw := strings.TrimSpace(os.Getenv(EnvPort)); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("config error: %s must be a number: %w", EnvPort, err)
		}
		cfg.Port = port
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.StoreDir == "" {
		result.StoreDir = defaults.StoreDir
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.PDFEngine == "" {
		result.PDFEngine = defaults.PDFEngine
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}

	if result.AutosaveInterval == 0 {
		result.AutosaveInterval = defaults.AutosaveInterval
	}
	if result.BrowserTimeout == 0 {
		result.BrowserTimeout = defaults.BrowserTimeout
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Resolve layers the environment, the config file at path (optional) and
// the defaults, in that order of precedence, and validates the result.
func Resolve(path string) (Config, error) {
	var file Config
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		file = *loaded
	}

	cfg, err := FromEnv()
	if err != nil {
		return Config{}, err
	}
	cfg = cfg.MergeWithDefaults(file)
	cfg.Verbose = file.Verbose
	cfg = cfg.MergeWithDefaults(Defaults())

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
