package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"github.com/alorle/iptv-org-playlist/internal/iptvorg"
)

// Config holds the complete application configuration
type Config struct {
	// iptv-org dataset locations
	API struct {
		ChannelsURL string `yaml:"channels_url"`
		StreamsURL  string `yaml:"streams_url"`
		LogosURL    string `yaml:"logos_url"`
	} `yaml:"api"`

	// HTTP client settings
	HTTP struct {
		Timeout   time.Duration `yaml:"timeout"`
		UserAgent string        `yaml:"user_agent"`
	} `yaml:"http"`

	// Playlist output
	Output struct {
		Path string `yaml:"path"`
	} `yaml:"output"`

	// Logging settings
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	// Metrics settings. An empty textfile disables metrics output.
	Metrics struct {
		Textfile string `yaml:"textfile"`
	} `yaml:"metrics"`

	// Schedule settings. An empty cron expression runs once and exits.
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
}

var (
	validLogLevels  = map[string]bool{"DEBUG": true, "INFO": true, "WARN": true, "ERROR": true}
	validLogFormats = map[string]bool{"json": true, "text": true}
)

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	var errors []string

	// Validate API URLs
	apiURLs := []struct{ name, url string }{
		{"channels", c.API.ChannelsURL},
		{"streams", c.API.StreamsURL},
		{"logos", c.API.LogosURL},
	}
	for _, u := range apiURLs {
		if err := validateURL(u.url); err != nil {
			errors = append(errors, fmt.Sprintf("API %s URL: %v", u.name, err))
		}
	}

	// Validate HTTP settings
	if c.HTTP.Timeout <= 0 {
		errors = append(errors, "HTTP timeout must be positive")
	}
	if strings.TrimSpace(c.HTTP.UserAgent) == "" {
		errors = append(errors, "HTTP user agent is required")
	}

	// Validate output
	if strings.TrimSpace(c.Output.Path) == "" {
		errors = append(errors, "Output path is required")
	}

	// Validate logging
	if !validLogLevels[strings.ToUpper(c.Log.Level)] {
		errors = append(errors, fmt.Sprintf("Log level must be one of DEBUG, INFO, WARN, ERROR, got %q", c.Log.Level))
	}
	if !validLogFormats[strings.ToLower(c.Log.Format)] {
		errors = append(errors, fmt.Sprintf("Log format must be json or text, got %q", c.Log.Format))
	}

	// Validate schedule
	if c.Schedule.Cron != "" {
		if _, err := cron.ParseStandard(c.Schedule.Cron); err != nil {
			errors = append(errors, fmt.Sprintf("Schedule cron expression %q: %v", c.Schedule.Cron, err))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// validateURL checks that s is an absolute http(s) URL
func validateURL(s string) error {
	if s == "" {
		return fmt.Errorf("is required")
	}
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}

// Default returns a Config with sensible default values
func Default() *Config {
	cfg := &Config{}

	// API defaults
	cfg.API.ChannelsURL = iptvorg.DefaultChannelsURL
	cfg.API.StreamsURL = iptvorg.DefaultStreamsURL
	cfg.API.LogosURL = iptvorg.DefaultLogosURL

	// HTTP defaults
	cfg.HTTP.Timeout = iptvorg.DefaultFetchTimeout
	cfg.HTTP.UserAgent = iptvorg.DefaultUserAgent

	// Output defaults
	cfg.Output.Path = "playlist.m3u8"

	// Logging defaults
	cfg.Log.Level = "INFO"
	cfg.Log.Format = "json"

	return cfg
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Load loads configuration from a file (if it exists) and applies environment
// variable overrides. An empty path falls back to CONFIG_FILE, then config.yaml.
func Load(path string) (*Config, error) {
	return LoadWithOverrides(path, nil)
}

// LoadWithOverrides is Load with a final override step, such as command line
// flags, applied after the environment and before validation.
//
// A file named by path or CONFIG_FILE must exist; only the config.yaml
// fallback may be missing.
func LoadWithOverrides(path string, override func(*Config) error) (*Config, error) {
	configPath := path
	if configPath == "" {
		configPath = os.Getenv("CONFIG_FILE")
	}
	explicit := configPath != ""
	if configPath == "" {
		configPath = "config.yaml"
	}

	var cfg *Config

	// Try to load from file if it exists
	if _, err := os.Stat(configPath); err == nil {
		cfg, err = LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else if explicit {
		// An explicitly requested file must exist
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	} else {
		// File doesn't exist, use defaults
		cfg = Default()
	}

	// Apply environment variable overrides
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if override != nil {
		if err := override(cfg); err != nil {
			return nil, err
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration
func applyEnvOverrides(cfg *Config) error {
	// API settings
	if val := os.Getenv("IPTV_ORG_CHANNELS_URL"); val != "" {
		cfg.API.ChannelsURL = val
	}
	if val := os.Getenv("IPTV_ORG_STREAMS_URL"); val != "" {
		cfg.API.StreamsURL = val
	}
	if val := os.Getenv("IPTV_ORG_LOGOS_URL"); val != "" {
		cfg.API.LogosURL = val
	}

	// HTTP settings
	if val := os.Getenv("HTTP_TIMEOUT"); val != "" {
		duration, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid HTTP_TIMEOUT format (expected duration like '30s', '1m'): %w", err)
		}
		if duration <= 0 {
			return fmt.Errorf("HTTP_TIMEOUT must be positive, got: %s", val)
		}
		cfg.HTTP.Timeout = duration
	}
	if val := os.Getenv("HTTP_USER_AGENT"); val != "" {
		cfg.HTTP.UserAgent = val
	}

	// Output
	if val := os.Getenv("OUTPUT_FILE"); val != "" {
		cfg.Output.Path = val
	}

	// Logging
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		cfg.Log.Level = strings.ToUpper(val)
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		cfg.Log.Format = strings.ToLower(val)
	}

	// Metrics
	if val := os.Getenv("METRICS_TEXTFILE"); val != "" {
		cfg.Metrics.Textfile = val
	}

	// Schedule
	if val := os.Getenv("SYNC_CRON"); val != "" {
		cfg.Schedule.Cron = val
	}

	return nil
}

// LogAttrs returns the configuration as slog key/value pairs
func (c *Config) LogAttrs() []any {
	return []any{
		"channels_url", c.API.ChannelsURL,
		"streams_url", c.API.StreamsURL,
		"logos_url", c.API.LogosURL,
		"http_timeout", c.HTTP.Timeout.String(),
		"output", c.Output.Path,
		"log_level", c.Log.Level,
		"metrics_textfile", c.Metrics.Textfile,
		"schedule", c.Schedule.Cron,
	}
}
