package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultPollInterval = 100 * time.Millisecond
	DefaultPageStep     = 10

	// MinPollInterval is the shortest accepted tick; smaller values use the default
	MinPollInterval = 10 * time.Millisecond
)

// Config represents the application configuration
type Config struct {
	PollInterval time.Duration `mapstructure:"poll_interval"` // how often the terminal size is re-checked
	PageStep     int           `mapstructure:"page_step"`     // lines moved by PgUp/PgDn
	LogFile      string        `mapstructure:"log_file"`      // empty disables logging
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service reading the user's folio config
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "folio", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service reading a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file the service reads
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults when the file does not exist
func (cs *configService) Load() (*Config, error) {
	return load(cs.filePath, true)
}

// LoadFromPath loads configuration from a specific path, which must exist
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	return load(path, false)
}

func load(path string, optional bool) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)

	defaults := DefaultConfig()
	v.SetDefault("poll_interval", defaults.PollInterval)
	v.SetDefault("page_step", defaults.PageStep)
	v.SetDefault("log_file", defaults.LogFile)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
		if !missing || !optional {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// A bare number is read as milliseconds, not nanoseconds
	switch n := v.Get("poll_interval").(type) {
	case int:
		v.Set("poll_interval", time.Duration(n)*time.Millisecond)
	case int64:
		v.Set("poll_interval", time.Duration(n)*time.Millisecond)
	case float64:
		v.Set("poll_interval", time.Duration(n*float64(time.Millisecond)))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.normalize()
	return &cfg, nil
}

// normalize replaces out of range values with defaults
func (c *Config) normalize() {
	if c.PollInterval < MinPollInterval {
		c.PollInterval = DefaultPollInterval
	}
	if c.PageStep <= 0 {
		c.PageStep = DefaultPageStep
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		PollInterval: DefaultPollInterval,
		PageStep:     DefaultPageStep,
	}
}
