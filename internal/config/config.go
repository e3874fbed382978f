package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Retry    RetryConfig    `yaml:"retry"`
	Paths    PathsConfig    `yaml:"paths"`
}

// DefaultsConfig holds default values
type DefaultsConfig struct {
	Variant   string `yaml:"variant"`   // fast, thorough
	Format    string `yaml:"format"`    // text, json
	Retention string `yaml:"retention"` // cache retention window, e.g. 30d
	APIKeyEnv string `yaml:"api_key_env"`
}

// RetryConfig controls the model-call retry policy
type RetryConfig struct {
	MaxRetries   int    `yaml:"max_retries"`
	InitialDelay string `yaml:"initial_delay"` // e.g. 2s
}

// PathsConfig holds custom path overrides
type PathsConfig struct {
	LibraryDB string `yaml:"library_db"`
	CacheFile string `yaml:"cache_file"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Variant:   "fast",
			Format:    "text",
			Retention: "30d",
			APIKeyEnv: "GEMINI_API_KEY",
		},
		Retry: RetryConfig{
			MaxRetries:   3,
			InitialDelay: "2s",
		},
	}
}

// AppDir returns the application directory (~/.fitscan)
func AppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fitscan"
	}
	return filepath.Join(home, ".fitscan")
}

// CacheDir returns the cache directory
func CacheDir() string {
	return filepath.Join(AppDir(), "cache")
}

// ConfigPath returns the config file path
func ConfigPath() string {
	return filepath.Join(AppDir(), "config.yaml")
}

// EnsureDirs creates all required directories
func EnsureDirs() error {
	dirs := []string{AppDir(), CacheDir()}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Load reads config from file, returns default if not exists
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadDefault loads config from default path
func LoadDefault() (*Config, error) {
	return Load(ConfigPath())
}

// Save writes config to file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveDefault saves config to default path
func (c *Config) SaveDefault() error {
	return c.Save(ConfigPath())
}

// APIKey resolves the model API key from the configured environment variable
func (c *Config) APIKey() string {
	env := c.Defaults.APIKeyEnv
	if env == "" {
		env = "GEMINI_API_KEY"
	}
	return os.Getenv(env)
}

// LibraryPath returns the exercise-library database path
func (c *Config) LibraryPath() string {
	if c.Paths.LibraryDB != "" {
		return c.Paths.LibraryDB
	}
	return filepath.Join(AppDir(), "library.db")
}

// CachePath returns the analysis-cache blob path
func (c *Config) CachePath() string {
	if c.Paths.CacheFile != "" {
		return c.Paths.CacheFile
	}
	return filepath.Join(CacheDir(), "analysis.json")
}

// GetRetention returns the cache retention window as a duration
func (c *Config) GetRetention() (time.Duration, error) {
	return ParseDuration(c.Defaults.Retention)
}

// GetInitialDelay returns the retry initial delay as a duration
func (c *Config) GetInitialDelay() (time.Duration, error) {
	return time.ParseDuration(c.Retry.InitialDelay)
}

var durationPattern = regexp.MustCompile(`^(\d+)(h|d)$`)

// ParseDuration parses duration strings like "24h", "7d", "30d"
func ParseDuration(s string) (time.Duration, error) {
	matches := durationPattern.FindStringSubmatch(s)
	if len(matches) != 3 {
		return 0, fmt.Errorf("invalid duration format: %s (use format like 24h, 30d)", s)
	}

	value, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch unit {
	case "h":
		return time.Duration(value) * time.Hour, nil
	case "d":
		return time.Duration(value) * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("unknown duration unit: %s", unit)
	}
}
