package shared

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Dataset DatasetConfig `toml:"dataset"`
	Theme   ThemeConfig   `toml:"theme"`
	Logging LoggingConfig `toml:"logging"`
}

// DatasetConfig describes the remote CSV source and the cache window.
type DatasetConfig struct {
	URL             string `toml:"url"`
	RowLimit        int    `toml:"row_limit"`
	CacheTTLMinutes int    `toml:"cache_ttl_minutes"`
}

// ThemeConfig holds the chart color tokens.
type ThemeConfig struct {
	AgeChart        string   `toml:"age_chart"`
	UnitChart       string   `toml:"unit_chart"`
	Line            string   `toml:"line"`
	MeanLine        string   `toml:"mean_line"`
	ScatterGradient []string `toml:"scatter_gradient"`
}

// LoggingConfig contains TUI log file settings.
type LoggingConfig struct {
	File string `toml:"file"`
}

// CacheTTL returns the configured cache window as a [time.Duration].
func (d DatasetConfig) CacheTTL() time.Duration {
	return time.Duration(d.CacheTTLMinutes) * time.Minute
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, ErrInvalidArgument)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
