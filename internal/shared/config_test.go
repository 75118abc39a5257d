package shared

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Dataset.URL == "" {
			t.Error("expected default dataset URL to be set")
		}

		if config.Dataset.RowLimit != 500 {
			t.Errorf("expected row limit 500, got %d", config.Dataset.RowLimit)
		}

		if config.Dataset.CacheTTL() != time.Hour {
			t.Errorf("expected cache TTL 1h, got %s", config.Dataset.CacheTTL())
		}

		if config.Theme.AgeChart != "#957DAD" {
			t.Errorf("expected age chart color #957DAD, got %s", config.Theme.AgeChart)
		}

		if len(config.Theme.ScatterGradient) != 4 {
			t.Errorf("expected 4 gradient stops, got %d", len(config.Theme.ScatterGradient))
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Dataset.URL != defaultConfig.Dataset.URL {
			t.Errorf("created config dataset URL doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[dataset]
url = "https://example.com/employees.csv"
row_limit = 100
cache_ttl_minutes = 15

[theme]
age_chart = "#FFFFFF"
unit_chart = "#000000"
line = "#111111"
mean_line = "#222222"
scatter_gradient = ["#333333", "#444444"]

[logging]
file = "/tmp/attriview.log"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Dataset.URL != "https://example.com/employees.csv" {
			t.Errorf("expected custom URL, got %s", config.Dataset.URL)
		}

		if config.Dataset.RowLimit != 100 {
			t.Errorf("expected row limit 100, got %d", config.Dataset.RowLimit)
		}

		if config.Dataset.CacheTTL() != 15*time.Minute {
			t.Errorf("expected cache TTL 15m, got %s", config.Dataset.CacheTTL())
		}

		if config.Logging.File != "/tmp/attriview.log" {
			t.Errorf("expected custom log file, got %s", config.Logging.File)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig("/nonexistent/config.toml"); err == nil {
			t.Error("expected error for missing config file")
		}
	})
}
