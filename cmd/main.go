package main

import (
	"context"
	"os"

	"github.com/ospreyhr/attriview/internal/services"
	"github.com/ospreyhr/attriview/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("ignoring unreadable config.toml", "error", err)
		}
	}

	source := services.NewCachedSource(
		services.NewDatasetService(config.Dataset.URL, nil),
		config.Dataset.CacheTTL(),
	)

	runner := NewRunner(RunnerOpts{
		Config: config,
		Source: source,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "attriview",
		Usage:    "Explore the employee attrition dataset from the terminal",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
