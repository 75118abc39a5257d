// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand writes a starter configuration file.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Write a starter config.toml",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// fetchCommand downloads the dataset and prints a summary.
func fetchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "fetch",
		Usage: "Download the employee dataset and print a summary",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of rows to load (0 for all)",
				Value: 500,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Fetch,
	}
}

// statsCommand prints the chart aggregations as text or JSON.
func statsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Print dataset aggregations (age histogram, unit counts, attrition by hometown)",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of rows to load (0 for all)",
				Value: 500,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.StringFlag{
				Name:  "hometown",
				Usage: "Filter rows by hometown before aggregating",
			},
			&cli.StringFlag{
				Name:  "unit",
				Usage: "Filter rows by unit before aggregating",
			},
		},
		Action: r.Stats,
	}
}

// exportCommand writes the filtered dataset to a file.
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the filtered dataset to CSV, Markdown, or text",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path",
				Value:   "employees.csv",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Export format: csv, markdown, txt",
				Value: "csv",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of rows to load (0 for all)",
				Value: 0,
			},
			&cli.StringFlag{
				Name:  "id",
				Usage: "Filter by employee ID substring",
			},
			&cli.StringFlag{
				Name:  "hometown",
				Usage: "Filter by hometown",
			},
			&cli.StringFlag{
				Name:  "unit",
				Usage: "Filter by unit",
			},
		},
		Action: r.Export,
	}
}

// dashboardCommand returns the top-level TUI command for interactive exploration.
func dashboardCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "dashboard",
		Aliases: []string{"ui", "tui"},
		Usage:   "Launch the interactive dashboard",
		Action:  r.Dashboard,
	}
}
