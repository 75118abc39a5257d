package main

import (
	"context"
	"fmt"

	"github.com/ospreyhr/attriview/internal/dataset"
	"github.com/ospreyhr/attriview/internal/formatter"
	"github.com/ospreyhr/attriview/internal/models"
	"github.com/ospreyhr/attriview/internal/shared"
	"github.com/ospreyhr/attriview/internal/stats"
	"github.com/urfave/cli/v3"
)

// Fetch downloads the dataset and prints a summary.
func (r *Runner) Fetch(ctx context.Context, cmd *cli.Command) error {
	limit := cmd.Int("limit")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	r.logger.Info("fetching dataset", "request_id", shared.GenerateID(), "limit", limit)

	ds, err := r.source.Load(ctx, limit)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrFetchFailed, err)
	}

	summary := struct {
		Source    string   `json:"source"`
		Rows      int      `json:"rows"`
		Columns   []string `json:"columns"`
		Hometowns int      `json:"hometowns"`
		Units     int      `json:"units"`
	}{
		Source:    ds.Source,
		Rows:      ds.Len(),
		Columns:   models.RequiredColumns,
		Hometowns: len(ds.Hometowns()),
		Units:     len(ds.Units()),
	}

	if useJSON {
		return r.writeJSON(summary, pretty)
	}

	r.writePlainHeader("Employee dataset")
	r.writePlain("Source: %s\n", summary.Source)
	r.writePlain("Rows: %d\n", summary.Rows)
	r.writePlain("Hometowns: %d\n", summary.Hometowns)
	r.writePlain("Units: %d\n", summary.Units)
	return nil
}

// Stats prints the chart aggregations for the (optionally filtered) dataset.
func (r *Runner) Stats(ctx context.Context, cmd *cli.Command) error {
	limit := cmd.Int("limit")
	useJSON := cmd.Bool("json")

	r.logger.Info("computing stats", "request_id", shared.GenerateID(), "limit", limit)

	ds, err := r.source.Load(ctx, limit)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrFetchFailed, err)
	}

	f := dataset.Filter{Hometown: cmd.String("hometown"), Unit: cmd.String("unit")}
	rows := f.Apply(ds.Rows)

	ageHist := stats.AgeHistogram(rows)
	unitCounts := stats.UnitCounts(rows)
	hometownMeans := stats.MeanAttritionByHometown(rows)

	if useJSON {
		return r.writeJSON(struct {
			Rows          int            `json:"rows"`
			AgeHistogram  []stats.Bucket `json:"age_histogram"`
			UnitCounts    []stats.Bucket `json:"unit_counts"`
			HometownMeans []stats.Bucket `json:"mean_attrition_by_hometown"`
		}{len(rows), ageHist, unitCounts, hometownMeans}, true)
	}

	r.writePlainHeader("Histogram by age")
	for _, b := range ageHist {
		r.writePlain("%-8s %s\n", b.Label, shared.FormatFloat(b.Value))
	}

	r.writePlainHeader("Unit Frequency")
	for _, b := range unitCounts {
		r.writePlain("%-24s %s\n", b.Label, shared.FormatFloat(b.Value))
	}

	r.writePlainHeader("Mean attrition rate by hometown")
	for _, b := range hometownMeans {
		r.writePlain("%-16s %.4f\n", b.Label, b.Value)
	}

	return nil
}

// Export writes the filtered dataset to a file in the requested format.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	output := cmd.String("output")
	format := cmd.String("format")
	limit := cmd.Int("limit")

	if output == "" {
		return fmt.Errorf("%w: --output is required", shared.ErrMissingArgument)
	}

	ds, err := r.source.Load(ctx, limit)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrFetchFailed, err)
	}

	f := dataset.Filter{
		IDQuery:  cmd.String("id"),
		Hometown: cmd.String("hometown"),
		Unit:     cmd.String("unit"),
	}
	rows := f.Apply(ds.Rows)

	r.logger.Info("exporting dataset", "request_id", shared.GenerateID(), "rows", len(rows), "format", format, "output", output)

	if err := formatter.WriteExport(rows, output, format); err != nil {
		return err
	}

	r.writePlainln("✓ Exported %d rows to %s", len(rows), output)
	return nil
}

// Setup writes a starter configuration file.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.writePlainln("✓ Config written to %s", path)
	return nil
}
