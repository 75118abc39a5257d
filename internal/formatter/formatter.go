// package formatter provides functions to export employee data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ospreyhr/attriview/internal/models"
	"github.com/ospreyhr/attriview/internal/shared"
	"github.com/ospreyhr/attriview/internal/stats"
)

// ExportToCSV converts employee rows to CSV with the dataset's column layout
func ExportToCSV(rows []models.Employee) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(models.RequiredColumns); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.ID,
			row.Hometown,
			row.Unit,
			shared.FormatFloat(row.Age),
			shared.FormatFloat(row.AttritionRate),
			shared.FormatFloat(row.TimeOfService),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts employee rows to a Markdown summary with unit breakdown
func ExportToMarkdown(rows []models.Employee, title string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Employees**: %d\n\n", len(rows)))

	buf.WriteString("## Unit breakdown\n\n")
	buf.WriteString("| Unit | Count |\n|------|-------|\n")
	for _, b := range stats.UnitCounts(rows) {
		buf.WriteString(fmt.Sprintf("| %s | %s |\n", b.Label, shared.FormatFloat(b.Value)))
	}

	buf.WriteString("\n## Mean attrition rate by hometown\n\n")
	buf.WriteString("| Hometown | Mean rate |\n|----------|----------|\n")
	for _, b := range stats.MeanAttritionByHometown(rows) {
		buf.WriteString(fmt.Sprintf("| %s | %.4f |\n", b.Label, b.Value))
	}

	return buf.Bytes(), nil
}

// ExportToText converts employee rows to plain text, one line per employee
func ExportToText(rows []models.Employee) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Employees: %d\n\n", len(rows)))
	for i, row := range rows {
		buf.WriteString(fmt.Sprintf("%d. %s - %s (%s)\n", i+1, row.ID, row.Unit, row.Hometown))
	}

	return buf.Bytes(), nil
}

// WriteExport writes rows to path in the requested format: csv, markdown, or txt.
func WriteExport(rows []models.Employee, path, format string) error {
	var data []byte
	var err error

	switch format {
	case "csv":
		data, err = ExportToCSV(rows)
	case "markdown", "md":
		base := filepath.Base(path)
		data, err = ExportToMarkdown(rows, base)
	case "txt", "text":
		data, err = ExportToText(rows)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}

	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	return nil
}
