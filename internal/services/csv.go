package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ospreyhr/attriview/internal/models"
	"github.com/ospreyhr/attriview/internal/shared"
)

// ParseCSV decodes employee rows from r. The header must contain every column
// in [models.RequiredColumns]; extra columns are ignored. limit <= 0 reads
// all rows. Empty numeric cells become NaN, anything else unparsable is a
// malformed-row error.
func ParseCSV(r io.Reader, limit int) ([]models.Employee, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read header: %v", shared.ErrFetchFailed, err)
	}

	idx := map[string]int{}
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, col := range models.RequiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %s", shared.ErrMissingColumn, col)
		}
	}

	rows := []models.Employee{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", shared.ErrMalformedRow, line, err)
		}

		row := models.Employee{
			ID:       field(record, idx[models.ColEmployeeID]),
			Hometown: field(record, idx[models.ColHometown]),
			Unit:     field(record, idx[models.ColUnit]),
		}

		if row.Age, err = numericField(record, idx[models.ColAge]); err != nil {
			return nil, fmt.Errorf("%w: line %d, column %s: %v", shared.ErrMalformedRow, line, models.ColAge, err)
		}
		if row.AttritionRate, err = numericField(record, idx[models.ColAttritionRate]); err != nil {
			return nil, fmt.Errorf("%w: line %d, column %s: %v", shared.ErrMalformedRow, line, models.ColAttritionRate, err)
		}
		if row.TimeOfService, err = numericField(record, idx[models.ColTimeOfService]); err != nil {
			return nil, fmt.Errorf("%w: line %d, column %s: %v", shared.ErrMalformedRow, line, models.ColTimeOfService, err)
		}

		rows = append(rows, row)
		if limit > 0 && len(rows) >= limit {
			break
		}
	}

	if len(rows) == 0 {
		return nil, shared.ErrEmptyDataset
	}

	return rows, nil
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func numericField(record []string, i int) (float64, error) {
	raw := field(record, i)
	if raw == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q", raw)
	}
	return v, nil
}
