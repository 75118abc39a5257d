// package services defines interface Source for loading the employee dataset
package services

import (
	"context"

	"github.com/ospreyhr/attriview/internal/models"
)

// Source loads employee data for the dashboard and commands.
type Source interface {
	// Load fetches and parses the dataset. limit caps the number of data
	// rows; limit <= 0 loads everything.
	Load(ctx context.Context, limit int) (*models.Dataset, error)

	// Name returns the name of the source (e.g., "remote-csv")
	Name() string
}
