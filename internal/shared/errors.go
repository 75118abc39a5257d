package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Dataset errors
	ErrFetchFailed   = fmt.Errorf("dataset fetch failed")
	ErrMissingColumn = fmt.Errorf("required column missing")
	ErrMalformedRow  = fmt.Errorf("malformed row")
	ErrEmptyDataset  = fmt.Errorf("dataset is empty")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
