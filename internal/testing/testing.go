// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/ospreyhr/attriview/internal/models"
)

// MockSource is a test double for [services.Source]
type MockSource struct {
	Dataset   *models.Dataset
	Err       error
	LoadCalls int
	LastLimit int
}

func (m *MockSource) Load(ctx context.Context, limit int) (*models.Dataset, error) {
	m.LoadCalls++
	m.LastLimit = limit
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Dataset != nil {
		return m.Dataset, nil
	}
	return SampleDataset(), nil
}

func (m *MockSource) Name() string { return "mock" }

// SampleDataset returns a small fixed dataset usable across test packages.
func SampleDataset() *models.Dataset {
	return &models.Dataset{
		Rows: []models.Employee{
			{ID: "EID_100", Hometown: "Lebanon", Unit: "IT", Age: 24, AttritionRate: 0.1841, TimeOfService: 4},
			{ID: "EID_200", Hometown: "Springfield", Unit: "HR", Age: 31, AttritionRate: 0.0673, TimeOfService: 7},
			{ID: "EID_300", Hometown: "Clinton", Unit: "IT", Age: 45, AttritionRate: 0.7613, TimeOfService: 12},
			{ID: "EID_400", Hometown: "Lebanon", Unit: "Sales", Age: math.NaN(), AttritionRate: 0.1184, TimeOfService: 2},
		},
		Source:    "mock://employees.csv",
		FetchedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}
