// Remote CSV source for the employee dataset
package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ospreyhr/attriview/internal/cache"
	"github.com/ospreyhr/attriview/internal/models"
	"github.com/ospreyhr/attriview/internal/shared"
	"golang.org/x/time/rate"
)

// DatasetService fetches the employee CSV over HTTP. Refetches are paced by a
// rate limiter so a misbehaving caller cannot hammer the remote host.
type DatasetService struct {
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ Source = (*DatasetService)(nil)

// NewDatasetService creates a dataset source for the given URL.
func NewDatasetService(url string, client *http.Client) *DatasetService {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	return &DatasetService{
		url:        url,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(1), 2),
	}
}

// Name implements [Source].
func (s *DatasetService) Name() string { return "remote-csv" }

// Load implements [Source]: one GET per call, parsed with [ParseCSV].
func (s *DatasetService) Load(ctx context.Context, limit int) (*models.Dataset, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrFetchFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", shared.ErrFetchFailed, resp.StatusCode)
	}

	rows, err := ParseCSV(resp.Body, limit)
	if err != nil {
		return nil, err
	}

	return &models.Dataset{
		Rows:      rows,
		Source:    s.url,
		FetchedAt: time.Now(),
	}, nil
}

// CachedSource memoizes another [Source] with a time-to-live, keyed by the
// row limit. This is the dashboard's only shared state.
type CachedSource struct {
	src   Source
	cache *cache.Cache[int, *models.Dataset]
}

var _ Source = (*CachedSource)(nil)

// NewCachedSource wraps src with a TTL cache.
func NewCachedSource(src Source, ttl time.Duration) *CachedSource {
	return &CachedSource{
		src:   src,
		cache: cache.New[int, *models.Dataset](ttl),
	}
}

// Name implements [Source].
func (c *CachedSource) Name() string { return c.src.Name() }

// Load implements [Source], serving from cache within the TTL window.
func (c *CachedSource) Load(ctx context.Context, limit int) (*models.Dataset, error) {
	return c.cache.Do(limit, func() (*models.Dataset, error) {
		return c.src.Load(ctx, limit)
	})
}

// Invalidate drops every cached dataset so the next Load refetches.
func (c *CachedSource) Invalidate() {
	c.cache.Clear()
}
