package cache

import (
	"errors"
	"testing"
	"time"
)

func TestCache(t *testing.T) {
	t.Run("computes on miss and reuses within TTL", func(t *testing.T) {
		c := New[int, string](time.Hour)

		calls := 0
		compute := func() (string, error) {
			calls++
			return "dataset", nil
		}

		for i := 0; i < 3; i++ {
			got, err := c.Do(500, compute)
			if err != nil {
				t.Fatalf("Do failed: %v", err)
			}
			if got != "dataset" {
				t.Errorf("expected cached value, got %q", got)
			}
		}

		if calls != 1 {
			t.Errorf("expected 1 compute call, got %d", calls)
		}
	})

	t.Run("recomputes after expiry", func(t *testing.T) {
		c := New[int, int](time.Hour)

		current := time.Now()
		c.SetClock(func() time.Time { return current })

		calls := 0
		compute := func() (int, error) {
			calls++
			return calls, nil
		}

		if v, _ := c.Do(1, compute); v != 1 {
			t.Errorf("expected first computed value, got %d", v)
		}

		current = current.Add(59 * time.Minute)
		if v, _ := c.Do(1, compute); v != 1 {
			t.Errorf("expected cached value before expiry, got %d", v)
		}

		current = current.Add(2 * time.Minute)
		if v, _ := c.Do(1, compute); v != 2 {
			t.Errorf("expected recompute after expiry, got %d", v)
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		c := New[int, int](time.Hour)

		c.Do(100, func() (int, error) { return 100, nil })
		c.Do(500, func() (int, error) { return 500, nil })

		if c.Len() != 2 {
			t.Errorf("expected 2 entries, got %d", c.Len())
		}

		v, _ := c.Do(100, func() (int, error) { return -1, nil })
		if v != 100 {
			t.Errorf("expected entry for key 100, got %d", v)
		}
	})

	t.Run("errors are not cached", func(t *testing.T) {
		c := New[string, string](time.Hour)

		wantErr := errors.New("fetch failed")
		if _, err := c.Do("k", func() (string, error) { return "", wantErr }); !errors.Is(err, wantErr) {
			t.Fatalf("expected compute error, got %v", err)
		}

		if c.Len() != 0 {
			t.Error("failed compute should not be cached")
		}

		got, err := c.Do("k", func() (string, error) { return "ok", nil })
		if err != nil || got != "ok" {
			t.Errorf("expected successful recompute, got %q, %v", got, err)
		}
	})

	t.Run("Clear empties the cache", func(t *testing.T) {
		c := New[int, int](time.Hour)
		c.Do(1, func() (int, error) { return 1, nil })
		c.Clear()
		if c.Len() != 0 {
			t.Errorf("expected empty cache, got %d entries", c.Len())
		}
	})
}
