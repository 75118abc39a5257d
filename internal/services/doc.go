// Package services implements dataset loading for the dashboard.
//
// [DatasetService] fetches the remote employee CSV with a context-aware HTTP
// client and paces refetches with a token-bucket rate limiter. [CachedSource]
// layers time-bounded memoization on top, keyed by the requested row limit,
// so the TUI and the CLI commands share one fetch per cache window. Both
// satisfy [Source], which is what everything downstream depends on, keeping
// commands and the TUI testable against in-memory fakes.
package services
