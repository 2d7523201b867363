// Package limiter provides fixed-window request counting for rate limiting.
// Two stores are available: an in-process store for single-node deployments
// and a Redis store so multiple replicas share one budget per client.
package limiter

import (
	"context"
	"time"
)

// Store counts hits per key within a fixed window. Incr returns the number
// of hits recorded for key in the current window, including this one.
type Store interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}
