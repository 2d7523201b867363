package limiter

import (
	"context"
	"sync"
	"time"
)

// window tracks a fixed-window hit count for one key.
type window struct {
	mu      sync.Mutex
	count   int64
	resetAt time.Time
}

func (w *window) incr(d time.Duration) int64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	if now.After(w.resetAt) {
		w.count = 0
		w.resetAt = now.Add(d)
	}

	w.count++
	return w.count
}

// MemoryStore is an in-process Store. A background goroutine evicts expired
// windows every minute so long-running servers don't grow without bound.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window
}

func NewMemory() *MemoryStore {
	s := &MemoryStore{windows: make(map[string]*window)}

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			s.evict()
		}
	}()

	return s
}

func (s *MemoryStore) Incr(_ context.Context, key string, d time.Duration) (int64, error) {
	s.mu.Lock()
	w, ok := s.windows[key]
	if !ok {
		w = &window{resetAt: time.Now().Add(d)}
		s.windows[key] = w
	}
	s.mu.Unlock()

	return w.incr(d), nil
}

func (s *MemoryStore) evict() {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	for key, w := range s.windows {
		w.mu.Lock()
		expired := now.After(w.resetAt)
		w.mu.Unlock()
		if expired {
			delete(s.windows, key)
		}
	}
}
