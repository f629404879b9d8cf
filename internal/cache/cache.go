package cache

import (
	"sync"
	"time"

	"dartview/internal/pkg/table"
	"dartview/internal/report"
)

// DefaultTTL matches the validity window of the original query cache.
const DefaultTTL = 600 * time.Second

type entry struct {
	table   *table.Table
	expires time.Time
}

// Store memoizes report tables per query for a bounded window. Errors
// are never cached. Two concurrent callers computing the same key is
// tolerated; last write wins.
type Store struct {
	ttl time.Duration

	mu      sync.Mutex
	entries map[report.Query]entry
}

func New(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: map[report.Query]entry{},
	}
}

// Do returns the cached table for the key if it is still valid,
// otherwise invokes produce and stores its result.
func (s *Store) Do(key report.Query, produce func() (*table.Table, error)) (*table.Table, error) {
	s.mu.Lock()
	if e, ok := s.entries[key]; ok && time.Now().Before(e.expires) {
		s.mu.Unlock()
		return e.table, nil
	}
	s.mu.Unlock()

	t, err := produce()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.entries[key] = entry{table: t, expires: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return t, nil
}
