package sheets

import (
	"context"
	"sync"
	"time"

	"faersview/internal/table"
)

// DefaultTTL bounds how stale a memoized sheet may be.
const DefaultTTL = 10 * time.Minute

type cacheEntry struct {
	table     *table.Table
	fetchedAt time.Time
}

// CachedSource memoizes successful fetches per URL for a fixed TTL. Failures
// are never cached, so calling Fetch again is the retry.
type CachedSource struct {
	fetcher Fetcher
	ttl     time.Duration
	now     func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

func NewCachedSource(fetcher Fetcher, ttl time.Duration) *CachedSource {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedSource{
		fetcher: fetcher,
		ttl:     ttl,
		now:     time.Now,
		entries: map[string]cacheEntry{},
	}
}

func (s *CachedSource) Fetch(ctx context.Context, url string) (*table.Table, error) {
	if t, ok := s.lookup(url); ok {
		return t, nil
	}

	t, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.entries[url] = cacheEntry{table: t, fetchedAt: s.now()}
	s.mu.Unlock()
	return t, nil
}

func (s *CachedSource) lookup(url string) (*table.Table, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[url]
	if !ok {
		return nil, false
	}
	if s.now().Sub(e.fetchedAt) >= s.ttl {
		delete(s.entries, url)
		return nil, false
	}
	return e.table, true
}

// Invalidate drops every memoized sheet.
func (s *CachedSource) Invalidate() {
	s.mu.Lock()
	s.entries = map[string]cacheEntry{}
	s.mu.Unlock()
}
