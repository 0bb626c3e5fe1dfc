package cache

import (
	"context"
	"sync"
	"time"
)

// DefaultMaxEntries bounds a Memory cache created without WithMaxEntries.
const DefaultMaxEntries = 4096

type memoryItem struct {
	value     string
	expiresAt time.Time
	seq       uint64
}

// Memory is an in-process cache with an optional TTL and a fixed capacity.
// Expired entries are swept on writes at most once per TTL; when the cache
// is full the oldest write is evicted.
type Memory struct {
	mu        sync.RWMutex
	items     map[string]memoryItem
	ttl       time.Duration
	max       int
	seq       uint64
	nextSweep time.Time
	now       func() time.Time
}

// MemoryOption configures a Memory cache.
type MemoryOption func(*Memory)

// WithMaxEntries caps the number of stored entries. Values below one keep
// DefaultMaxEntries.
func WithMaxEntries(n int) MemoryOption {
	return func(m *Memory) {
		if n > 0 {
			m.max = n
		}
	}
}

// NewMemory creates a cache whose entries expire after ttl. A ttl of zero
// keeps entries until they are evicted for space.
func NewMemory(ttl time.Duration, opts ...MemoryOption) *Memory {
	m := &Memory{
		items: make(map[string]memoryItem),
		ttl:   ttl,
		max:   DefaultMaxEntries,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get implements Cache.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	item, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return "", false, nil
	}
	if !item.expiresAt.IsZero() && m.now().After(item.expiresAt) {
		m.mu.Lock()
		if cur, ok := m.items[key]; ok && cur.seq == item.seq {
			delete(m.items, key)
		}
		m.mu.Unlock()
		return "", false, nil
	}
	return item.value, true, nil
}

// Set implements Cache.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if m.ttl > 0 && !now.Before(m.nextSweep) {
		m.sweep(now)
		m.nextSweep = now.Add(m.ttl)
	}
	if _, exists := m.items[key]; !exists && len(m.items) >= m.max {
		m.sweep(now)
		if len(m.items) >= m.max {
			m.evictOldest()
		}
	}

	m.seq++
	item := memoryItem{value: value, seq: m.seq}
	if m.ttl > 0 {
		item.expiresAt = now.Add(m.ttl)
	}
	m.items[key] = item
	return nil
}

// sweep drops expired entries. Callers hold mu.
func (m *Memory) sweep(now time.Time) {
	if m.ttl <= 0 {
		return
	}
	for k, item := range m.items {
		if now.After(item.expiresAt) {
			delete(m.items, k)
		}
	}
}

// evictOldest drops the least recently written entry. Callers hold mu.
func (m *Memory) evictOldest() {
	var (
		oldest string
		lowest uint64
		found  bool
	)
	for k, item := range m.items {
		if !found || item.seq < lowest {
			oldest, lowest, found = k, item.seq, true
		}
	}
	if found {
		delete(m.items, oldest)
	}
}

// Len returns the number of stored entries, expired ones not yet swept
// included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
