package strformat

import (
	"context"
	"sync"
	"time"
)

// CachedStorage wraps any TemplateStorage with an in-memory cache of the
// latest version per name. Only not-found results are cached negatively;
// other errors always reach the caller uncached.
type CachedStorage struct {
	storage TemplateStorage
	config  CacheConfig
	now     func() time.Time

	mu    sync.Mutex
	cache map[string]*cacheEntry
	// generations are bumped on invalidation; a backend read that started
	// under an older generation is returned but not cached
	generations map[string]uint64
	epoch       uint64
	closed      bool
}

// CacheConfig configures the caching behavior.
type CacheConfig struct {
	// TTL is how long cached entries remain valid.
	// Default: 5 minutes.
	TTL time.Duration

	// MaxEntries is the maximum number of cached names.
	// When exceeded, the least recently used entry is evicted.
	// Default: 1000.
	MaxEntries int

	// NegativeCacheTTL is how long to cache "not found" results.
	// Set to 0 to disable negative caching.
	// Default: 30 seconds.
	NegativeCacheTTL time.Duration
}

// DefaultCacheConfig returns the default caching configuration.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		TTL:              CacheDefaultTTL,
		MaxEntries:       CacheDefaultMaxEntries,
		NegativeCacheTTL: CacheDefaultNegativeCacheTTL,
	}
}

type cacheEntry struct {
	template   *StoredTemplate // nil for negative entries
	cachedAt   time.Time
	accessedAt time.Time
}

// CacheStats contains cache statistics.
type CacheStats struct {
	Entries         int
	ValidEntries    int
	NegativeEntries int
}

// NewCachedStorage wraps a storage with caching. Zero TTL and MaxEntries
// fall back to the defaults.
func NewCachedStorage(storage TemplateStorage, config CacheConfig) *CachedStorage {
	if config.TTL <= 0 {
		config.TTL = CacheDefaultTTL
	}
	if config.MaxEntries <= 0 {
		config.MaxEntries = CacheDefaultMaxEntries
	}
	return &CachedStorage{
		storage: storage,
		config:  config,
		now:     time.Now,
		cache:   make(map[string]*cacheEntry),

		generations: make(map[string]uint64),
	}
}

// Get retrieves the latest version of a template, using the cache when possible.
func (s *CachedStorage) Get(ctx context.Context, name string) (*StoredTemplate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, NewStorageClosedError()
	}
	if entry, ok := s.cache[name]; ok && s.isValid(entry) {
		entry.accessedAt = s.now()
		tmpl := entry.template
		s.mu.Unlock()

		if tmpl == nil {
			return nil, NewStorageTemplateNotFoundError(name)
		}
		return copyStoredTemplate(tmpl), nil
	}
	epoch, generation := s.epoch, s.generations[name]
	s.mu.Unlock()

	tmpl, err := s.storage.Get(ctx, name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}
	fresh := s.epoch == epoch && s.generations[name] == generation
	if err != nil {
		if fresh && IsTemplateNotFound(err) && s.config.NegativeCacheTTL > 0 {
			s.addEntry(name, nil)
		}
		return nil, err
	}

	if fresh {
		s.addEntry(name, tmpl)
	}
	return copyStoredTemplate(tmpl), nil
}

// GetVersion retrieves a specific version. Versions are immutable once
// written, but the request still goes to the backend so deletions are seen.
func (s *CachedStorage) GetVersion(ctx context.Context, name string, version int) (*StoredTemplate, error) {
	return s.storage.GetVersion(ctx, name, version)
}

// Save stores a template and invalidates its cache entry.
func (s *CachedStorage) Save(ctx context.Context, tmpl *StoredTemplate) error {
	if err := s.storage.Save(ctx, tmpl); err != nil {
		return err
	}
	s.Invalidate(tmpl.Name)
	return nil
}

// Delete removes a template and invalidates its cache entry.
func (s *CachedStorage) Delete(ctx context.Context, name string) error {
	if err := s.storage.Delete(ctx, name); err != nil {
		return err
	}
	s.Invalidate(name)
	return nil
}

// List returns templates matching the query (bypasses cache).
func (s *CachedStorage) List(ctx context.Context, query *TemplateQuery) ([]*StoredTemplate, error) {
	return s.storage.List(ctx, query)
}

// Exists checks if a template exists, answering from the cache when possible.
func (s *CachedStorage) Exists(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false, NewStorageClosedError()
	}
	if entry, ok := s.cache[name]; ok && s.isValid(entry) {
		s.mu.Unlock()
		return entry.template != nil, nil
	}
	s.mu.Unlock()

	return s.storage.Exists(ctx, name)
}

// ListVersions returns version numbers (bypasses cache).
func (s *CachedStorage) ListVersions(ctx context.Context, name string) ([]int, error) {
	return s.storage.ListVersions(ctx, name)
}

// Close drops the cache and closes the underlying storage.
func (s *CachedStorage) Close() error {
	s.mu.Lock()
	s.closed = true
	s.cache = nil
	s.mu.Unlock()

	return s.storage.Close()
}

// Invalidate removes a name from the cache.
func (s *CachedStorage) Invalidate(name string) {
	s.mu.Lock()
	delete(s.cache, name)
	s.generations[name]++
	s.mu.Unlock()
}

// InvalidateAll clears the entire cache.
func (s *CachedStorage) InvalidateAll() {
	s.mu.Lock()
	if !s.closed {
		s.cache = make(map[string]*cacheEntry)
	}
	s.generations = make(map[string]uint64)
	s.epoch++
	s.mu.Unlock()
}

// Stats returns cache statistics.
func (s *CachedStorage) Stats() CacheStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := CacheStats{Entries: len(s.cache)}
	for _, entry := range s.cache {
		if !s.isValid(entry) {
			continue
		}
		if entry.template == nil {
			stats.NegativeEntries++
		} else {
			stats.ValidEntries++
		}
	}
	return stats
}

// isValid checks if a cache entry is still fresh. Caller holds the lock.
func (s *CachedStorage) isValid(entry *cacheEntry) bool {
	ttl := s.config.TTL
	if entry.template == nil {
		ttl = s.config.NegativeCacheTTL
	}
	return s.now().Sub(entry.cachedAt) < ttl
}

// addEntry caches tmpl under name, evicting the least recently used entry
// when full. Caller holds the lock.
func (s *CachedStorage) addEntry(name string, tmpl *StoredTemplate) {
	if _, exists := s.cache[name]; !exists && len(s.cache) >= s.config.MaxEntries {
		s.evictOldest()
	}
	now := s.now()
	s.cache[name] = &cacheEntry{
		template:   copyStoredTemplate(tmpl),
		cachedAt:   now,
		accessedAt: now,
	}
}

// evictOldest removes the least recently accessed entry. Caller holds the lock.
func (s *CachedStorage) evictOldest() {
	var oldestName string
	var oldest *cacheEntry
	for name, entry := range s.cache {
		if oldest == nil || entry.accessedAt.Before(oldest.accessedAt) {
			oldestName, oldest = name, entry
		}
	}
	if oldest != nil {
		delete(s.cache, oldestName)
	}
}
