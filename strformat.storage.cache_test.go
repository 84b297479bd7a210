package strformat

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStorage counts Get calls and can inject failures.
type countingStorage struct {
	TemplateStorage
	mu     sync.Mutex
	gets   int
	getErr error
}

func (c *countingStorage) Get(ctx context.Context, name string) (*StoredTemplate, error) {
	c.mu.Lock()
	c.gets++
	err := c.getErr
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return c.TemplateStorage.Get(ctx, name)
}

func (c *countingStorage) getCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gets
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func newTestCache(t *testing.T, config CacheConfig) (*CachedStorage, *countingStorage, *fakeClock) {
	t.Helper()
	backend := &countingStorage{TemplateStorage: NewMemoryStorage()}
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	cache := NewCachedStorage(backend, config)
	cache.now = clock.Now
	return cache, backend, clock
}

func TestCachedStorage_Contract(t *testing.T) {
	testStorageContract(t, func(t *testing.T) TemplateStorage {
		return NewCachedStorage(NewMemoryStorage(), DefaultCacheConfig())
	})
}

func TestCachedStorage_Defaults(t *testing.T) {
	cache := NewCachedStorage(NewMemoryStorage(), CacheConfig{})
	assert.Equal(t, CacheDefaultTTL, cache.config.TTL)
	assert.Equal(t, CacheDefaultMaxEntries, cache.config.MaxEntries)
	assert.Equal(t, time.Duration(0), cache.config.NegativeCacheTTL)
}

func TestCachedStorage_HitAndExpiry(t *testing.T) {
	cache, backend, clock := newTestCache(t, CacheConfig{TTL: time.Minute})
	ctx := context.Background()
	require.NoError(t, cache.Save(ctx, &StoredTemplate{Name: "cached", Source: "{0}"}))

	for i := 0; i < 3; i++ {
		got, err := cache.Get(ctx, "cached")
		require.NoError(t, err)
		assert.Equal(t, "{0}", got.Source)
	}
	assert.Equal(t, 1, backend.getCount())

	clock.now = clock.now.Add(2 * time.Minute)
	_, err := cache.Get(ctx, "cached")
	require.NoError(t, err)
	assert.Equal(t, 2, backend.getCount())
}

func TestCachedStorage_SaveInvalidates(t *testing.T) {
	cache, _, _ := newTestCache(t, DefaultCacheConfig())
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, &StoredTemplate{Name: "evolving", Source: "v1"}))
	got, err := cache.Get(ctx, "evolving")
	require.NoError(t, err)
	assert.Equal(t, "v1", got.Source)

	require.NoError(t, cache.Save(ctx, &StoredTemplate{Name: "evolving", Source: "v2"}))
	got, err = cache.Get(ctx, "evolving")
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Source)

	require.NoError(t, cache.Delete(ctx, "evolving"))
	_, err = cache.Get(ctx, "evolving")
	assert.True(t, IsTemplateNotFound(err))
}

func TestCachedStorage_NegativeCaching(t *testing.T) {
	cache, backend, clock := newTestCache(t, CacheConfig{TTL: time.Minute, NegativeCacheTTL: 10 * time.Second})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := cache.Get(ctx, "absent")
		assert.True(t, IsTemplateNotFound(err))
	}
	assert.Equal(t, 1, backend.getCount())

	exists, err := cache.Exists(ctx, "absent")
	require.NoError(t, err)
	assert.False(t, exists)

	stats := cache.Stats()
	assert.Equal(t, 1, stats.NegativeEntries)

	clock.now = clock.now.Add(11 * time.Second)
	_, _ = cache.Get(ctx, "absent")
	assert.Equal(t, 2, backend.getCount())
}

func TestCachedStorage_ErrorsAreNotCached(t *testing.T) {
	cache, backend, _ := newTestCache(t, CacheConfig{NegativeCacheTTL: time.Minute})
	ctx := context.Background()

	backend.getErr = errors.New("connection reset")
	_, err := cache.Get(ctx, "flaky")
	require.Error(t, err)
	assert.False(t, IsTemplateNotFound(err))

	backend.mu.Lock()
	backend.getErr = nil
	backend.mu.Unlock()
	require.NoError(t, backend.TemplateStorage.Save(ctx, &StoredTemplate{Name: "flaky", Source: "ok"}))

	got, err := cache.Get(ctx, "flaky")
	require.NoError(t, err)
	assert.Equal(t, "ok", got.Source)
}

func TestCachedStorage_Eviction(t *testing.T) {
	cache, _, clock := newTestCache(t, CacheConfig{TTL: time.Hour, MaxEntries: 2})
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, cache.Save(ctx, &StoredTemplate{Name: name, Source: name}))
	}

	_, _ = cache.Get(ctx, "a")
	clock.now = clock.now.Add(time.Second)
	_, _ = cache.Get(ctx, "b")
	clock.now = clock.now.Add(time.Second)
	_, _ = cache.Get(ctx, "a") // a is now most recently used
	clock.now = clock.now.Add(time.Second)
	_, _ = cache.Get(ctx, "c")

	cache.mu.Lock()
	_, hasA := cache.cache["a"]
	_, hasB := cache.cache["b"]
	_, hasC := cache.cache["c"]
	cache.mu.Unlock()

	assert.True(t, hasA)
	assert.False(t, hasB)
	assert.True(t, hasC)
	assert.Equal(t, 2, cache.Stats().Entries)
}

func TestCachedStorage_InvalidateAll(t *testing.T) {
	cache, backend, _ := newTestCache(t, DefaultCacheConfig())
	ctx := context.Background()
	require.NoError(t, cache.Save(ctx, &StoredTemplate{Name: "x", Source: "x"}))

	_, _ = cache.Get(ctx, "x")
	cache.InvalidateAll()
	_, _ = cache.Get(ctx, "x")
	assert.Equal(t, 2, backend.getCount())
}

// pausingStorage holds the next Get after it has read from the backend
// until release is closed.
type pausingStorage struct {
	TemplateStorage
	once    sync.Once
	read    chan struct{}
	release chan struct{}
}

func (p *pausingStorage) Get(ctx context.Context, name string) (*StoredTemplate, error) {
	tmpl, err := p.TemplateStorage.Get(ctx, name)
	p.once.Do(func() {
		close(p.read)
		<-p.release
	})
	return tmpl, err
}

func TestCachedStorage_SaveDuringBackendRead(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryStorage()
	require.NoError(t, backend.Save(ctx, &StoredTemplate{Name: "greet", Source: "v1 {0}"}))

	paused := &pausingStorage{
		TemplateStorage: backend,
		read:            make(chan struct{}),
		release:         make(chan struct{}),
	}
	cache := NewCachedStorage(paused, DefaultCacheConfig())

	type result struct {
		tmpl *StoredTemplate
		err  error
	}
	done := make(chan result, 1)
	go func() {
		tmpl, err := cache.Get(ctx, "greet")
		done <- result{tmpl, err}
	}()

	<-paused.read
	require.NoError(t, cache.Save(ctx, &StoredTemplate{Name: "greet", Source: "v2 {0}"}))
	close(paused.release)

	first := <-done
	require.NoError(t, first.err)
	assert.Equal(t, 1, first.tmpl.Version)

	latest, err := cache.Get(ctx, "greet")
	require.NoError(t, err)
	assert.Equal(t, 2, latest.Version)
	assert.Equal(t, "v2 {0}", latest.Source)
}

func TestCachedStorage_InvalidateAllDuringBackendRead(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryStorage()
	require.NoError(t, backend.Save(ctx, &StoredTemplate{Name: "greet", Source: "v1"}))

	paused := &pausingStorage{
		TemplateStorage: backend,
		read:            make(chan struct{}),
		release:         make(chan struct{}),
	}
	cache := NewCachedStorage(paused, DefaultCacheConfig())

	done := make(chan error, 1)
	go func() {
		_, err := cache.Get(ctx, "greet")
		done <- err
	}()

	<-paused.read
	cache.InvalidateAll()
	close(paused.release)
	require.NoError(t, <-done)

	assert.Equal(t, 0, cache.Stats().Entries)
}
