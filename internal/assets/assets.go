// Package assets reads scene assets from layered file systems and loads
// them asynchronously.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"sync/atomic"
)

// Manager reads files from one or more file systems. Sources are searched
// in reverse order, so the last added source wins.
type Manager struct {
	mu      sync.RWMutex
	sources []fs.FS
	cache   *Cache
}

// NewManager returns a manager reading from the given sources.
func NewManager(sources ...fs.FS) *Manager {
	return &Manager{
		sources: sources,
		cache:   NewCache(),
	}
}

// AddSource adds a file system with the highest priority.
func (m *Manager) AddSource(fsys fs.FS) {
	m.mu.Lock()
	m.sources = append(m.sources, fsys)
	m.mu.Unlock()
}

// Load returns a file's contents. It is safe for concurrent use.
func (m *Manager) Load(name string) ([]byte, error) {
	name = cleanPath(name)
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid asset path %q", name)
	}
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.sources) - 1; i >= 0; i-- {
		data, err := fs.ReadFile(m.sources[i], name)
		if err == nil {
			m.cache.Set(name, data)
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
	}
	return nil, fmt.Errorf("asset %s: %w", name, fs.ErrNotExist)
}

// Cache returns the manager's byte cache.
func (m *Manager) Cache() *Cache {
	return m.cache
}

func cleanPath(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	return strings.TrimPrefix(path.Clean(name), "/")
}

// Cache is an in-memory store of file contents keyed by path.
type Cache struct {
	mu   sync.RWMutex
	data map[string][]byte

	hits   atomic.Int64
	misses atomic.Int64
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{data: make(map[string][]byte)}
}

// Get retrieves an item.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	data, ok := c.data[key]
	c.mu.RUnlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return data, ok
}

// Set stores an item.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	c.data[key] = data
	c.mu.Unlock()
}

// Clear empties the cache and resets its statistics.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.data = make(map[string][]byte)
	c.mu.Unlock()
	c.hits.Store(0)
	c.misses.Store(0)
}

// Stats returns hit and miss counts.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
