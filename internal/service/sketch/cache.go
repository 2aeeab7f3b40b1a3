package sketch

import (
	"encoding/json"
	"os"
	"sync"

	"go.uber.org/zap"
)

// cacheNamespace keys the sketch map inside the cache file so stale files
// from older layouts are ignored rather than misread.
const cacheNamespace = "pomeroy_botanical_sketches_v1"

// Cache is a small file-backed key-value store mapping a sketch identifier
// to its image data URL. It is read once at startup and written
// opportunistically; it is never authoritative, so every failure degrades to
// "regenerate next time".
type Cache struct {
	mu      sync.RWMutex
	path    string
	entries map[string]string
	logger  *zap.Logger
}

// NewCache loads the cache file at path. A missing or unreadable file simply
// starts the cache cold.
func NewCache(path string, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Cache{path: path, entries: make(map[string]string), logger: logger}

	payload, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("sketch cache unreadable, starting cold", zap.String("path", path), zap.Error(err))
		}
		return c
	}

	var file map[string]map[string]string
	if err := json.Unmarshal(payload, &file); err != nil {
		logger.Warn("sketch cache corrupt, starting cold", zap.String("path", path), zap.Error(err))
		return c
	}
	if entries, ok := file[cacheNamespace]; ok {
		c.entries = entries
	}

	return c
}

// Get returns the cached image URL for a sketch id.
func (c *Cache) Get(id string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	url, ok := c.entries[id]
	return url, ok
}

// Put stores an image URL and flushes the file. Write failures are logged
// and swallowed; the cache just stays colder than intended.
func (c *Cache) Put(id, url string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[id] = url

	payload, err := json.Marshal(map[string]map[string]string{cacheNamespace: c.entries})
	if err != nil {
		c.logger.Warn("sketch cache encode failed", zap.Error(err))
		return
	}
	if err := os.WriteFile(c.path, payload, 0o644); err != nil {
		c.logger.Warn("sketch cache write failed", zap.String("path", c.path), zap.Error(err))
	}
}

// Len reports how many sketches are cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
