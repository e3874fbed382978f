package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/hollandre/fitscan/internal/domain"
	"github.com/hollandre/fitscan/internal/ports"
)

// BlobCache persists analysis results as one serialized map in a single
// JSON file. Every write rewrites the whole map; fine while the entry
// count stays small. No locking: a single-user local cache accepts
// last-write-wins.
type BlobCache struct {
	path      string
	retention time.Duration
}

func NewBlobCache(path string, retention time.Duration) *BlobCache {
	return &BlobCache{
		path:      path,
		retention: retention,
	}
}

type blobEntry struct {
	Exercises []domain.Exercise `json:"exercises"`
	Variant   string            `json:"variant"`
	CreatedAt time.Time         `json:"created_at"`
}

// entryKey joins hash and variant so the same video analyzed by two
// variants caches separately.
func entryKey(contentHash, variant string) string {
	return contentHash + "::" + variant
}

func (c *BlobCache) load() (map[string]blobEntry, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]blobEntry{}, nil
		}
		return nil, err
	}

	entries := map[string]blobEntry{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *BlobCache) save(entries map[string]blobEntry) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.path, data, 0644)
}

func (c *BlobCache) expired(e blobEntry) bool {
	return time.Since(e.CreatedAt) > c.retention
}

func (c *BlobCache) Get(ctx context.Context, contentHash, variant string) (*ports.CachedAnalysis, error) {
	entries, err := c.load()
	if err != nil {
		return nil, err
	}

	key := entryKey(contentHash, variant)
	entry, ok := entries[key]
	if !ok {
		return nil, domain.ErrCacheMiss
	}

	if c.expired(entry) {
		// Lazy expiry: drop the stale entry on read
		delete(entries, key)
		_ = c.save(entries)
		return nil, domain.ErrCacheExpired
	}

	return &ports.CachedAnalysis{
		Exercises: entry.Exercises,
		Variant:   entry.Variant,
		CreatedAt: entry.CreatedAt,
	}, nil
}

func (c *BlobCache) Set(ctx context.Context, contentHash, variant string, item *ports.CachedAnalysis) error {
	entries, err := c.load()
	if err != nil {
		return err
	}

	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	entries[entryKey(contentHash, variant)] = blobEntry{
		Exercises: item.Exercises,
		Variant:   variant,
		CreatedAt: createdAt,
	}

	return c.save(entries)
}

func (c *BlobCache) Delete(ctx context.Context, contentHash, variant string) error {
	entries, err := c.load()
	if err != nil {
		return err
	}

	delete(entries, entryKey(contentHash, variant))
	return c.save(entries)
}

func (c *BlobCache) CleanExpired(ctx context.Context) (int, error) {
	entries, err := c.load()
	if err != nil {
		return 0, err
	}

	cleaned := 0
	for key, entry := range entries {
		if c.expired(entry) {
			delete(entries, key)
			cleaned++
		}
	}

	if cleaned > 0 {
		if err := c.save(entries); err != nil {
			return 0, err
		}
	}

	return cleaned, nil
}

func (c *BlobCache) Clear(ctx context.Context) error {
	err := os.Remove(c.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (c *BlobCache) Stats(ctx context.Context) (entryCount int, totalSize int64, err error) {
	entries, err := c.load()
	if err != nil {
		return 0, 0, err
	}

	info, err := os.Stat(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, nil
		}
		return 0, 0, err
	}

	return len(entries), info.Size(), nil
}

var _ ports.AnalysisCache = (*BlobCache)(nil)
