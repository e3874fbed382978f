package ports

import (
	"context"
	"time"

	"github.com/hollandre/fitscan/internal/domain"
)

// CachedAnalysis is one cached model response for a (content hash, variant) pair.
type CachedAnalysis struct {
	Exercises []domain.Exercise
	Variant   string    // model variant that produced the result
	CreatedAt time.Time // when the analysis was cached
}

// AnalysisCache persists analysis results keyed by content hash and model
// variant. Entries older than the retention window are treated as absent.
type AnalysisCache interface {
	// Get retrieves a cached analysis, returning domain.ErrCacheMiss if
	// absent or domain.ErrCacheExpired if stale (removing the stale entry).
	Get(ctx context.Context, contentHash, variant string) (*CachedAnalysis, error)

	// Set stores an analysis result, overwriting any previous entry.
	Set(ctx context.Context, contentHash, variant string, item *CachedAnalysis) error

	// Delete removes a specific entry.
	Delete(ctx context.Context, contentHash, variant string) error

	// CleanExpired removes all stale entries and returns the count removed.
	CleanExpired(ctx context.Context) (int, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Stats returns entry count and on-disk size in bytes.
	Stats(ctx context.Context) (entryCount int, totalSize int64, err error)
}
