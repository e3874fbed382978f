package application

import (
	"context"
	"testing"

	"github.com/hollandre/fitscan/internal/ports"
)

func TestCacheService_Stats(t *testing.T) {
	cache := newMockCache()
	cache.items["h1::fast"] = &ports.CachedAnalysis{}
	cache.items["h1::thorough"] = &ports.CachedAnalysis{}

	svc := NewCacheService(cache)
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.EntryCount != 2 {
		t.Errorf("EntryCount = %d, want 2", stats.EntryCount)
	}
}
