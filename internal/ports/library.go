package ports

import (
	"context"

	"github.com/hollandre/fitscan/internal/domain"
)

// ExerciseLibrary is the user's accumulated exercise collection. Exercises
// deduplicate on name + source video + clip bounds (domain.Exercise.LibraryKey).
type ExerciseLibrary interface {
	// Add stores an exercise if no equivalent entry exists.
	// Returns false when the exercise was already present.
	Add(ctx context.Context, ex domain.Exercise) (bool, error)

	// List returns all exercises ordered by name, then start time.
	List(ctx context.Context) ([]domain.Exercise, error)

	// Remove deletes all entries matching the given name (case-insensitive)
	// and returns the count removed.
	Remove(ctx context.Context, name string) (int, error)

	// Count returns the number of stored exercises.
	Count(ctx context.Context) (int, error)

	// Close releases the underlying store.
	Close() error
}
