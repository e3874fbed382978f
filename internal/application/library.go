package application

import (
	"context"

	"github.com/hollandre/fitscan/internal/domain"
	"github.com/hollandre/fitscan/internal/ports"
)

// LibraryService manages the user's exercise collection.
type LibraryService struct {
	library ports.ExerciseLibrary
}

// NewLibraryService creates a new library service.
func NewLibraryService(library ports.ExerciseLibrary) *LibraryService {
	return &LibraryService{library: library}
}

// SaveExtracted folds extracted exercises into the library, stamping each
// with the source video's fingerprint. Returns how many were new and how
// many were already present.
func (s *LibraryService) SaveExtracted(ctx context.Context, sourceKey string, exercises []domain.Exercise) (added, skipped int, err error) {
	for _, ex := range exercises {
		if ex.SourceKey == "" {
			ex.SourceKey = sourceKey
		}

		ok, err := s.library.Add(ctx, ex)
		if err != nil {
			return added, skipped, err
		}
		if ok {
			added++
		} else {
			skipped++
		}
	}
	return added, skipped, nil
}

// List returns all library exercises.
func (s *LibraryService) List(ctx context.Context) ([]domain.Exercise, error) {
	return s.library.List(ctx)
}

// Remove deletes all entries matching the name and returns the count.
func (s *LibraryService) Remove(ctx context.Context, name string) (int, error) {
	return s.library.Remove(ctx, name)
}

// Count returns the number of stored exercises.
func (s *LibraryService) Count(ctx context.Context) (int, error) {
	return s.library.Count(ctx)
}
