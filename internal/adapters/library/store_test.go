package library

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hollandre/fitscan/internal/domain"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "library.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func squat() domain.Exercise {
	return domain.Exercise{
		Name:         "Goblet Squat",
		Description:  "Squat holding a dumbbell at the chest",
		StartTime:    12.5,
		EndTime:      48,
		MuscleGroups: []string{"quads", "glutes"},
		Equipment:    "dumbbell",
		Difficulty:   domain.DifficultyBeginner,
		SourceKey:    "abc123",
	}
}

func TestStore_AddAndList(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	added, err := s.Add(ctx, squat())
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !added {
		t.Error("Add() = false for a new exercise, want true")
	}

	exercises, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(exercises) != 1 {
		t.Fatalf("len(exercises) = %d, want 1", len(exercises))
	}

	got := exercises[0]
	if got.Name != "Goblet Squat" {
		t.Errorf("Name = %s, want display casing preserved", got.Name)
	}
	if len(got.MuscleGroups) != 2 || got.MuscleGroups[0] != "quads" {
		t.Errorf("MuscleGroups = %v, want [quads glutes]", got.MuscleGroups)
	}
	if got.Difficulty != domain.DifficultyBeginner {
		t.Errorf("Difficulty = %s, want Beginner", got.Difficulty)
	}
}

func TestStore_AddDeduplicates(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if _, err := s.Add(ctx, squat()); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	// Same name (modulo case/space), source, and bounds: duplicate
	dupe := squat()
	dupe.Name = "  goblet squat "
	added, err := s.Add(ctx, dupe)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if added {
		t.Error("Add() = true for duplicate, want false")
	}

	// Same name from a different video: distinct entry
	other := squat()
	other.SourceKey = "def456"
	added, err = s.Add(ctx, other)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !added {
		t.Error("Add() = false for same exercise from another video, want true")
	}

	count, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}
}

func TestStore_Remove(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_, _ = s.Add(ctx, squat())
	other := squat()
	other.SourceKey = "def456"
	_, _ = s.Add(ctx, other)

	removed, err := s.Remove(ctx, "GOBLET SQUAT")
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if removed != 2 {
		t.Errorf("Remove() = %d, want 2 (all entries with the name)", removed)
	}

	if _, err := s.Remove(ctx, "Goblet Squat"); err != domain.ErrExerciseNotFound {
		t.Errorf("Remove() of absent name error = %v, want ErrExerciseNotFound", err)
	}
}

func TestStore_ListEmptyOptionalFields(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	minimal := domain.Exercise{
		Name:        "Plank",
		Description: "Hold a plank",
		StartTime:   0,
		EndTime:     30,
		SourceKey:   "abc123",
	}
	if _, err := s.Add(ctx, minimal); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	exercises, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	got := exercises[0]
	if got.MuscleGroups != nil {
		t.Errorf("MuscleGroups = %v, want nil", got.MuscleGroups)
	}
	if got.Equipment != "" || got.Difficulty != "" {
		t.Errorf("optional fields not empty: %q %q", got.Equipment, got.Difficulty)
	}
}
