package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hollandre/fitscan/internal/domain"
)

type mockLibrary struct {
	exercises []domain.Exercise
	added     []domain.Exercise
	dupes     map[string]bool
}

func newMockLibrary(exercises ...domain.Exercise) *mockLibrary {
	return &mockLibrary{exercises: exercises, dupes: make(map[string]bool)}
}

func (m *mockLibrary) Add(ctx context.Context, ex domain.Exercise) (bool, error) {
	key := ex.LibraryKey()
	if m.dupes[key] {
		return false, nil
	}
	m.dupes[key] = true
	m.added = append(m.added, ex)
	m.exercises = append(m.exercises, ex)
	return true, nil
}

func (m *mockLibrary) List(ctx context.Context) ([]domain.Exercise, error) {
	return m.exercises, nil
}

func (m *mockLibrary) Remove(ctx context.Context, name string) (int, error) {
	return 0, domain.ErrExerciseNotFound
}

func (m *mockLibrary) Count(ctx context.Context) (int, error) { return len(m.exercises), nil }
func (m *mockLibrary) Close() error                           { return nil }

const validPlanResponse = "```json\n" + `{"days": [
  {"day": "Monday", "focus": "Legs", "exercises": [{"name": "Goblet Squat", "sets": 3, "reps": "10"}]},
  {"day": "Tuesday", "exercises": []}
]}` + "\n```"

func TestPlanService_Generate(t *testing.T) {
	library := newMockLibrary(domain.Exercise{
		Name: "Goblet Squat", Description: "squat", EndTime: 30,
		MuscleGroups: []string{"quads"}, Equipment: "dumbbell",
	})
	analyzer := &mockAnalyzer{planRaw: validPlanResponse}
	svc := NewPlanService(library, analyzer, quickPolicy())

	plan, err := svc.Generate(context.Background(), PlanOptions{DaysPerWeek: 3, Focus: "strength"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(plan.Days) != 2 {
		t.Fatalf("len(Days) = %d, want 2", len(plan.Days))
	}
	if plan.Variant != domain.VariantFast {
		t.Errorf("Variant = %s, want fast default", plan.Variant)
	}
	if plan.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not stamped")
	}
	if analyzer.planCalls != 1 {
		t.Errorf("plan calls = %d, want 1", analyzer.planCalls)
	}
}

func TestPlanService_EmptyLibrary(t *testing.T) {
	svc := NewPlanService(newMockLibrary(), &mockAnalyzer{}, quickPolicy())

	_, err := svc.Generate(context.Background(), PlanOptions{})
	if !errors.Is(err, domain.ErrEmptyLibrary) {
		t.Errorf("error = %v, want ErrEmptyLibrary", err)
	}
}

func TestPlanService_InvalidPlanResponse(t *testing.T) {
	library := newMockLibrary(domain.Exercise{Name: "Plank", Description: "hold", EndTime: 30})
	analyzer := &mockAnalyzer{planRaw: "no plan today"}
	svc := NewPlanService(library, analyzer, quickPolicy())

	_, err := svc.Generate(context.Background(), PlanOptions{})
	if !errors.Is(err, domain.ErrInvalidResponse) {
		t.Errorf("error = %v, want ErrInvalidResponse", err)
	}
}

func TestBuildPlanPrompt(t *testing.T) {
	exercises := []domain.Exercise{
		{Name: "Goblet Squat", MuscleGroups: []string{"quads", "glutes"}, Equipment: "dumbbell", Difficulty: domain.DifficultyBeginner},
		{Name: "Plank"},
	}

	prompt := buildPlanPrompt(exercises, PlanOptions{DaysPerWeek: 4, Focus: "core"})

	if !strings.Contains(prompt, "4 training days") {
		t.Error("prompt missing training-day count")
	}
	if !strings.Contains(prompt, "Emphasize: core") {
		t.Error("prompt missing focus")
	}
	if !strings.Contains(prompt, "Goblet Squat (quads/glutes, dumbbell, Beginner)") {
		t.Errorf("prompt missing annotated exercise line:\n%s", prompt)
	}
	if !strings.Contains(prompt, "- Plank\n") {
		t.Error("prompt missing bare exercise line")
	}

	// Out-of-range day counts fall back to the default
	fallback := buildPlanPrompt(exercises, PlanOptions{DaysPerWeek: 12})
	if !strings.Contains(fallback, "3 training days") {
		t.Error("out-of-range days-per-week did not fall back to 3")
	}
}
