package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hollandre/fitscan/internal/domain"
	"github.com/hollandre/fitscan/internal/ports"
	"github.com/hollandre/fitscan/internal/retry"
)

// PlanOptions configures weekly plan generation.
type PlanOptions struct {
	DaysPerWeek int    // training days; defaults to 3
	Focus       string // optional emphasis, e.g. "upper body"
	Variant     string
}

// PlanService generates a weekly workout plan from the exercise library.
type PlanService struct {
	library  ports.ExerciseLibrary
	analyzer ports.VideoAnalyzer
	policy   retry.Policy
}

// NewPlanService creates a new plan service.
func NewPlanService(library ports.ExerciseLibrary, analyzer ports.VideoAnalyzer, policy retry.Policy) *PlanService {
	return &PlanService{
		library:  library,
		analyzer: analyzer,
		policy:   policy,
	}
}

// Generate asks the model for a 7-day plan built only from library
// exercises. The response goes through the same fence/envelope decoding
// and validation as extraction.
func (s *PlanService) Generate(ctx context.Context, opts PlanOptions) (*domain.WorkoutPlan, error) {
	exercises, err := s.library.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load exercise library: %w", err)
	}
	if len(exercises) == 0 {
		return nil, domain.ErrEmptyLibrary
	}

	variant := opts.Variant
	if variant == "" {
		variant = domain.VariantFast
	}

	prompt := buildPlanPrompt(exercises, opts)

	raw, err := retry.Do(ctx, s.policy, ClassifyModelError, func(ctx context.Context) (string, error) {
		return s.analyzer.GeneratePlan(ctx, prompt, variant)
	})
	if err != nil {
		return nil, fmt.Errorf("plan generation failed: %w", err)
	}

	plan, err := domain.DecodeWorkoutPlan(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan from model response: %w", err)
	}

	plan.Variant = variant
	plan.GeneratedAt = time.Now()
	return plan, nil
}

func buildPlanPrompt(exercises []domain.Exercise, opts PlanOptions) string {
	daysPerWeek := opts.DaysPerWeek
	if daysPerWeek < 1 || daysPerWeek > 7 {
		daysPerWeek = 3
	}

	var sb strings.Builder
	sb.WriteString("Create a 7-day weekly workout plan with ")
	fmt.Fprintf(&sb, "%d training days; the remaining days are rest days.\n", daysPerWeek)
	if opts.Focus != "" {
		fmt.Fprintf(&sb, "Emphasize: %s.\n", opts.Focus)
	}
	sb.WriteString("Use ONLY the exercises listed below.\n\n")
	sb.WriteString("Available exercises:\n")

	for _, ex := range exercises {
		fmt.Fprintf(&sb, "- %s", ex.Name)
		var details []string
		if len(ex.MuscleGroups) > 0 {
			details = append(details, strings.Join(ex.MuscleGroups, "/"))
		}
		if ex.Equipment != "" {
			details = append(details, ex.Equipment)
		}
		if ex.Difficulty != "" {
			details = append(details, string(ex.Difficulty))
		}
		if len(details) > 0 {
			fmt.Fprintf(&sb, " (%s)", strings.Join(details, ", "))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(`
Return ONLY a JSON object: {"days": [{"day": string, "focus": string, "exercises": [{"name": string, "sets": number, "reps": string, "restSeconds": number}]}]}.
Rest days have an empty "exercises" array. Day labels are Monday through Sunday.`)

	return sb.String()
}
