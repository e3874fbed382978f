package domain

import (
	"fmt"
	"strings"
	"time"
)

// PlanEntry is one exercise prescription within a plan day.
type PlanEntry struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"` // "8-12", "30s", "to failure"
	RestSeconds int    `json:"restSeconds,omitempty"`
}

// PlanDay is a single day of a weekly plan. Rest days carry no exercises.
type PlanDay struct {
	Day       string      `json:"day"`
	Focus     string      `json:"focus,omitempty"`
	Exercises []PlanEntry `json:"exercises"`
}

// WorkoutPlan is a generated weekly workout plan.
type WorkoutPlan struct {
	Days        []PlanDay `json:"days"`
	Variant     string    `json:"variant,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ToText renders the plan for terminal output.
func (p *WorkoutPlan) ToText() string {
	var sb strings.Builder

	for i, day := range p.Days {
		if i > 0 {
			sb.WriteString("\n")
		}
		header := day.Day
		if day.Focus != "" {
			header += " - " + day.Focus
		}
		sb.WriteString(header)
		sb.WriteString("\n")

		if len(day.Exercises) == 0 {
			sb.WriteString("  Rest\n")
			continue
		}

		for _, ex := range day.Exercises {
			line := fmt.Sprintf("  %s: %dx%s", ex.Name, ex.Sets, ex.Reps)
			if ex.RestSeconds > 0 {
				line += fmt.Sprintf(" (rest %ds)", ex.RestSeconds)
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	return strings.TrimSuffix(sb.String(), "\n")
}
