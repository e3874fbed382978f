package tui

import (
	"fmt"
	"strings"

	"github.com/hollandre/fitscan/internal/domain"
)

// FormatSize formats a byte count for display
// Examples: 512 -> "512 B", 2048 -> "2.0 KB"
func FormatSize(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}

// FormatExerciseLine formats an exercise as a single display line
// Example: "Goblet Squat                  0:12-0:48  quads/glutes  dumbbell"
func FormatExerciseLine(ex domain.Exercise, maxNameLen int) string {
	name := ex.Name
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	nameFmt := fmt.Sprintf("%%-%ds", maxNameLen)
	paddedName := fmt.Sprintf(nameFmt, name)

	window := fmt.Sprintf("%s-%s",
		domain.FormatTimestamp(ex.StartTime), domain.FormatTimestamp(ex.EndTime))

	line := fmt.Sprintf("%s  %9s", paddedName, window)
	if len(ex.MuscleGroups) > 0 {
		line += "  " + strings.Join(ex.MuscleGroups, "/")
	}
	if ex.Equipment != "" {
		line += "  " + ex.Equipment
	}
	return line
}
