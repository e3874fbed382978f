package domain

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty grades how demanding an exercise is.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// ValidDifficulty reports whether s is a recognized difficulty grade.
func ValidDifficulty(s string) bool {
	switch Difficulty(s) {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Model variant labels. A variant selects which generative-AI configuration
// analyzes a video; the same video under two variants caches separately.
const (
	VariantFast     = "fast"
	VariantThorough = "thorough"
)

// ValidVariant reports whether s is a recognized model variant.
func ValidVariant(s string) bool {
	return s == VariantFast || s == VariantThorough
}

// Exercise is a single exercise detected within a workout video.
type Exercise struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	StartTime    float64    `json:"startTime"` // seconds from the start of the video
	EndTime      float64    `json:"endTime"`
	MuscleGroups []string   `json:"muscleGroups,omitempty"`
	Equipment    string     `json:"equipment,omitempty"`
	Difficulty   Difficulty `json:"difficulty,omitempty"`
	SourceKey    string     `json:"sourceKey,omitempty"` // content hash of the video it came from
}

// LibraryKey identifies an exercise for deduplication: same name,
// same source video, same clip bounds.
func (e *Exercise) LibraryKey() string {
	return fmt.Sprintf("%s|%s|%.3f|%.3f",
		strings.ToLower(strings.TrimSpace(e.Name)), e.SourceKey, e.StartTime, e.EndTime)
}

// Duration returns the length of the detected clip.
func (e *Exercise) Duration() time.Duration {
	if e.EndTime <= e.StartTime {
		return 0
	}
	return time.Duration((e.EndTime - e.StartTime) * float64(time.Second))
}

// FormatTimestamp converts seconds to M:SS display form.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
