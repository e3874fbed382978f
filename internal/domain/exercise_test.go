package domain

import (
	"testing"
	"time"
)

func TestExercise_LibraryKey(t *testing.T) {
	a := Exercise{Name: "Goblet Squat", SourceKey: "abc123", StartTime: 12.5, EndTime: 48}
	b := Exercise{Name: "  goblet squat ", SourceKey: "abc123", StartTime: 12.5, EndTime: 48}
	c := Exercise{Name: "Goblet Squat", SourceKey: "other", StartTime: 12.5, EndTime: 48}

	if a.LibraryKey() != b.LibraryKey() {
		t.Errorf("keys differ for same exercise with whitespace/case noise: %q vs %q",
			a.LibraryKey(), b.LibraryKey())
	}
	if a.LibraryKey() == c.LibraryKey() {
		t.Error("same exercise from different source videos should have distinct keys")
	}
}

func TestExercise_Duration(t *testing.T) {
	ex := Exercise{StartTime: 10, EndTime: 45.5}
	if got := ex.Duration(); got != 35500*time.Millisecond {
		t.Errorf("Duration() = %v, want 35.5s", got)
	}

	inverted := Exercise{StartTime: 45, EndTime: 10}
	if got := inverted.Duration(); got != 0 {
		t.Errorf("Duration() for inverted bounds = %v, want 0", got)
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{12.5, "0:12"},
		{65, "1:05"},
		{3605, "60:05"},
		{-3, "0:00"},
	}

	for _, tt := range tests {
		if got := FormatTimestamp(tt.seconds); got != tt.want {
			t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestValidDifficulty(t *testing.T) {
	for _, s := range []string{"Beginner", "Intermediate", "Advanced"} {
		if !ValidDifficulty(s) {
			t.Errorf("ValidDifficulty(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"beginner", "Expert", ""} {
		if ValidDifficulty(s) {
			t.Errorf("ValidDifficulty(%q) = true, want false", s)
		}
	}
}

func TestMimeTypeForVideo(t *testing.T) {
	mime, err := MimeTypeForVideo("/videos/Leg Day.MP4")
	if err != nil {
		t.Fatalf("MimeTypeForVideo() error = %v", err)
	}
	if mime != "video/mp4" {
		t.Errorf("mime = %s, want video/mp4", mime)
	}

	if _, err := MimeTypeForVideo("notes.txt"); err == nil {
		t.Error("expected error for non-video extension")
	}
}

func TestWorkoutPlan_ToText(t *testing.T) {
	plan := &WorkoutPlan{
		Days: []PlanDay{
			{Day: "Monday", Focus: "Push", Exercises: []PlanEntry{
				{Name: "Push-up", Sets: 3, Reps: "12", RestSeconds: 60},
			}},
			{Day: "Tuesday"},
		},
	}

	text := plan.ToText()
	want := "Monday - Push\n  Push-up: 3x12 (rest 60s)\n\nTuesday\n  Rest"
	if text != want {
		t.Errorf("ToText() = %q, want %q", text, want)
	}
}
