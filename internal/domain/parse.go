package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// StripCodeFence removes a surrounding markdown code fence (``` or ```json)
// from a model response, leaving the payload untouched otherwise.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

// extractArray locates the JSON array in a response payload: either the
// payload itself is an array, or it is an object wrapping one (the model
// sometimes puts its answer under a key like {"exercises": [...]}).
func extractArray(payload string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(payload)
	if strings.HasPrefix(trimmed, "[") {
		var arr json.RawMessage
		if err := json.Unmarshal([]byte(trimmed), &arr); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		return arr, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	// Deterministic pick when the envelope carries several keys
	keys := make([]string, 0, len(envelope))
	for k := range envelope {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if strings.HasPrefix(strings.TrimSpace(string(envelope[k])), "[") {
			return envelope[k], nil
		}
	}

	return nil, fmt.Errorf("%w: no array found in response object", ErrInvalidResponse)
}

// DecodeExerciseResponse converts a raw model response into exercises.
// It tolerates code fences and envelope objects, but rejects any element
// missing a required field or carrying a wrong type - partial data is
// never returned.
func DecodeExerciseResponse(raw string) ([]Exercise, error) {
	payload := StripCodeFence(raw)
	if payload == "" {
		return nil, ErrEmptyResponse
	}

	arr, err := extractArray(payload)
	if err != nil {
		return nil, err
	}

	var elements []map[string]any
	if err := json.Unmarshal(arr, &elements); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	exercises := make([]Exercise, 0, len(elements))
	for i, el := range elements {
		ex, err := exerciseFromElement(el)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrInvalidResponse, i, err)
		}
		exercises = append(exercises, ex)
	}

	return exercises, nil
}

func exerciseFromElement(el map[string]any) (Exercise, error) {
	var ex Exercise

	name, ok := el["name"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return ex, fmt.Errorf("missing or non-string name")
	}
	description, ok := el["description"].(string)
	if !ok {
		return ex, fmt.Errorf("missing or non-string description")
	}
	start, ok := el["startTime"].(float64)
	if !ok {
		return ex, fmt.Errorf("missing or non-numeric startTime")
	}
	end, ok := el["endTime"].(float64)
	if !ok {
		return ex, fmt.Errorf("missing or non-numeric endTime")
	}

	ex = Exercise{
		Name:        name,
		Description: description,
		StartTime:   start,
		EndTime:     end,
	}

	if groups, present := el["muscleGroups"]; present && groups != nil {
		list, ok := groups.([]any)
		if !ok {
			return ex, fmt.Errorf("muscleGroups is not a list")
		}
		for _, g := range list {
			s, ok := g.(string)
			if !ok {
				return ex, fmt.Errorf("muscleGroups contains a non-string entry")
			}
			ex.MuscleGroups = append(ex.MuscleGroups, s)
		}
	}

	if equipment, present := el["equipment"]; present && equipment != nil {
		s, ok := equipment.(string)
		if !ok {
			return ex, fmt.Errorf("equipment is not a string")
		}
		ex.Equipment = s
	}

	if difficulty, present := el["difficulty"]; present && difficulty != nil {
		s, ok := difficulty.(string)
		if !ok || !ValidDifficulty(s) {
			return ex, fmt.Errorf("unknown difficulty %v", difficulty)
		}
		ex.Difficulty = Difficulty(s)
	}

	return ex, nil
}

// DecodeWorkoutPlan converts a raw model response into a weekly plan.
// Accepts {"days": [...]} or a bare array of days, fenced or not.
func DecodeWorkoutPlan(raw string) (*WorkoutPlan, error) {
	payload := StripCodeFence(raw)
	if payload == "" {
		return nil, ErrEmptyResponse
	}

	arr, err := extractArray(payload)
	if err != nil {
		return nil, err
	}

	var days []PlanDay
	if err := json.Unmarshal(arr, &days); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: plan has no days", ErrInvalidResponse)
	}

	for i, day := range days {
		if strings.TrimSpace(day.Day) == "" {
			return nil, fmt.Errorf("%w: day %d has no label", ErrInvalidResponse, i)
		}
		for _, entry := range day.Exercises {
			if strings.TrimSpace(entry.Name) == "" {
				return nil, fmt.Errorf("%w: %s has an unnamed exercise", ErrInvalidResponse, day.Day)
			}
		}
	}

	return &WorkoutPlan{Days: days}, nil
}
