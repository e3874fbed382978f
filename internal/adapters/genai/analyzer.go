// Package genai calls Gemini through Genkit to detect exercises in
// workout videos and to draft weekly plans.
package genai

import (
	"context"
	"encoding/base64"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"

	"github.com/hollandre/fitscan/internal/domain"
	"github.com/hollandre/fitscan/internal/ports"
)

// modelForVariant maps a variant label to a Gemini model.
// "fast" favors cost and latency; "thorough" favors detection quality.
func modelForVariant(variant string) string {
	if variant == domain.VariantThorough {
		return "googleai/gemini-2.5-pro"
	}
	return "googleai/gemini-2.5-flash"
}

const extractionPrompt = `You are analyzing a workout video. Identify every distinct exercise performed in it.

Return ONLY a JSON array. Each element must have:
  "name" (string): the common name of the exercise
  "description" (string): one or two sentences on how it is performed in this video
  "startTime" (number): seconds from the start of the video where the exercise begins
  "endTime" (number): seconds where it ends
Optional fields when you can tell:
  "muscleGroups" (array of strings)
  "equipment" (string)
  "difficulty" (one of "Beginner", "Intermediate", "Advanced")

Do not include warm-up chatter, rest periods, or transitions as exercises.`

// extractedExercise declares the output schema sent to the model.
type extractedExercise struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	StartTime    float64  `json:"startTime"`
	EndTime      float64  `json:"endTime"`
	MuscleGroups []string `json:"muscleGroups,omitempty"`
	Equipment    string   `json:"equipment,omitempty"`
	Difficulty   string   `json:"difficulty,omitempty"`
}

// Analyzer is the Gemini-backed ports.VideoAnalyzer.
type Analyzer struct {
	g *genkit.Genkit
}

// New initializes Genkit with the GoogleAI plugin. The API key comes from
// the caller (resolved from the environment by the config layer).
func New(ctx context.Context, apiKey string) (*Analyzer, error) {
	g := genkit.Init(ctx, genkit.WithPlugins(&googlegenai.GoogleAI{APIKey: apiKey}))
	return &Analyzer{g: g}, nil
}

func (a *Analyzer) AnalyzeVideo(ctx context.Context, video []byte, mimeType, variant string) (string, error) {
	if mimeType == "" {
		mimeType = "video/mp4"
	}
	dataURL := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(video)

	resp, err := genkit.Generate(ctx, a.g,
		ai.WithModelName(modelForVariant(variant)),
		ai.WithMessages(ai.NewUserMessage(
			ai.NewMediaPart(mimeType, dataURL),
			ai.NewTextPart(extractionPrompt),
		)),
		ai.WithOutputType([]extractedExercise{}),
	)
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}

func (a *Analyzer) GeneratePlan(ctx context.Context, prompt, variant string) (string, error) {
	resp, err := genkit.Generate(ctx, a.g,
		ai.WithModelName(modelForVariant(variant)),
		ai.WithPrompt(prompt),
	)
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}

var _ ports.VideoAnalyzer = (*Analyzer)(nil)
