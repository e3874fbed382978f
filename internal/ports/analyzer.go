package ports

import "context"

// VideoAnalyzer talks to the generative model. Both methods return the raw
// response text; decoding and validation happen in the domain layer, since
// the model may fence or envelope its answer.
type VideoAnalyzer interface {
	// AnalyzeVideo submits video bytes with the exercise-extraction
	// instruction and declared output schema.
	AnalyzeVideo(ctx context.Context, video []byte, mimeType, variant string) (string, error)

	// GeneratePlan submits a text-only prompt asking for a weekly plan.
	GeneratePlan(ctx context.Context, prompt, variant string) (string, error)
}
