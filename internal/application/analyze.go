package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hollandre/fitscan/internal/domain"
	"github.com/hollandre/fitscan/internal/ports"
	"github.com/hollandre/fitscan/internal/retry"
)

// AnalyzeOptions configures a video analysis.
type AnalyzeOptions struct {
	Variant     string // model variant; defaults to "fast"
	ContentHash string // precomputed fingerprint; empty disables caching
	MimeType    string
	NoCache     bool // bypass the cache even when a hash is supplied
}

// AnalyzeResult contains the extracted exercises.
type AnalyzeResult struct {
	Exercises []domain.Exercise
	Variant   string
	FromCache bool
}

// AnalyzeService orchestrates extraction: cache lookup, the retried model
// call, response validation, and the write back to the cache.
type AnalyzeService struct {
	cache    ports.AnalysisCache
	analyzer ports.VideoAnalyzer
	policy   retry.Policy
}

// NewAnalyzeService creates a new analysis service.
func NewAnalyzeService(cache ports.AnalysisCache, analyzer ports.VideoAnalyzer, policy retry.Policy) *AnalyzeService {
	return &AnalyzeService{
		cache:    cache,
		analyzer: analyzer,
		policy:   policy,
	}
}

// Analyze extracts exercises from video bytes. A cache hit returns
// immediately without touching the network; the cache's own expiry is the
// only staleness check.
func (s *AnalyzeService) Analyze(ctx context.Context, video []byte, opts AnalyzeOptions) (*AnalyzeResult, error) {
	variant := opts.Variant
	if variant == "" {
		variant = domain.VariantFast
	}

	if !opts.NoCache && opts.ContentHash != "" {
		cached, err := s.cache.Get(ctx, opts.ContentHash, variant)
		if err == nil {
			return &AnalyzeResult{
				Exercises: cached.Exercises,
				Variant:   variant,
				FromCache: true,
			}, nil
		}
	}

	raw, err := retry.Do(ctx, s.policy, ClassifyModelError, func(ctx context.Context) (string, error) {
		return s.analyzer.AnalyzeVideo(ctx, video, opts.MimeType, variant)
	})
	if err != nil {
		return nil, rewriteModelError(err)
	}

	exercises, err := domain.DecodeExerciseResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to read exercises from model response: %w", err)
	}

	for i := range exercises {
		exercises[i].SourceKey = opts.ContentHash
	}

	if opts.ContentHash != "" {
		// Cache write failures are non-fatal
		_ = s.cache.Set(ctx, opts.ContentHash, variant, &ports.CachedAnalysis{
			Exercises: exercises,
			Variant:   variant,
			CreatedAt: time.Now(),
		})
	}

	return &AnalyzeResult{
		Exercises: exercises,
		Variant:   variant,
	}, nil
}

// permanent-failure phrases: retrying a request the model already refused
// as malformed cannot help
var permanentPhrases = []string{
	"400",
	"bad request",
	"invalid argument",
	"malformed",
	"invalid input",
}

// ClassifyModelError treats 400-class and malformed-input failures as
// permanent; everything else (network blips, 5xx-like conditions) retries.
func ClassifyModelError(err error) retry.Class {
	msg := strings.ToLower(err.Error())
	for _, phrase := range permanentPhrases {
		if strings.Contains(msg, phrase) {
			return retry.ClassPermanent
		}
	}
	return retry.ClassRetryable
}

// phrases the model/proxy uses when it refuses a payload outright
var rejectionPhrases = []string{
	"400",
	"bad request",
	"blocked",
	"proxy",
}

// rewriteModelError turns recognizable refusals into the user-facing
// "too large or complex" message; other failures keep their context.
func rewriteModelError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	msg := strings.ToLower(err.Error())
	for _, phrase := range rejectionPhrases {
		if strings.Contains(msg, phrase) {
			return fmt.Errorf("%w (%v)", domain.ErrVideoRejected, err)
		}
	}
	return fmt.Errorf("video analysis failed: %w", err)
}
