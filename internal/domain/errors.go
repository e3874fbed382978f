package domain

import "errors"

var (
	// Analysis errors
	ErrVideoRejected   = errors.New("the video may be too large or complex to analyze - try a shorter or simpler clip")
	ErrEmptyResponse   = errors.New("model returned an empty response")
	ErrInvalidResponse = errors.New("model response did not match the expected format")

	// Cache errors
	ErrCacheExpired = errors.New("cache expired")
	ErrCacheMiss    = errors.New("cache miss")

	// Library errors
	ErrExerciseNotFound = errors.New("exercise not found in library")
	ErrEmptyLibrary     = errors.New("exercise library is empty - analyze a video first")
)
