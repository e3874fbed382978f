// Package retry runs failable operations with capped exponential backoff.
// Transient failures are retried; permanent ones (bad input, 400-class
// conditions) abort immediately.
package retry

import (
	"context"
	"time"
)

// Class labels how a failure should be handled.
type Class int

const (
	ClassRetryable Class = iota
	ClassPermanent
)

// Classifier decides whether an error is worth retrying.
type Classifier func(err error) Class

// Policy controls the attempt ceiling and backoff growth.
// Delay before retry n is InitialDelay * 2^n. No jitter.
type Policy struct {
	MaxRetries   int
	InitialDelay time.Duration
}

// DefaultPolicy allows 3 retries (4 total attempts) starting at 2 seconds.
func DefaultPolicy() Policy {
	return Policy{MaxRetries: 3, InitialDelay: 2 * time.Second}
}

// Do executes op, retrying retryable failures up to the policy's ceiling.
// It returns the first success, the first permanent failure, or the last
// observed failure once the budget is exhausted. A nil classifier treats
// every failure as retryable. Context cancellation aborts the backoff wait.
func Do[T any](ctx context.Context, policy Policy, classify Classifier, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if classify == nil {
		classify = func(error) Class { return ClassRetryable }
	}

	var lastErr error
	for attempt := 0; attempt <= policy.MaxRetries; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if classify(err) == ClassPermanent {
			return zero, err
		}
		if attempt == policy.MaxRetries {
			break
		}

		delay := policy.InitialDelay << uint(attempt)
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}

	return zero, lastErr
}
