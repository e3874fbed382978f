package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fast policy so tests don't sleep for real
func testPolicy(maxRetries int) Policy {
	return Policy{MaxRetries: maxRetries, InitialDelay: time.Millisecond}
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	attempts := 0
	result, err := Do(context.Background(), testPolicy(3), nil, func(ctx context.Context) (string, error) {
		attempts++
		return "ok", nil
	})

	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if result != "ok" {
		t.Errorf("result = %q, want ok", result)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestDo_ExhaustsRetryBudget(t *testing.T) {
	transient := errors.New("connection reset")
	attempts := 0

	_, err := Do(context.Background(), testPolicy(3), nil, func(ctx context.Context) (string, error) {
		attempts++
		return "", transient
	})

	if attempts != 4 {
		t.Errorf("attempts = %d, want 4 (1 initial + 3 retries)", attempts)
	}
	if !errors.Is(err, transient) {
		t.Errorf("error = %v, want the last observed failure", err)
	}
}

func TestDo_RecoversBeforeBudgetExhausted(t *testing.T) {
	attempts := 0
	result, err := Do(context.Background(), testPolicy(3), nil, func(ctx context.Context) (int, error) {
		attempts++
		if attempts < 2 {
			return 0, errors.New("flaky")
		}
		return 42, nil
	})

	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if result != 42 {
		t.Errorf("result = %d, want 42", result)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestDo_PermanentFailureAbortsImmediately(t *testing.T) {
	permanent := errors.New("400 Bad Request")
	attempts := 0

	classify := func(err error) Class {
		return ClassPermanent
	}

	_, err := Do(context.Background(), testPolicy(3), classify, func(ctx context.Context) (string, error) {
		attempts++
		return "", permanent
	})

	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
	if !errors.Is(err, permanent) {
		t.Errorf("error = %v, want the permanent failure", err)
	}
}

func TestDo_ClassifierSeesEachError(t *testing.T) {
	transient := errors.New("503 upstream")
	permanent := errors.New("invalid input")
	attempts := 0

	classify := func(err error) Class {
		if errors.Is(err, permanent) {
			return ClassPermanent
		}
		return ClassRetryable
	}

	_, err := Do(context.Background(), testPolicy(5), classify, func(ctx context.Context) (string, error) {
		attempts++
		if attempts < 3 {
			return "", transient
		}
		return "", permanent
	})

	if attempts != 3 {
		t.Errorf("attempts = %d, want 3 (2 transient + 1 permanent)", attempts)
	}
	if !errors.Is(err, permanent) {
		t.Errorf("error = %v, want permanent", err)
	}
}

func TestDo_ContextCancelDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	policy := Policy{MaxRetries: 3, InitialDelay: time.Hour}
	attempts := 0

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := Do(ctx, policy, nil, func(ctx context.Context) (string, error) {
		attempts++
		return "", errors.New("flaky")
	})

	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	if p.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", p.MaxRetries)
	}
	if p.InitialDelay != 2*time.Second {
		t.Errorf("InitialDelay = %v, want 2s", p.InitialDelay)
	}
}
