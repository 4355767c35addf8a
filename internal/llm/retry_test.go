package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     2 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsFirstAttempt(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithRetry(mock, fastRetry(2))

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp == nil {
		t.Fatal("expected a response")
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_TransientErrorRetriedOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetry(2))

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp == nil {
		t.Fatal("expected a response on the retry")
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_AttemptsBounded(t *testing.T) {
	// Planning budgets a single retry: two attempts total, never more,
	// however persistent the failure.
	mock := NewMockProvider()
	p := WithRetry(mock, fastRetry(2))

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected exactly 2 attempts, got %d", mock.CallCount())
	}
}

func TestRetry_ContextErrorsNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: fmt.Errorf("call: %w", context.DeadlineExceeded)},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("deadline expiry must not be retried, got %d calls", mock.CallCount())
	}
}

func TestRetry_InvalidResponseRetriedExactlyOnce(t *testing.T) {
	invalid := &ErrInvalidResponse{Err: errors.New("schema mismatch")}
	mock := NewMockProvider(
		MockResponse{Err: invalid},
		MockResponse{Err: invalid},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetry(5))

	_, err := p.Generate(context.Background(), Request{})
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse after one regeneration, got %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("malformed responses get one regeneration, got %d calls", mock.CallCount())
	}
}

func TestRetry_RateLimitHonorsRetryAfter(t *testing.T) {
	r := &RetryProvider{config: fastRetry(2)}
	wait := r.backoff(0, &ErrRateLimit{RetryAfter: 42 * time.Millisecond})
	if wait != 42*time.Millisecond {
		t.Errorf("backoff = %v, want the server's retry-after", wait)
	}
}

func TestFallback_UsedOnTransientError(t *testing.T) {
	primary := NewMockProvider() // always fails
	fallback := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithModelFallback(primary, fallback)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp == nil {
		t.Fatal("expected the fallback's response")
	}
	if fallback.CallCount() != 1 {
		t.Errorf("expected 1 fallback call, got %d", fallback.CallCount())
	}
}

func TestFallback_NotUsedOnContextError(t *testing.T) {
	primary := NewMockProvider(MockResponse{Err: fmt.Errorf("call: %w", context.Canceled)})
	fallback := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithModelFallback(primary, fallback)

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation to pass through, got %v", err)
	}
	if fallback.CallCount() != 0 {
		t.Errorf("fallback must not run after cancellation, got %d calls", fallback.CallCount())
	}
}

func TestFallback_NilFallbackReturnsPrimary(t *testing.T) {
	primary := NewMockProvider()
	if p := WithModelFallback(primary, nil); p != Provider(primary) {
		t.Error("nil fallback should return the primary unchanged")
	}
}
