package llm

import (
	"context"
	"errors"
)

// FallbackProvider tries a primary provider and, when it fails with a
// transient error, retries the same request against a fallback model.
// Cancellation and deadline expiry pass through: the planner's own
// deterministic fallback owns the timeout path.
type FallbackProvider struct {
	primary  Provider
	fallback Provider
}

// WithModelFallback pairs a primary provider with a fallback model
// provider. A nil fallback returns the primary unchanged.
func WithModelFallback(primary, fallback Provider) Provider {
	if fallback == nil {
		return primary
	}
	return &FallbackProvider{primary: primary, fallback: fallback}
}

func (f *FallbackProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, err := f.primary.Generate(ctx, req)
	if err == nil {
		return resp, nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}
	return f.fallback.Generate(ctx, req)
}

func (f *FallbackProvider) ModelID() string {
	return f.primary.ModelID()
}
