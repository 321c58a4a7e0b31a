package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider is a decorator that retries transient errors with
// exponential backoff and jitter.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic. With MaxAttempts <= 1 the
// provider is returned unwrapped.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.MaxAttempts <= 1 {
		return p
	}
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	return retry(ctx, r.config, func() (*Response, error) {
		return r.inner.Generate(ctx, req)
	})
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// RetryMedia is the MediaProvider counterpart of RetryProvider.
type RetryMedia struct {
	inner  MediaProvider
	config RetryConfig
}

// WithMediaRetry wraps a MediaProvider with retry logic. With
// MaxAttempts <= 1 the provider is returned unwrapped.
func WithMediaRetry(m MediaProvider, cfg RetryConfig) MediaProvider {
	if cfg.MaxAttempts <= 1 {
		return m
	}
	return &RetryMedia{inner: m, config: cfg}
}

func (r *RetryMedia) GenerateImage(ctx context.Context, req ImageRequest) (*MediaResponse, error) {
	return retry(ctx, r.config, func() (*MediaResponse, error) {
		return r.inner.GenerateImage(ctx, req)
	})
}

func (r *RetryMedia) GenerateSpeech(ctx context.Context, req SpeechRequest) (*MediaResponse, error) {
	return retry(ctx, r.config, func() (*MediaResponse, error) {
		return r.inner.GenerateSpeech(ctx, req)
	})
}

func (r *RetryMedia) ImageModelID() string  { return r.inner.ImageModelID() }
func (r *RetryMedia) SpeechModelID() string { return r.inner.SpeechModelID() }

func retry[T any](ctx context.Context, cfg RetryConfig, call func() (T, error)) (T, error) {
	var zero T
	var lastErr error
	invalidRetried := false
	attempts := max(cfg.MaxAttempts, 1)

	for attempt := range attempts {
		resp, err := call()
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !shouldRetry(err, &invalidRetried) {
			return zero, err
		}

		// Last attempt: don't sleep, just return the error.
		if attempt == attempts-1 {
			break
		}

		wait := backoff(cfg, attempt, err)
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(wait):
		}
	}

	return zero, lastErr
}

// shouldRetry determines if an error is retryable.
func shouldRetry(err error, invalidRetried *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Max tokens is a configuration issue, not transient.
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return false
	}

	var unsupported *ErrUnsupported
	if errors.As(err, &unsupported) {
		return false
	}

	// Invalid response gets one retry.
	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		if *invalidRetried {
			return false
		}
		*invalidRetried = true
		return true
	}

	// Rate limits, outages and network errors are transient.
	return true
}

// backoff computes the wait duration for the given attempt.
func backoff(cfg RetryConfig, attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(cfg.InitialWait) * math.Pow(cfg.Multiplier, float64(attempt))
	if wait > float64(cfg.MaxWait) {
		wait = float64(cfg.MaxWait)
	}

	// ±20% jitter.
	wait += wait * 0.2 * (2*rand.Float64() - 1)

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
