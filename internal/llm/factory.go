package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/mathcoach/internal/store"
)

// Options carries the observability sinks shared by every provider.
// All fields are optional.
type Options struct {
	EventRepo store.EventRepo
	Logger    *zap.Logger
	Metrics   *Metrics
}

// NewProvider creates the structured-generation Provider selected by
// cfg.Provider, wrapped with middleware:
// caller → retry → metrics → logging → base.
func NewProvider(ctx context.Context, cfg Config, opts Options) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown model provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	p := WithLogging(base, opts.EventRepo, opts.Logger)
	if opts.Metrics != nil {
		p = WithMetrics(p, opts.Metrics)
	}
	return WithRetry(p, cfg.Retry), nil
}

// NewMediaProvider creates the Gemini-backed MediaProvider used for
// illustrations and narration, wrapped with the same middleware as
// NewProvider.
func NewMediaProvider(ctx context.Context, cfg Config, opts Options) (MediaProvider, error) {
	base, err := NewGeminiProvider(ctx, cfg.Gemini)
	if err != nil {
		return nil, fmt.Errorf("initializing gemini media provider: %w", err)
	}

	m := WithMediaLogging(base, opts.EventRepo, opts.Logger)
	if opts.Metrics != nil {
		m = WithMediaMetrics(m, opts.Metrics)
	}
	return WithMediaRetry(m, cfg.Retry), nil
}
