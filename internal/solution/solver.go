package solution

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/mathcoach/internal/llm"
	"github.com/abhisek/mathcoach/internal/locale"
)

// Config controls the solve request.
type Config struct {
	// MaxTokens is the response budget. Zero leaves the provider default.
	MaxTokens int

	// Temperature controls output randomness. Zero leaves the provider
	// default.
	Temperature float64
}

// Solver turns a Problem into a Solution with one structured model call.
// It holds no mutable state and is safe for concurrent use.
type Solver struct {
	provider llm.Provider
	config   Config
	logger   *zap.Logger
}

// New creates a Solver. logger may be nil.
func New(provider llm.Provider, cfg Config, logger *zap.Logger) *Solver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Solver{provider: provider, config: cfg, logger: logger}
}

// Solve asks the model to solve p, explaining in lang.
//
// Transport failures (rate limits, outages, cancellation) are returned
// unchanged. A reply that is empty, not JSON or off-schema is logged and
// returned as *Error, whose message is the apology for lang.
func (s *Solver) Solve(ctx context.Context, p Problem, lang locale.Language) (*Solution, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if !lang.Valid() {
		lang = locale.Default
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeSolve)

	req := llm.Request{
		System:      lang.Strings().SolveSystemPrompt,
		Messages:    []llm.Message{p.message(lang)},
		Schema:      Schema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		if isPayloadError(err) {
			return nil, s.fail(lang, p, err)
		}
		return nil, err
	}

	// Providers validate too; a custom Provider may not.
	if err := llm.ValidateJSON(Schema, resp.Content); err != nil {
		return nil, s.fail(lang, p, err)
	}

	var sol Solution
	if err := json.Unmarshal(resp.Content, &sol); err != nil {
		return nil, s.fail(lang, p, fmt.Errorf("decode solution: %w", err))
	}
	return &sol, nil
}

// isPayloadError reports whether err describes the reply rather than the
// call: a truncated or off-schema answer.
func isPayloadError(err error) bool {
	var inv *llm.ErrInvalidResponse
	var maxTok *llm.ErrMaxTokensExceeded
	return errors.As(err, &inv) || errors.As(err, &maxTok)
}

func (s *Solver) fail(lang locale.Language, p Problem, cause error) error {
	s.logger.Error("failed to parse solution",
		zap.String("language", string(lang)),
		zap.Bool("image", p.IsImage()),
		zap.Error(cause),
	)
	return &Error{Language: lang, Err: cause}
}
