package llm

import "context"

// Purposes recorded with each request event.
const (
	PurposeSolve      = "solve"
	PurposeIllustrate = "illustrate"
	PurposeNarrate    = "narrate"
)

type purposeKey struct{}

// WithPurpose labels every model call made with ctx. An empty purpose
// leaves ctx unchanged.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	if purpose == "" {
		return ctx
	}
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok {
		return v
	}
	return "unknown"
}
