// Package illustration draws a child-friendly picture for a solution.
package illustration

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/mathcoach/internal/llm"
)

// ErrNoImage is returned when the model replied without any inline image.
var ErrNoImage = errors.New("failed to generate image")

// AspectRatio of every illustration.
const AspectRatio = "1:1"

const styleRules = `Create a simple, educational math drawing for kids: %s.
RULES:
1. ALL TEXT, NUMBERS, AND LABELS MUST BE IN ENGLISH ONLY.
2. STRICTLY NO ARABIC TEXT OR CHARACTERS.
3. Use a clean white background, vibrant colors, and 2D flat child-friendly style.`

// Prompt returns the full image prompt for a drawing description.
func Prompt(description string) string {
	return fmt.Sprintf(styleRules, description)
}

// Illustrator requests illustrations from the image model.
type Illustrator struct {
	media  llm.MediaProvider
	logger *zap.Logger
}

// New creates an Illustrator. logger may be nil.
func New(media llm.MediaProvider, logger *zap.Logger) *Illustrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Illustrator{media: media, logger: logger}
}

// Illustrate draws description and returns it as a PNG data URI. The
// first response part carrying inline data is used; text parts are
// ignored.
func (i *Illustrator) Illustrate(ctx context.Context, description string) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeIllustrate)

	resp, err := i.media.GenerateImage(ctx, llm.ImageRequest{
		Prompt:      Prompt(description),
		AspectRatio: AspectRatio,
	})
	if err != nil {
		return "", err
	}

	blob := resp.FirstInline()
	if blob == nil || len(blob.Data) == 0 {
		i.logger.Warn("image model returned no inline image",
			zap.Int("parts", len(resp.Parts)),
			zap.String("model", resp.Model),
		)
		return "", ErrNoImage
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(blob.Data), nil
}

// ParseDataURI splits a base64 data URI into its MIME type and bytes.
func ParseDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("data URI has no payload")
	}
	mimeType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, fmt.Errorf("data URI is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode data URI: %w", err)
	}
	return mimeType, data, nil
}
