// Package narration reads solution scripts aloud through the speech model.
package narration

import (
	"context"
	"encoding/base64"
	"errors"

	"go.uber.org/zap"

	"github.com/abhisek/mathcoach/internal/audio"
	"github.com/abhisek/mathcoach/internal/llm"
	"github.com/abhisek/mathcoach/internal/locale"
)

// ErrNoAudio is returned when the first response part carries no audio.
var ErrNoAudio = errors.New("audio generation failed")

// Narrator requests speech in the voice of a language.
type Narrator struct {
	media  llm.MediaProvider
	logger *zap.Logger
}

// New creates a Narrator. logger may be nil.
func New(media llm.MediaProvider, logger *zap.Logger) *Narrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Narrator{media: media, logger: logger}
}

// Narrate speaks text in lang and returns the base64 encoded PCM16LE
// audio (24 kHz mono). Only the first part of the reply is considered.
func (n *Narrator) Narrate(ctx context.Context, text string, lang locale.Language) (string, error) {
	pcm, err := n.speak(ctx, text, lang)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(pcm), nil
}

// NarrateBuffer is Narrate followed by decoding into a sample buffer.
func (n *Narrator) NarrateBuffer(ctx context.Context, text string, lang locale.Language) (*audio.Buffer, error) {
	b64, err := n.Narrate(ctx, text, lang)
	if err != nil {
		return nil, err
	}
	pcm, err := audio.Decode(b64)
	if err != nil {
		return nil, err
	}
	return audio.NewBuffer(pcm, audio.DefaultFormat)
}

// NarratePCM returns the raw PCM16LE bytes, for callers that write files.
func (n *Narrator) NarratePCM(ctx context.Context, text string, lang locale.Language) ([]byte, error) {
	return n.speak(ctx, text, lang)
}

func (n *Narrator) speak(ctx context.Context, text string, lang locale.Language) ([]byte, error) {
	if !lang.Valid() {
		lang = locale.Default
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeNarrate)

	resp, err := n.media.GenerateSpeech(ctx, llm.SpeechRequest{
		Text:  lang.NarrationPrompt(text),
		Voice: lang.Strings().Voice,
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Parts) == 0 || resp.Parts[0].Inline == nil || len(resp.Parts[0].Inline.Data) == 0 {
		n.logger.Warn("speech model returned no audio",
			zap.Int("parts", len(resp.Parts)),
			zap.String("language", string(lang)),
		)
		return nil, ErrNoAudio
	}
	return resp.Parts[0].Inline.Data, nil
}
