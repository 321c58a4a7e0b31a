package llm

import "context"

// MediaProvider generates non-text modalities: illustrations and speech.
// Only the Gemini backend implements it.
type MediaProvider interface {
	// GenerateImage asks the image model for a picture described by the
	// request prompt.
	GenerateImage(ctx context.Context, req ImageRequest) (*MediaResponse, error)

	// GenerateSpeech asks the speech model to read the request text aloud.
	GenerateSpeech(ctx context.Context, req SpeechRequest) (*MediaResponse, error)

	ImageModelID() string
	SpeechModelID() string
}

// ImageRequest describes an image generation call.
type ImageRequest struct {
	Prompt string

	// AspectRatio such as "1:1". Empty leaves the model default.
	AspectRatio string
}

// SpeechRequest describes an audio generation call.
type SpeechRequest struct {
	Text string

	// Voice is a prebuilt voice name, e.g. "Kore".
	Voice string
}

// MediaResponse holds the content parts of the first response candidate.
// Extraction policy (which part counts) belongs to the caller.
type MediaResponse struct {
	Parts []Part
	Model string
	Usage Usage
}

// Part is one unit of a multimodal response.
type Part struct {
	Text string

	// Inline is set when the part carries inline binary data.
	Inline *Blob
}

// Blob is inline binary data with its MIME type.
type Blob struct {
	MIMEType string
	Data     []byte
}

// FirstInline returns the first part carrying inline data, or nil.
func (r *MediaResponse) FirstInline() *Blob {
	if r == nil {
		return nil
	}
	for _, p := range r.Parts {
		if p.Inline != nil {
			return p.Inline
		}
	}
	return nil
}
