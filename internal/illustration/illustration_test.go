package illustration

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathcoach/internal/llm"
)

func TestIllustrate_ReturnsPNGDataURI(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	media := llm.NewMockMedia().AddImage(llm.MockMediaResponse{Parts: []llm.Part{
		{Text: "Here is a drawing of apples."},
		{Inline: &llm.Blob{MIMEType: "image/png", Data: png}},
		{Inline: &llm.Blob{MIMEType: "image/png", Data: []byte("second")}},
	}})
	ill := New(media, nil)

	uri, err := ill.Illustrate(context.Background(), "twelve apples and seven apples")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,iVBORw0K", uri)

	mime, data, err := ParseDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, png, data)

	require.Len(t, media.ImageCalls, 1)
	req := media.ImageCalls[0]
	assert.Equal(t, "1:1", req.AspectRatio)
	assert.True(t, strings.HasPrefix(req.Prompt, "Create a simple, educational math drawing for kids: twelve apples and seven apples."))
	assert.Contains(t, req.Prompt, "ENGLISH ONLY")
	assert.Contains(t, req.Prompt, "NO ARABIC")
	assert.Contains(t, req.Prompt, "white background")
}

func TestIllustrate_NoInlinePart(t *testing.T) {
	media := llm.NewMockMedia().
		AddImage(llm.MockMediaResponse{Parts: []llm.Part{{Text: "I cannot draw that."}}}).
		AddImage(llm.MockMediaResponse{}).
		AddImage(llm.MockMediaResponse{Parts: []llm.Part{{Inline: &llm.Blob{MIMEType: "image/png"}}}})
	ill := New(media, nil)

	for range 3 {
		uri, err := ill.Illustrate(context.Background(), "a cat")
		assert.ErrorIs(t, err, ErrNoImage)
		assert.Empty(t, uri)
	}
	assert.Equal(t, "failed to generate image", ErrNoImage.Error())
}

func TestIllustrate_TransportErrorPropagates(t *testing.T) {
	rl := &llm.ErrRateLimit{Err: errors.New("quota")}
	media := llm.NewMockMedia().AddImage(llm.MockMediaResponse{Err: rl})
	ill := New(media, nil)

	_, err := ill.Illustrate(context.Background(), "a cat")
	assert.Same(t, rl, err)
}

func TestParseDataURI_Errors(t *testing.T) {
	for _, uri := range []string{
		"image/png;base64,AAAA",
		"data:image/png;base64",
		"data:image/png,AAAA",
		"data:image/png;base64,***",
	} {
		_, _, err := ParseDataURI(uri)
		assert.Error(t, err, uri)
	}
}
