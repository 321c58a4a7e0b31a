package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathcoach/internal/store"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func problemCmd(t *testing.T, image string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	addProblemFlags(c)
	if image != "" {
		require.NoError(t, c.Flags().Set("image", image))
	}
	return c
}

func TestProblemFromArgs_Text(t *testing.T) {
	p, err := problemFromArgs(problemCmd(t, ""), []string{"12", "+", "7"})
	require.NoError(t, err)
	assert.False(t, p.IsImage())
	assert.Equal(t, "12 + 7", p.Text)
}

func TestProblemFromArgs_Image(t *testing.T) {
	path := filepath.Join(t.TempDir(), "homework")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o644))

	p, err := problemFromArgs(problemCmd(t, path), nil)
	require.NoError(t, err)
	require.True(t, p.IsImage())
	assert.Equal(t, "image/png", p.Image.MIMEType)
	assert.Equal(t, pngHeader, p.Image.Data)
}

func TestProblemFromArgs_Errors(t *testing.T) {
	notImage := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(notImage, []byte("twelve plus seven"), 0o644))

	_, err := problemFromArgs(problemCmd(t, ""), nil)
	assert.ErrorContains(t, err, "no problem given")

	_, err = problemFromArgs(problemCmd(t, notImage), []string{"12 + 7"})
	assert.ErrorContains(t, err, "not both")

	_, err = problemFromArgs(problemCmd(t, notImage), nil)
	assert.ErrorContains(t, err, "is not an image")

	_, err = problemFromArgs(problemCmd(t, filepath.Join(t.TempDir(), "missing.png")), nil)
	assert.ErrorContains(t, err, "read image")
}

func TestWriteEventList(t *testing.T) {
	var buf bytes.Buffer
	writeEventList(&buf, nil)
	assert.Contains(t, buf.String(), "No model requests found.")

	buf.Reset()
	writeEventList(&buf, []store.LLMRequestEvent{
		{
			ID:        7,
			Timestamp: time.Now(),
			LLMRequestEventData: store.LLMRequestEventData{
				Model: "gemini-2.5-flash-preview-tts", Purpose: "narrate", Kind: "speech",
				LatencyMs: 1200, Success: false,
			},
		},
	})
	out := buf.String()
	assert.Contains(t, out, "narrate")
	assert.Contains(t, out, "speech")
	assert.Contains(t, out, "gemini-2.5-flash-preview-tts")
	assert.Contains(t, out, "✗")
}

func TestWriteEventDetail(t *testing.T) {
	var buf bytes.Buffer
	writeEventDetail(&buf, &store.LLMRequestEvent{
		ID:        3,
		Timestamp: time.Now(),
		LLMRequestEventData: store.LLMRequestEventData{
			RequestID: "req-1", Provider: "gemini-3-flash-preview", Model: "gemini-3-flash-preview",
			Purpose: "solve", Kind: "generate", Success: true,
			RequestBody: "[user]\n12 + 7",
		},
	})
	out := buf.String()
	assert.Contains(t, out, "req-1")
	assert.Contains(t, out, "12 + 7")
	assert.Contains(t, out, "REQUEST")
	assert.Contains(t, out, "(not captured)")
	assert.NotContains(t, out, "Error:")
}

func TestWriteUsage(t *testing.T) {
	var buf bytes.Buffer
	writeUsage(&buf, nil, nil)
	assert.Contains(t, buf.String(), "No model usage recorded yet.")

	buf.Reset()
	writeUsage(&buf,
		[]store.PurposeUsage{{Purpose: "solve", Calls: 2, InputTokens: 1000, OutputTokens: 500, AvgLatencyMs: 800}},
		[]store.ModelUsage{
			{Model: "gemini-2.5-flash", Calls: 1, InputTokens: 1_000_000},
			{Model: "homegrown-model", Calls: 1},
		},
	)
	out := buf.String()
	assert.Contains(t, out, "Usage by Purpose")
	assert.Contains(t, out, "$0.30")
	assert.Contains(t, out, "TOTAL (partial)")
	assert.Contains(t, out, "homegrown-model")
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.0042", formatCost(0.0042))
	assert.Equal(t, "$1.50", formatCost(1.5))
}
