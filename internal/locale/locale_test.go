package locale

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"ar", Arabic},
		{"AR", Arabic},
		{" arabic ", Arabic},
		{"en", English},
		{"English", English},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := Parse("fr")
	assert.Error(t, err)
	_, err = Parse("")
	assert.Error(t, err)
}

func TestStrings_EveryLanguageComplete(t *testing.T) {
	for _, l := range Languages() {
		s := l.Strings()
		assert.NotEmpty(t, s.SolveSystemPrompt, l)
		assert.NotEmpty(t, s.ImageInstruction, l)
		assert.NotEmpty(t, s.SolveFailure, l)
		assert.NotEmpty(t, s.Voice, l)
		assert.Equal(t, 1, strings.Count(s.TextProblem, "%s"), l)
		assert.Equal(t, 1, strings.Count(s.Narration, "%s"), l)
		for _, field := range []string{"understanding", "textSteps", "whiteboardSteps", "drawingPrompt", "finalResult"} {
			assert.Contains(t, s.SolveSystemPrompt, field, l)
		}
	}
}

func TestStrings_Voices(t *testing.T) {
	assert.Equal(t, "Kore", Arabic.Strings().Voice)
	assert.Equal(t, "Puck", English.Strings().Voice)
}

func TestStrings_UnknownFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Default.Strings(), Language("fr").Strings())
	assert.False(t, Language("fr").Valid())
	assert.True(t, English.Valid())
}

func TestPrompts(t *testing.T) {
	assert.Equal(t, "Solve this problem: 12 + 7.", English.TextProblemPrompt("12 + 7"))
	assert.Equal(t, "حلِي هذه المسألة: 12 + 7.", Arabic.TextProblemPrompt("12 + 7"))
	assert.Equal(t,
		"As a friendly and cheerful teacher, read the following text for children: Well done!",
		English.NarrationPrompt("Well done!"))
	assert.True(t, strings.HasSuffix(Arabic.NarrationPrompt("أحسنتِ"), "أحسنتِ"))
}
