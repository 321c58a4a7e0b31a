package solution

import (
	"errors"
	"strings"

	"github.com/abhisek/mathcoach/internal/llm"
	"github.com/abhisek/mathcoach/internal/locale"
)

// ErrEmptyProblem is returned by Solve for a problem with neither text
// nor image bytes.
var ErrEmptyProblem = errors.New("empty problem")

// Image is a problem photographed or scanned by the caller.
type Image struct {
	MIMEType string
	Data     []byte
}

// Problem is either a text statement or an image, never both.
type Problem struct {
	Text  string
	Image *Image
}

// NewTextProblem returns a problem stated as text.
func NewTextProblem(text string) Problem {
	return Problem{Text: text}
}

// NewImageProblem returns a problem given as an image.
func NewImageProblem(mimeType string, data []byte) Problem {
	return Problem{Image: &Image{MIMEType: mimeType, Data: data}}
}

// IsImage reports whether the problem carries an image.
func (p Problem) IsImage() bool {
	return p.Image != nil
}

func (p Problem) validate() error {
	if p.IsImage() {
		if len(p.Image.Data) == 0 {
			return ErrEmptyProblem
		}
		return nil
	}
	if strings.TrimSpace(p.Text) == "" {
		return ErrEmptyProblem
	}
	return nil
}

// message builds the user turn: image bytes followed by the fixed image
// instruction, or the text wrapped for lang.
func (p Problem) message(lang locale.Language) llm.Message {
	if p.IsImage() {
		return llm.Message{
			Role:        llm.RoleUser,
			Content:     lang.Strings().ImageInstruction,
			Attachments: []llm.Attachment{{MIMEType: p.Image.MIMEType, Data: p.Image.Data}},
		}
	}
	return llm.Message{
		Role:    llm.RoleUser,
		Content: lang.TextProblemPrompt(p.Text),
	}
}
