// Package solution asks the model for a structured, step-by-step solution
// to a primary school math problem.
package solution

// Color is the chalk color of a whiteboard step.
type Color string

const (
	ColorWhite  Color = "white"  // regular writing
	ColorYellow Color = "yellow" // important step
	ColorGreen  Color = "green"  // result
)

// Colors lists every valid whiteboard color.
var Colors = []Color{ColorWhite, ColorYellow, ColorGreen}

// Valid reports whether c is one of Colors.
func (c Color) Valid() bool {
	switch c {
	case ColorWhite, ColorYellow, ColorGreen:
		return true
	}
	return false
}

// Solution is one parsed model answer. It is a value: nothing is stored
// and nothing mutates it after Solve returns.
type Solution struct {
	Understanding         Understanding    `json:"understanding"`
	TextSteps             []string         `json:"textSteps"`
	AudioScript           string           `json:"audioScript"`
	WhiteboardSteps       []WhiteboardStep `json:"whiteboardSteps"`
	WhiteboardAudioScript string           `json:"whiteboardAudioScript"`
	DrawingPrompt         string           `json:"drawingPrompt"`
	DrawingAudioScript    string           `json:"drawingAudioScript"`
	FinalResult           FinalResult      `json:"finalResult"`
}

// Understanding restates the problem.
type Understanding struct {
	Rephrased string   `json:"rephrased"`
	Given     []string `json:"given"`
	Required  string   `json:"required"`
}

// WhiteboardStep is one line drawn on the board, in order.
type WhiteboardStep struct {
	Text  string `json:"text"`
	Color Color  `json:"color"`
}

type FinalResult struct {
	Answer        string `json:"answer"`
	Encouragement string `json:"encouragement"`
}

// Section names a part of the solution that has its own narration.
type Section string

const (
	SectionText       Section = "text"
	SectionWhiteboard Section = "whiteboard"
	SectionDrawing    Section = "drawing"
)

// Narration is the script read aloud for one section.
type Narration struct {
	Section Section
	Script  string
}

// Narrations returns the narration scripts in presentation order. Sections
// with a blank script are skipped.
func (s *Solution) Narrations() []Narration {
	all := []Narration{
		{SectionText, s.AudioScript},
		{SectionWhiteboard, s.WhiteboardAudioScript},
		{SectionDrawing, s.DrawingAudioScript},
	}
	out := all[:0]
	for _, n := range all {
		if n.Script != "" {
			out = append(out, n)
		}
	}
	return out
}
