package solution

import "github.com/abhisek/mathcoach/internal/llm"

func object(props map[string]any, required ...string) map[string]any {
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

func str(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

// nonEmptyStr matches any string with at least one non-space character.
func nonEmptyStr(description string) map[string]any {
	return map[string]any{"type": "string", "pattern": "\\S", "description": description}
}

// Schema is the structured answer contract. It is sent with every solve
// request and checked again against the reply.
var Schema = &llm.Schema{
	Name:        "math-solution",
	Description: "A step-by-step primary school math solution with whiteboard, drawing and narration scripts",
	Definition: object(map[string]any{
		"understanding": object(map[string]any{
			"rephrased": nonEmptyStr("The problem restated simply"),
			"given": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "The known quantities",
			},
			"required": nonEmptyStr("What has to be found"),
		}, "rephrased", "given", "required"),
		"textSteps": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"minItems":    1,
			"description": "Solution steps in order",
		},
		"audioScript": str("Narration for the text steps"),
		"whiteboardSteps": map[string]any{
			"type": "array",
			"items": object(map[string]any{
				"text": str("What is written on the board"),
				"color": map[string]any{
					"type": "string",
					"enum": []any{string(ColorWhite), string(ColorYellow), string(ColorGreen)},
				},
			}, "text", "color"),
			"description": "Board lines in drawing order",
		},
		"whiteboardAudioScript": str("Narration while writing on the board"),
		"drawingPrompt":         str("English description of one illustrative drawing"),
		"drawingAudioScript":    str("Narration explaining the drawing"),
		"finalResult": object(map[string]any{
			"answer":        nonEmptyStr("The final answer"),
			"encouragement": nonEmptyStr("A short encouraging phrase"),
		}, "answer", "encouragement"),
	},
		"understanding", "textSteps", "audioScript", "whiteboardSteps",
		"whiteboardAudioScript", "drawingPrompt", "drawingAudioScript", "finalResult",
	),
}
