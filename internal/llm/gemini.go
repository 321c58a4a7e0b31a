package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// geminiModels maps friendly names to Gemini model IDs.
var geminiModels = map[string]string{
	"gemini-3-flash":   "gemini-3-flash-preview",
	"gemini-flash":     "gemini-2.5-flash",
	"gemini-pro":       "gemini-2.5-pro",
	"gemini-image":     "gemini-2.5-flash-image",
	"gemini-tts":       "gemini-2.5-flash-preview-tts",
	"gemini-flash-tts": "gemini-2.5-flash-preview-tts",
}

// GeminiProvider implements Provider and MediaProvider using the Google
// Gemini SDK.
type GeminiProvider struct {
	client      *genai.Client
	model       string
	imageModel  string
	speechModel string
}

// NewGeminiProvider creates a new Gemini provider.
func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client:      client,
		model:       resolveModel(cfg.Model, geminiModels),
		imageModel:  resolveModel(cfg.ImageModel, geminiModels),
		speechModel: resolveModel(cfg.SpeechModel, geminiModels),
	}, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	config := &genai.GenerateContentConfig{}

	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.Temperature > 0 {
		temp := float32(req.Temperature)
		config.Temperature = &temp
	}

	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}

	// Configure structured output.
	if req.Schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = buildGeminiSchema(req.Schema.Definition)
	}

	contents := buildGeminiContents(req.Messages)

	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	stop := mapGeminiStopReason(result)
	content := json.RawMessage(result.Text())

	if stop == "max_tokens" {
		return nil, &ErrMaxTokensExceeded{Content: content}
	}

	if req.Schema != nil {
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
	}

	return &Response{
		Content:    content,
		Model:      p.model,
		StopReason: stop,
		Usage:      mapGeminiUsage(result),
	}, nil
}

func (p *GeminiProvider) ModelID() string {
	return p.model
}

func (p *GeminiProvider) GenerateImage(ctx context.Context, req ImageRequest) (*MediaResponse, error) {
	config := &genai.GenerateContentConfig{}
	if req.AspectRatio != "" {
		config.ImageConfig = &genai.ImageConfig{AspectRatio: req.AspectRatio}
	}

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: req.Prompt}},
	}}

	result, err := p.client.Models.GenerateContent(ctx, p.imageModel, contents, config)
	if err != nil {
		return nil, mapGeminiError(err)
	}
	return buildMediaResponse(result, p.imageModel), nil
}

func (p *GeminiProvider) GenerateSpeech(ctx context.Context, req SpeechRequest) (*MediaResponse, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityAudio)},
	}
	if req.Voice != "" {
		config.SpeechConfig = &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: req.Voice},
			},
		}
	}

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: req.Text}},
	}}

	result, err := p.client.Models.GenerateContent(ctx, p.speechModel, contents, config)
	if err != nil {
		return nil, mapGeminiError(err)
	}
	return buildMediaResponse(result, p.speechModel), nil
}

func (p *GeminiProvider) ImageModelID() string {
	return p.imageModel
}

func (p *GeminiProvider) SpeechModelID() string {
	return p.speechModel
}

func buildGeminiContents(msgs []Message) []*genai.Content {
	out := make([]*genai.Content, len(msgs))
	for i, m := range msgs {
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}
		parts := make([]*genai.Part, 0, len(m.Attachments)+1)
		for _, a := range m.Attachments {
			parts = append(parts, &genai.Part{
				InlineData: &genai.Blob{MIMEType: a.MIMEType, Data: a.Data},
			})
		}
		if m.Content != "" {
			parts = append(parts, &genai.Part{Text: m.Content})
		}
		out[i] = &genai.Content{Role: role, Parts: parts}
	}
	return out
}

// buildMediaResponse keeps the parts of the first candidate only.
func buildMediaResponse(result *genai.GenerateContentResponse, model string) *MediaResponse {
	resp := &MediaResponse{Model: model, Usage: mapGeminiUsage(result)}
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return resp
	}
	for _, part := range result.Candidates[0].Content.Parts {
		if part == nil {
			continue
		}
		p := Part{Text: part.Text}
		if part.InlineData != nil {
			p.Inline = &Blob{MIMEType: part.InlineData.MIMEType, Data: part.InlineData.Data}
		}
		resp.Parts = append(resp.Parts, p)
	}
	return resp
}

// buildGeminiSchema converts a JSON Schema definition map to a genai.Schema.
// Keywords Gemini has no field for (additionalProperties, minLength, ...)
// are dropped here and enforced by local validation instead.
func buildGeminiSchema(def map[string]any) *genai.Schema {
	schema := &genai.Schema{}

	if t, ok := def["type"].(string); ok {
		schema.Type = mapGeminiType(t)
	}
	if desc, ok := def["description"].(string); ok {
		schema.Description = desc
	}

	if props, ok := def["properties"].(map[string]any); ok {
		schema.Properties = make(map[string]*genai.Schema)
		for k, v := range props {
			if propDef, ok := v.(map[string]any); ok {
				schema.Properties[k] = buildGeminiSchema(propDef)
			}
		}
	}

	schema.Required = stringList(def["required"])
	schema.Enum = stringList(def["enum"])

	if items, ok := def["items"].(map[string]any); ok {
		schema.Items = buildGeminiSchema(items)
	}

	return schema
}

// stringList accepts both []any (decoded JSON) and []string (Go literals).
func stringList(v any) []string {
	switch vals := v.(type) {
	case []string:
		return append([]string(nil), vals...)
	case []any:
		var out []string
		for _, e := range vals {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func mapGeminiType(t string) genai.Type {
	switch t {
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}

func mapGeminiUsage(result *genai.GenerateContentResponse) Usage {
	if result.UsageMetadata == nil {
		return Usage{}
	}
	return Usage{
		InputTokens:  int(result.UsageMetadata.PromptTokenCount),
		OutputTokens: int(result.UsageMetadata.CandidatesTokenCount),
		TotalTokens:  int(result.UsageMetadata.TotalTokenCount),
	}
}

func mapGeminiStopReason(result *genai.GenerateContentResponse) string {
	if len(result.Candidates) > 0 {
		switch result.Candidates[0].FinishReason {
		case genai.FinishReasonStop:
			return "end"
		case genai.FinishReasonMaxTokens:
			return "max_tokens"
		}
	}
	return "end"
}

func mapGeminiError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if geminiStatus(err) == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}

// geminiStatus returns the HTTP status carried by a genai API error, or 0.
// The SDK returns APIError by value.
func geminiStatus(err error) int {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return apiErrPtr.Code
	}
	return 0
}
