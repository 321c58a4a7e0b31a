package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/mathcoach/internal/store"
)

// Call kinds recorded with each request event.
const (
	KindGenerate = "generate"
	KindImage    = "image"
	KindSpeech   = "speech"
)

// requestLogger writes one zap entry and, when a repo is configured, one
// persisted event per remote call.
type requestLogger struct {
	logger    *zap.Logger
	eventRepo store.EventRepo
}

func newRequestLogger(repo store.EventRepo, logger *zap.Logger) requestLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return requestLogger{logger: logger, eventRepo: repo}
}

func (l requestLogger) record(ctx context.Context, data store.LLMRequestEventData, err error) {
	fields := []zap.Field{
		zap.String("request_id", data.RequestID),
		zap.String("purpose", data.Purpose),
		zap.String("kind", data.Kind),
		zap.String("model", data.Model),
		zap.Int64("latency_ms", data.LatencyMs),
		zap.Int("input_tokens", data.InputTokens),
		zap.Int("output_tokens", data.OutputTokens),
	}
	if err != nil {
		l.logger.Warn("model request failed", append(fields, zap.Error(err))...)
	} else {
		l.logger.Debug("model request", fields...)
	}

	if l.eventRepo == nil {
		return
	}
	// A logging failure never fails the request.
	if logErr := l.eventRepo.AppendLLMRequest(ctx, data); logErr != nil {
		l.logger.Warn("failed to persist model request event", zap.Error(logErr))
	}
}

func newEventData(ctx context.Context, provider, model, kind, body string) store.LLMRequestEventData {
	return store.LLMRequestEventData{
		RequestID:   uuid.NewString(),
		Provider:    provider,
		Model:       model,
		Purpose:     PurposeFrom(ctx),
		Kind:        kind,
		RequestBody: body,
	}
}

func finishEventData(data *store.LLMRequestEventData, start time.Time, usage Usage, err error) {
	data.LatencyMs = time.Since(start).Milliseconds()
	data.Success = err == nil
	data.InputTokens = usage.InputTokens
	data.OutputTokens = usage.OutputTokens
	if err != nil {
		data.ErrorMessage = err.Error()
	}
}

// LoggingProvider is a decorator that records every structured request.
type LoggingProvider struct {
	inner Provider
	log   requestLogger
}

// WithLogging wraps a Provider with request logging. repo may be nil.
func WithLogging(p Provider, repo store.EventRepo, logger *zap.Logger) Provider {
	return &LoggingProvider{inner: p, log: newRequestLogger(repo, logger)}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	data := newEventData(ctx, l.inner.ModelID(), l.inner.ModelID(), KindGenerate, serializeRequest(req))

	resp, err := l.inner.Generate(ctx, req)

	var usage Usage
	if resp != nil {
		usage = resp.Usage
		data.Model = resp.Model
		data.ResponseBody = string(resp.Content)
	}
	finishEventData(&data, start, usage, err)
	l.log.record(ctx, data, err)

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// LoggingMedia is the MediaProvider counterpart of LoggingProvider.
type LoggingMedia struct {
	inner MediaProvider
	log   requestLogger
}

// WithMediaLogging wraps a MediaProvider with request logging. repo may be nil.
func WithMediaLogging(m MediaProvider, repo store.EventRepo, logger *zap.Logger) MediaProvider {
	return &LoggingMedia{inner: m, log: newRequestLogger(repo, logger)}
}

func (l *LoggingMedia) GenerateImage(ctx context.Context, req ImageRequest) (*MediaResponse, error) {
	start := time.Now()
	body := fmt.Sprintf("[image aspect=%s]\n%s", req.AspectRatio, req.Prompt)
	data := newEventData(ctx, l.inner.ImageModelID(), l.inner.ImageModelID(), KindImage, body)

	resp, err := l.inner.GenerateImage(ctx, req)
	l.finish(ctx, &data, start, resp, err)
	return resp, err
}

func (l *LoggingMedia) GenerateSpeech(ctx context.Context, req SpeechRequest) (*MediaResponse, error) {
	start := time.Now()
	body := fmt.Sprintf("[speech voice=%s]\n%s", req.Voice, req.Text)
	data := newEventData(ctx, l.inner.SpeechModelID(), l.inner.SpeechModelID(), KindSpeech, body)

	resp, err := l.inner.GenerateSpeech(ctx, req)
	l.finish(ctx, &data, start, resp, err)
	return resp, err
}

func (l *LoggingMedia) ImageModelID() string  { return l.inner.ImageModelID() }
func (l *LoggingMedia) SpeechModelID() string { return l.inner.SpeechModelID() }

func (l *LoggingMedia) finish(ctx context.Context, data *store.LLMRequestEventData, start time.Time, resp *MediaResponse, err error) {
	var usage Usage
	if resp != nil {
		usage = resp.Usage
		data.Model = resp.Model
		data.ResponseBody = summarizeParts(resp.Parts)
	}
	finishEventData(data, start, usage, err)
	l.log.record(ctx, *data, err)
}

// summarizeParts avoids persisting megabytes of image/audio bytes.
func summarizeParts(parts []Part) string {
	var b strings.Builder
	for i, p := range parts {
		if p.Inline != nil {
			fmt.Fprintf(&b, "[part %d: %s, %d bytes]\n", i, p.Inline.MIMEType, len(p.Inline.Data))
			continue
		}
		fmt.Fprintf(&b, "[part %d: text]\n%s\n", i, p.Text)
	}
	return b.String()
}

// serializeRequest builds a readable representation of a structured request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n", m.Role)
		for _, a := range m.Attachments {
			fmt.Fprintf(&b, "<attachment %s, %d bytes>\n", a.MIMEType, len(a.Data))
		}
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n", req.Schema.Name)
			b.Write(schemaDef)
			b.WriteString("\n")
		}
	}

	return b.String()
}
