package llm

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the Prometheus instruments for remote model calls.
type Metrics struct {
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
}

// NewMetrics creates the instruments and registers them on reg.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "model_requests_total",
			Help:      "Remote model calls by kind, model and outcome.",
		}, []string{"kind", "model", "outcome"}),
		Latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "model_request_duration_seconds",
			Help:      "Remote model call latency by kind.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}, []string{"kind"}),
	}
	reg.MustRegister(m.Requests, m.Latency)
	return m
}

func (m *Metrics) observe(kind, model string, start time.Time, err error) {
	m.Requests.WithLabelValues(kind, model, outcome(err)).Inc()
	m.Latency.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

// outcome buckets an error into a low-cardinality label.
func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var (
		rl    *ErrRateLimit
		inv   *ErrInvalidResponse
		unav  *ErrProviderUnavailable
		maxTo *ErrMaxTokensExceeded
	)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.As(err, &rl):
		return "rate_limited"
	case errors.As(err, &inv):
		return "invalid_response"
	case errors.As(err, &maxTo):
		return "max_tokens"
	case errors.As(err, &unav):
		return "unavailable"
	default:
		return "error"
	}
}

type metricsProvider struct {
	inner   Provider
	metrics *Metrics
}

// WithMetrics wraps a Provider so every call is counted and timed.
func WithMetrics(p Provider, m *Metrics) Provider {
	return &metricsProvider{inner: p, metrics: m}
}

func (p *metricsProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := p.inner.Generate(ctx, req)
	p.metrics.observe(KindGenerate, p.inner.ModelID(), start, err)
	return resp, err
}

func (p *metricsProvider) ModelID() string { return p.inner.ModelID() }

type metricsMedia struct {
	inner   MediaProvider
	metrics *Metrics
}

// WithMediaMetrics wraps a MediaProvider so every call is counted and timed.
func WithMediaMetrics(mp MediaProvider, m *Metrics) MediaProvider {
	return &metricsMedia{inner: mp, metrics: m}
}

func (p *metricsMedia) GenerateImage(ctx context.Context, req ImageRequest) (*MediaResponse, error) {
	start := time.Now()
	resp, err := p.inner.GenerateImage(ctx, req)
	p.metrics.observe(KindImage, p.inner.ImageModelID(), start, err)
	return resp, err
}

func (p *metricsMedia) GenerateSpeech(ctx context.Context, req SpeechRequest) (*MediaResponse, error) {
	start := time.Now()
	resp, err := p.inner.GenerateSpeech(ctx, req)
	p.metrics.observe(KindSpeech, p.inner.SpeechModelID(), start, err)
	return resp, err
}

func (p *metricsMedia) ImageModelID() string  { return p.inner.ImageModelID() }
func (p *metricsMedia) SpeechModelID() string { return p.inner.SpeechModelID() }
