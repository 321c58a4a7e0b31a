package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider is a deterministic Provider for testing.
// It returns canned responses in FIFO order and records all requests.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate returns the next canned response or ErrProviderUnavailable if
// the queue is empty. Canned content is validated against req.Schema the
// same way real providers validate theirs.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	if err := validateResponse(req.Schema, resp.Content); err != nil {
		return nil, err
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockMediaResponse is a canned response for MockMedia.
type MockMediaResponse struct {
	Parts []Part
	Err   error
}

// MockMedia is a deterministic MediaProvider for testing. Image and speech
// calls draw from separate FIFO queues.
type MockMedia struct {
	mu          sync.Mutex
	images      []MockMediaResponse
	speech      []MockMediaResponse
	ImageCalls  []ImageRequest
	SpeechCalls []SpeechRequest
}

// NewMockMedia creates an empty MockMedia.
func NewMockMedia() *MockMedia {
	return &MockMedia{}
}

// AddImage queues a canned image response.
func (m *MockMedia) AddImage(resp MockMediaResponse) *MockMedia {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.images = append(m.images, resp)
	return m
}

// AddSpeech queues a canned speech response.
func (m *MockMedia) AddSpeech(resp MockMediaResponse) *MockMedia {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.speech = append(m.speech, resp)
	return m
}

func (m *MockMedia) GenerateImage(_ context.Context, req ImageRequest) (*MediaResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ImageCalls = append(m.ImageCalls, req)
	return popMedia(&m.images, "mock-image")
}

func (m *MockMedia) GenerateSpeech(_ context.Context, req SpeechRequest) (*MediaResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SpeechCalls = append(m.SpeechCalls, req)
	return popMedia(&m.speech, "mock-speech")
}

func (m *MockMedia) ImageModelID() string  { return "mock-image" }
func (m *MockMedia) SpeechModelID() string { return "mock-speech" }

func popMedia(queue *[]MockMediaResponse, model string) (*MediaResponse, error) {
	if len(*queue) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}
	next := (*queue)[0]
	*queue = (*queue)[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return &MediaResponse{Parts: next.Parts, Model: model}, nil
}
