package classifier

import (
	"context"

	"braindump/pkg/openai"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock OpenAI client for testing
type mockOpenAIClient struct {
	reply   string
	err     error
	lastReq openai.ChatRequest
}

func (m *mockOpenAIClient) ChatCompletion(ctx context.Context, req openai.ChatRequest) (*openai.ChatResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &openai.ChatResponse{
		Choices: []openai.Choice{
			{Message: openai.Message{Role: "assistant", Content: m.reply}},
		},
	}, nil
}

func (m *mockOpenAIClient) Model() string {
	return "gpt-test"
}

// emptyChoicesClient returns a well-formed response with no candidates.
type emptyChoicesClient struct{}

func (m *emptyChoicesClient) ChatCompletion(ctx context.Context, req openai.ChatRequest) (*openai.ChatResponse, error) {
	return &openai.ChatResponse{}, nil
}

func (m *emptyChoicesClient) Model() string {
	return "gpt-test"
}
