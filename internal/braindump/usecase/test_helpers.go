package usecase

import (
	"context"
	"time"

	"braindump/internal/braindump"
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

// Mock classifier returning a canned result
type mockClassifier struct {
	intent     braindump.Intent
	confidence float64
	entities   map[string]string
}

func (m *mockClassifier) Classify(ctx context.Context, text string, now time.Time) braindump.IntentResult {
	entities := m.entities
	if entities == nil {
		entities = map[string]string{}
	}
	return braindump.IntentResult{
		Intent:       m.intent,
		Confidence:   m.confidence,
		Entities:     entities,
		OriginalText: text,
	}
}

// outageClassifier simulates a provider outage: always the fallback result
type outageClassifier struct{}

func (m *outageClassifier) Classify(ctx context.Context, text string, now time.Time) braindump.IntentResult {
	return braindump.IntentResult{
		Intent:       braindump.IntentUnknown,
		Confidence:   0.0,
		Entities:     map[string]string{},
		OriginalText: text,
	}
}

// Mock dispatcher marking every action executed
type mockDispatcher struct {
	executed []braindump.Action
	failAll  bool
}

func (m *mockDispatcher) Execute(ctx context.Context, actions []braindump.Action, userID string) []braindump.ExecutionResult {
	m.executed = append(m.executed, actions...)
	results := make([]braindump.ExecutionResult, 0, len(actions))
	for _, a := range actions {
		results = append(results, braindump.ExecutionResult{
			OK:      !m.failAll,
			Type:    a.Type,
			Details: "executed " + string(a.Type),
			Payload: a.Payload,
		})
	}
	return results
}
