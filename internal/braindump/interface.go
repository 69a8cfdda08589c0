package braindump

import (
	"context"
	"time"

	"braindump/internal/model"
)

// UseCase defines the business logic interface for the brain dump pipeline.
type UseCase interface {
	// Process runs the full pipeline: classify intent, decide on actions,
	// execute them, and assemble the per-intent response shape.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (Response, error)
}

// Classifier maps raw text to a structured intent. It never fails outward:
// provider errors degrade to an unknown-intent result.
type Classifier interface {
	Classify(ctx context.Context, text string, now time.Time) IntentResult
}

// DecisionEngine applies per-intent validation rules to a classification
// result. Pure: no I/O, deterministic given its inputs and clock.
type DecisionEngine interface {
	Decide(result IntentResult, userID string) Decision
}

// Dispatcher converts symbolic actions into side effects, one result per
// action in input order.
type Dispatcher interface {
	Execute(ctx context.Context, actions []Action, userID string) []ExecutionResult
}
