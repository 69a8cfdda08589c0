package decision

import (
	"time"

	"braindump/internal/braindump"
	"braindump/pkg/datemath"
	"braindump/pkg/log"
)

// Engine applies per-intent validation rules and produces an action plan.
// Pure apart from logging: given the same inputs and clock it always
// returns the same decision.
type Engine struct {
	l   log.Logger
	dm  *datemath.Parser
	now func() time.Time
}

// Ensure Engine implements the domain interface
var _ braindump.DecisionEngine = (*Engine)(nil)

// New creates a new decision Engine. now is the injected clock used for
// note timestamps, bare-time reminders and today-checks; pass time.Now in
// production.
func New(l log.Logger, dm *datemath.Parser, now func() time.Time) *Engine {
	return &Engine{
		l:   l,
		dm:  dm,
		now: now,
	}
}
