package usecase

import (
	"time"

	"braindump/internal/braindump"
	"braindump/pkg/datemath"
	pkgLog "braindump/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	classifier braindump.Classifier
	engine     braindump.DecisionEngine
	dispatcher braindump.Dispatcher
	dateMath   *datemath.Parser
	clock      func() time.Time
}

var _ braindump.UseCase = (*implUseCase)(nil)

// New creates a new braindump UseCase instance.
func New(
	l pkgLog.Logger,
	classifier braindump.Classifier,
	engine braindump.DecisionEngine,
	dispatcher braindump.Dispatcher,
	dateMath *datemath.Parser,
	clock func() time.Time,
) *implUseCase {
	return &implUseCase{
		l:          l,
		classifier: classifier,
		engine:     engine,
		dispatcher: dispatcher,
		dateMath:   dateMath,
		clock:      clock,
	}
}
