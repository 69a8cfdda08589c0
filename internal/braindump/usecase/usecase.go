package usecase

import (
	"context"
	"strings"

	"braindump/internal/braindump"
	"braindump/internal/model"
)

const logPrefix = "internal.braindump.usecase.Process"

// Process runs the full pipeline for one transcribed message. The pipeline
// never aborts mid-way: a classification failure or validation miss still
// flows through to a normal response with the appropriate status.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input braindump.ProcessInput) (braindump.Response, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, braindump.ErrEmptyText
	}

	uc.l.Infof(ctx, "%s: starting flow for %q", logPrefix, input.Text)

	// Step 1: classify intent
	intentResult := uc.classifier.Classify(ctx, input.Text, uc.clock())
	uc.l.Infof(ctx, "%s: intent=%s confidence=%.2f entities=%v",
		logPrefix, intentResult.Intent, intentResult.Confidence, intentResult.Entities)

	// Step 2: validate and build the action plan
	decision := uc.engine.Decide(intentResult, sc.UserID)
	uc.l.Infof(ctx, "%s: status=%s actions=%d", logPrefix, decision.Status, len(decision.Actions))

	// Step 3: execute actions, if any
	var executionResults []braindump.ExecutionResult
	if len(decision.Actions) > 0 {
		executionResults = uc.dispatcher.Execute(ctx, decision.Actions, sc.UserID)
	}

	// Step 4: assemble the per-intent response shape
	return uc.respond(intentResult, decision, executionResults), nil
}

// respond selects the response variant. Note and reminder bypass the
// generic envelope: their output feeds a phone shortcut with a fixed
// field contract.
func (uc *implUseCase) respond(
	intentResult braindump.IntentResult,
	decision braindump.Decision,
	executionResults []braindump.ExecutionResult,
) braindump.Response {
	switch intentResult.Intent {
	case braindump.IntentNote:
		return braindump.NoteResponse{
			Status:  braindump.StatusSuccess,
			Intent:  braindump.IntentNote,
			Message: decision.Feedback,
		}

	case braindump.IntentReminder:
		return braindump.ReminderResponse{
			Status:           decision.Status,
			Intent:           braindump.IntentReminder,
			Message:          decision.Feedback,
			ReminderTitle:    extraString(decision.Extra, "reminder_title"),
			ReminderTime:     uc.formatReminderTime(extraString(decision.Extra, "reminder_iso")),
			ClarificationFor: extraString(decision.Extra, "clarification_for"),
		}
	}

	var actionTaken *string
	var okTypes []string
	for _, r := range executionResults {
		if r.OK {
			okTypes = append(okTypes, string(r.Type))
		}
	}
	if len(okTypes) > 0 {
		joined := strings.Join(okTypes, ", ")
		actionTaken = &joined
	}

	return braindump.GenericResponse{
		Success:     decision.Status == braindump.StatusSuccess,
		Message:     decision.Feedback,
		ActionTaken: actionTaken,
		Status:      decision.Status,
		Debug: braindump.DebugInfo{
			Intent:           intentResult.Intent,
			Confidence:       intentResult.Confidence,
			NumActions:       len(decision.Actions),
			ExecutionResults: executionResults,
		},
	}
}

// formatReminderTime renders a reminder ISO timestamp the way the shortcut
// displays it: "(HH:MM DD/MM/YYYY)". An unparseable value passes through
// raw; an absent one stays nil.
func (uc *implUseCase) formatReminderTime(iso *string) *string {
	if iso == nil || *iso == "" {
		return nil
	}
	dt, err := uc.dateMath.ParseISO(*iso)
	if err != nil {
		return iso
	}
	formatted := dt.Format("(15:04 02/01/2006)")
	return &formatted
}

// extraString pulls a string field out of the decision extras, nil when
// absent or empty.
func extraString(extra map[string]any, key string) *string {
	if v, ok := extra[key].(string); ok && v != "" {
		return &v
	}
	return nil
}
