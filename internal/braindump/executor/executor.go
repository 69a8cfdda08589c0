package executor

import (
	"context"
	"fmt"

	"braindump/internal/braindump"
	"braindump/pkg/gcalendar"
)

const logPrefix = "internal.braindump.executor.Execute"

// Execute runs the action plan, returning one result per action in input
// order. Failures are reported per-action and never abort the batch.
func (e *ActionExecutor) Execute(ctx context.Context, actions []braindump.Action, userID string) []braindump.ExecutionResult {
	if len(actions) == 0 {
		return []braindump.ExecutionResult{}
	}

	e.l.Infof(ctx, "%s: executing %d action(s) for user %s", logPrefix, len(actions), userID)

	results := make([]braindump.ExecutionResult, 0, len(actions))
	for _, action := range actions {
		var result braindump.ExecutionResult

		switch action.Type {
		case braindump.ActionCreateTask:
			result = e.executeCreateTask(action.Payload, userID)
		case braindump.ActionCreateEvent:
			result = e.executeCreateEvent(ctx, action.Payload, userID)
		case braindump.ActionCreateReminder:
			result = e.executeCreateReminder(action.Payload, userID)
		case braindump.ActionCreateAlarm:
			result = e.executeCreateAlarm(action.Payload, userID)
		case braindump.ActionSaveNote:
			result = e.executeSaveNote(action.Payload, userID)
		case braindump.ActionAddShopping:
			result = e.executeAddShopping(action.Payload, userID)
		default:
			result = braindump.ExecutionResult{
				OK:      false,
				Type:    action.Type,
				Details: fmt.Sprintf("STUB: Unknown action type '%s'", action.Type),
				Payload: action.Payload,
			}
		}

		e.l.Infof(ctx, "%s: %s -> %s", logPrefix, action.Type, result.Details)
		results = append(results, result)
	}

	return results
}

func (e *ActionExecutor) executeCreateTask(payload map[string]any, userID string) braindump.ExecutionResult {
	title := payloadString(payload, "title", "Untitled task")
	return braindump.ExecutionResult{
		OK:      true,
		Type:    braindump.ActionCreateTask,
		Details: fmt.Sprintf("STUB: Would add task '%s' to Todoist for user %s", title, userID),
		Payload: payload,
	}
}

// executeCreateEvent is the one live branch: it requires the user's
// registered email (the calendar id) and a start time, then writes the
// event through the calendar provider.
func (e *ActionExecutor) executeCreateEvent(ctx context.Context, payload map[string]any, userID string) braindump.ExecutionResult {
	email, err := e.users.LookupEmail(ctx, userID)
	if err != nil || email == "" {
		return braindump.ExecutionResult{
			OK:      false,
			Type:    braindump.ActionCreateEvent,
			Details: fmt.Sprintf("ERROR: No registered email found for user %s", userID),
			Payload: payload,
		}
	}

	startISO := payloadString(payload, "start_iso", "")
	if startISO == "" {
		return braindump.ExecutionResult{
			OK:      false,
			Type:    braindump.ActionCreateEvent,
			Details: "ERROR: No start time provided for the event",
			Payload: payload,
		}
	}

	title := payloadString(payload, "title", "")
	if title == "" {
		title = payloadString(payload, "title_raw", "Brain Dump Event")
	}

	event, err := e.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  email,
		Title:       title,
		StartISO:    startISO,
		EndISO:      payloadString(payload, "end_iso", ""),
		Description: fmt.Sprintf("Created via Brain Dump for %s", userID),
	})
	if err != nil {
		return braindump.ExecutionResult{
			OK:      false,
			Type:    braindump.ActionCreateEvent,
			Details: fmt.Sprintf("Failed to create event: %v", err),
			Payload: payload,
		}
	}

	return braindump.ExecutionResult{
		OK:      true,
		Type:    braindump.ActionCreateEvent,
		Details: fmt.Sprintf("Event '%s' created successfully! Check your calendar.", title),
		Payload: map[string]any{"event_link": event.HtmlLink},
	}
}

func (e *ActionExecutor) executeCreateReminder(payload map[string]any, userID string) braindump.ExecutionResult {
	title := payloadString(payload, "title", "Untitled reminder")
	whenRaw := payloadString(payload, "when_raw", "unspecified time")
	return braindump.ExecutionResult{
		OK:      true,
		Type:    braindump.ActionCreateReminder,
		Details: fmt.Sprintf("STUB: Would set reminder '%s' for '%s' for user %s", title, whenRaw, userID),
		Payload: payload,
	}
}

// Alarms ring on-device; the shortcut consumes alarm_iso from the response
// and the server has nothing to execute.
func (e *ActionExecutor) executeCreateAlarm(payload map[string]any, userID string) braindump.ExecutionResult {
	alarmISO := payloadString(payload, "alarm_iso", "unspecified time")
	return braindump.ExecutionResult{
		OK:      true,
		Type:    braindump.ActionCreateAlarm,
		Details: fmt.Sprintf("STUB: Alarm for '%s' is set on-device for user %s", alarmISO, userID),
		Payload: payload,
	}
}

func (e *ActionExecutor) executeSaveNote(payload map[string]any, userID string) braindump.ExecutionResult {
	return braindump.ExecutionResult{
		OK:      true,
		Type:    braindump.ActionSaveNote,
		Details: fmt.Sprintf("STUB: SAVE_NOTE logged for %s", userID),
		Payload: payload,
	}
}

func (e *ActionExecutor) executeAddShopping(payload map[string]any, userID string) braindump.ExecutionResult {
	count := 0
	if items, ok := payload["items"].([]string); ok {
		count = len(items)
	}
	return braindump.ExecutionResult{
		OK:      true,
		Type:    braindump.ActionAddShopping,
		Details: fmt.Sprintf("STUB: Would add %d item(s) to the shopping list for user %s", count, userID),
		Payload: payload,
	}
}

func payloadString(payload map[string]any, key, fallback string) string {
	if v, ok := payload[key].(string); ok && v != "" {
		return v
	}
	return fallback
}
