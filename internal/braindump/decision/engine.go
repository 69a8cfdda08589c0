package decision

import (
	"context"
	"fmt"
	"strings"

	"braindump/internal/braindump"
)

// Decide validates a classification result and produces a status, an action
// plan and user feedback. It is total over the intent set and never panics
// outward: an unexpected fault inside a per-intent rule becomes SYSTEM_ERROR.
func (e *Engine) Decide(result braindump.IntentResult, userID string) (d braindump.Decision) {
	defer func() {
		if r := recover(); r != nil {
			e.l.Errorf(context.Background(), "internal.braindump.decision.Decide: recovered: %v", r)
			d = braindump.Decision{
				Status:   braindump.StatusSystemError,
				Actions:  []braindump.Action{},
				Feedback: FeedbackSystemError,
				Extra:    map[string]any{},
			}
		}
	}()

	text := result.OriginalText
	entities := result.Entities
	if entities == nil {
		entities = map[string]string{}
	}

	switch result.Intent {
	case braindump.IntentTask:
		return e.decideTask(text, entities, userID)
	case braindump.IntentEvent:
		return e.decideEvent(text, entities, userID)
	case braindump.IntentReminder:
		return e.decideReminder(text, entities, userID)
	case braindump.IntentAlarm:
		return e.decideAlarm(text, entities, userID)
	case braindump.IntentNote:
		return e.decideNote(text, entities, userID)
	case braindump.IntentShopping:
		return e.decideShopping(text, entities, userID)
	case braindump.IntentQuestion:
		return e.decideQuestion()
	default:
		return e.decideUnknown()
	}
}

// decideTask requires some task content: non-empty text plus at least one of
// the raw/item/task entities.
func (e *Engine) decideTask(text string, entities map[string]string, userID string) braindump.Decision {
	hasTaskInfo := strings.TrimSpace(text) != "" &&
		(entities["raw"] != "" || entities["item"] != "" || entities["task"] != "")

	if !hasTaskInfo {
		return braindump.Decision{
			Status:   braindump.StatusFailedValidation,
			Actions:  []braindump.Action{},
			Feedback: FeedbackTaskMissing,
			Extra:    map[string]any{},
		}
	}

	title := firstNonEmpty(entities["title"], entities["item"], text)
	payload := mergeEntities(map[string]any{
		"title":        title,
		"entities_raw": entities["raw"],
		"user_id":      userID,
	}, entities)

	return braindump.Decision{
		Status:   braindump.StatusSuccess,
		Actions:  []braindump.Action{{Type: braindump.ActionCreateTask, Payload: payload}},
		Feedback: fmt.Sprintf(FeedbackTaskAdded, text, text),
		Extra:    map[string]any{},
	}
}

// decideEvent requires a time signal: a structured time entity or a raw
// "time="/"date=" marker from a degraded entities line.
func (e *Engine) decideEvent(text string, entities map[string]string, userID string) braindump.Decision {
	entityRaw := strings.ToLower(entities["raw"])
	hasTimeInfo := strings.Contains(entityRaw, "time=") ||
		strings.Contains(entityRaw, "date=") ||
		entities["time"] != "" ||
		entities["date"] != "" ||
		entities["when"] != "" ||
		entities["start_iso"] != ""

	if !hasTimeInfo {
		return braindump.Decision{
			Status:   braindump.StatusNeedsClarification,
			Actions:  []braindump.Action{},
			Feedback: fmt.Sprintf(FeedbackEventWhen, text, text),
			Extra:    map[string]any{},
		}
	}

	payload := mergeEntities(map[string]any{
		"title":    firstNonEmpty(entities["title"], text),
		"when_raw": firstNonEmpty(entityRaw, text),
		"user_id":  userID,
	}, entities)

	return braindump.Decision{
		Status:   braindump.StatusSuccess,
		Actions:  []braindump.Action{{Type: braindump.ActionCreateEvent, Payload: payload}},
		Feedback: fmt.Sprintf(FeedbackEventScheduled, text, text),
		Extra:    map[string]any{},
	}
}

// decideReminder accepts a structured start_iso, a bare time entity, or a
// textual time cue in either language. On success extra carries reminder_iso,
// a full naive ISO datetime the phone shortcut parses into its alert field.
func (e *Engine) decideReminder(text string, entities map[string]string, userID string) braindump.Decision {
	title := firstNonEmpty(entities["title"], entities["reminder"], entities["task"], text)

	entityRaw := strings.ToLower(entities["raw"])
	startISO := entities["start_iso"]
	timeOnly := entities["time"]
	lowerText := strings.ToLower(text)

	hasTimeInfo := startISO != "" ||
		timeOnly != "" ||
		strings.Contains(entityRaw, "time=") ||
		strings.Contains(lowerText, "in ") ||
		strings.Contains(lowerText, "at ") ||
		strings.Contains(text, "בשעה") ||
		strings.Contains(text, "ב-")

	if !hasTimeInfo {
		return braindump.Decision{
			Status:   braindump.StatusNeedsClarification,
			Actions:  []braindump.Action{},
			Feedback: fmt.Sprintf(FeedbackReminderWhen, title),
			Extra: map[string]any{
				ExtraReminderTitle:    title,
				ExtraClarificationFor: ClarifyTime,
			},
		}
	}

	reminderISO := ""
	if startISO != "" {
		if normalized, err := e.dm.NormalizeISO(startISO); err == nil {
			reminderISO = normalized
		}
	}
	if reminderISO == "" && timeOnly != "" {
		if combined, err := e.dm.CombineTime(timeOnly, e.now()); err == nil {
			reminderISO = combined
		}
	}

	feedback := fmt.Sprintf(FeedbackReminderSet, title)
	if reminderISO != "" {
		if dt, err := e.dm.ParseISO(reminderISO); err == nil {
			feedback += fmt.Sprintf(" ב-%s (%s)", dt.Format("15:04"), dt.Format("2006-01-02"))
		} else {
			feedback += fmt.Sprintf(" (%s)", reminderISO)
		}
	}

	payload := mergeEntities(map[string]any{
		"title":    title,
		"when_raw": firstNonEmpty(entityRaw, text),
		"user_id":  userID,
	}, entities)

	return braindump.Decision{
		Status:   braindump.StatusSuccess,
		Actions:  []braindump.Action{{Type: braindump.ActionCreateReminder, Payload: payload}},
		Feedback: feedback,
		Extra: map[string]any{
			ExtraReminderTitle: title,
			ExtraReminderISO:   reminderISO,
		},
	}
}

// decideAlarm requires a parseable start_iso. The feedback omits the date
// when the alarm rings today and appends the label when one was given.
func (e *Engine) decideAlarm(text string, entities map[string]string, userID string) braindump.Decision {
	label := firstNonEmpty(entities["label"], entities["title"])

	startISO := entities["start_iso"]
	if startISO == "" {
		return braindump.Decision{
			Status:   braindump.StatusNeedsClarification,
			Actions:  []braindump.Action{},
			Feedback: FeedbackAlarmWhen,
			Extra: map[string]any{
				ExtraAlarmLabel:       label,
				ExtraClarificationFor: ClarifyTime,
			},
		}
	}

	alarmISO, err := e.dm.NormalizeISO(startISO)
	if err != nil {
		return braindump.Decision{
			Status:   braindump.StatusNeedsClarification,
			Actions:  []braindump.Action{},
			Feedback: FeedbackAlarmBadTime,
			Extra: map[string]any{
				ExtraAlarmLabel:       label,
				ExtraClarificationFor: ClarifyTime,
			},
		}
	}

	dt, _ := e.dm.ParseISO(alarmISO)
	feedback := fmt.Sprintf(FeedbackAlarmSet, dt.Format("15:04"))
	if !e.dm.SameDay(dt, e.now()) {
		feedback += fmt.Sprintf(" (%s)", dt.Format("2006-01-02"))
	}
	if label != "" {
		feedback += " — " + label
	}

	return braindump.Decision{
		Status: braindump.StatusSuccess,
		Actions: []braindump.Action{{
			Type: braindump.ActionCreateAlarm,
			Payload: map[string]any{
				"alarm_iso": alarmISO,
				"label":     label,
				"user_id":   userID,
			},
		}},
		Feedback: feedback,
		Extra: map[string]any{
			ExtraAlarmISO:   alarmISO,
			ExtraAlarmLabel: label,
		},
	}
}

// decideNote always succeeds. The feedback string IS the note contract: the
// phone shortcut writes it verbatim into Apple Notes.
func (e *Engine) decideNote(text string, entities map[string]string, userID string) braindump.Decision {
	formatted := fmt.Sprintf("%s\n\n(%s)", text, e.now().Format(NoteTimestampLayout))

	return braindump.Decision{
		Status: braindump.StatusSuccess,
		Actions: []braindump.Action{{
			Type: braindump.ActionSaveNote,
			Payload: map[string]any{
				"content":           text,
				"user_id":           userID,
				"note_type":         "IDEAS",
				"formatted_content": formatted,
			},
		}},
		Feedback: formatted,
		Extra:    map[string]any{},
	}
}

// decideShopping splits the items entity on commas. The shortcut appends
// each item as a checklist line to the shopping note.
func (e *Engine) decideShopping(text string, entities map[string]string, userID string) braindump.Decision {
	var items []string
	for _, item := range strings.Split(entities["items"], ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	if len(items) == 0 {
		return braindump.Decision{
			Status:   braindump.StatusNeedsClarification,
			Actions:  []braindump.Action{},
			Feedback: FeedbackShoppingWhatItem,
			Extra: map[string]any{
				ExtraItems:            []string{},
				ExtraClarificationFor: ClarifyItems,
			},
		}
	}

	return braindump.Decision{
		Status: braindump.StatusSuccess,
		Actions: []braindump.Action{{
			Type: braindump.ActionAddShopping,
			Payload: map[string]any{
				"items":   items,
				"user_id": userID,
			},
		}},
		Feedback: fmt.Sprintf(FeedbackShoppingAdded, strings.Join(items, ", ")),
		Extra: map[string]any{
			ExtraItems: items,
		},
	}
}

// decideQuestion reports SUCCESS with no actions: answering questions is an
// acknowledged gap, signaled to the user rather than treated as a failure.
func (e *Engine) decideQuestion() braindump.Decision {
	return braindump.Decision{
		Status:   braindump.StatusSuccess,
		Actions:  []braindump.Action{},
		Feedback: FeedbackQuestionStub,
		Extra:    map[string]any{},
	}
}

func (e *Engine) decideUnknown() braindump.Decision {
	return braindump.Decision{
		Status:   braindump.StatusNeedsClarification,
		Actions:  []braindump.Action{},
		Feedback: FeedbackUnknown,
		Extra:    map[string]any{},
	}
}

// mergeEntities shallow-merges extracted entities over the base payload so
// fields the classifier found but the rules did not anticipate still reach
// the dispatcher.
func mergeEntities(base map[string]any, entities map[string]string) map[string]any {
	for k, v := range entities {
		base[k] = v
	}
	return base
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
