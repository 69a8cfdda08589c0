package decision

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"braindump/internal/braindump"
	"braindump/pkg/datemath"
)

// fixedClock: Friday 2026-02-06 15:30 local time.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	dm, err := datemath.NewParser("Asia/Jerusalem")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}
	loc, _ := time.LoadLocation("Asia/Jerusalem")
	now := func() time.Time {
		return time.Date(2026, 2, 6, 15, 30, 0, 0, loc)
	}
	return New(&mockLogger{}, dm, now)
}

func result(intent braindump.Intent, text string, entities map[string]string) braindump.IntentResult {
	return braindump.IntentResult{
		Intent:       intent,
		Confidence:   0.9,
		Entities:     entities,
		OriginalText: text,
	}
}

func TestDecideTask(t *testing.T) {
	e := newTestEngine(t)

	t.Run("Success with item entity", func(t *testing.T) {
		d := e.Decide(result(braindump.IntentTask, "Add milk to shopping list", map[string]string{"item": "milk"}), "u1")

		if d.Status != braindump.StatusSuccess {
			t.Fatalf("expected SUCCESS, got %s", d.Status)
		}
		if len(d.Actions) != 1 || d.Actions[0].Type != braindump.ActionCreateTask {
			t.Fatalf("expected one CREATE_TASK action, got %+v", d.Actions)
		}
		if d.Actions[0].Payload["title"] != "milk" {
			t.Errorf("expected item entity to win as title, got %v", d.Actions[0].Payload["title"])
		}
		if d.Actions[0].Payload["user_id"] != "u1" {
			t.Errorf("expected user id in payload")
		}
		if !strings.Contains(d.Feedback, "Add milk to shopping list") || !strings.Contains(d.Feedback, "הוספתי את המשימה") {
			t.Errorf("expected bilingual feedback echoing text, got %q", d.Feedback)
		}
	})

	t.Run("Entities merged into payload", func(t *testing.T) {
		d := e.Decide(result(braindump.IntentTask, "buy bread", map[string]string{"item": "bread", "priority": "high"}), "u1")

		if d.Actions[0].Payload["priority"] != "high" {
			t.Errorf("expected unanticipated entity to reach payload, got %+v", d.Actions[0].Payload)
		}
	})

	t.Run("Missing task info", func(t *testing.T) {
		d := e.Decide(result(braindump.IntentTask, "add a task", map[string]string{}), "u1")

		if d.Status != braindump.StatusFailedValidation {
			t.Fatalf("expected FAILED_VALIDATION, got %s", d.Status)
		}
		if len(d.Actions) != 0 {
			t.Errorf("expected no actions, got %d", len(d.Actions))
		}
	})

	t.Run("Empty text fails validation", func(t *testing.T) {
		d := e.Decide(result(braindump.IntentTask, "   ", map[string]string{"item": "milk"}), "u1")
		if d.Status != braindump.StatusFailedValidation {
			t.Errorf("expected FAILED_VALIDATION, got %s", d.Status)
		}
	})
}

func TestDecideEvent(t *testing.T) {
	e := newTestEngine(t)

	t.Run("Success with start_iso", func(t *testing.T) {
		d := e.Decide(result(braindump.IntentEvent, "meeting with boss tomorrow at 9",
			map[string]string{"title": "Meeting with Boss", "start_iso": "2026-02-07T09:00:00"}), "u1")

		if d.Status != braindump.StatusSuccess {
			t.Fatalf("expected SUCCESS, got %s", d.Status)
		}
		if len(d.Actions) != 1 || d.Actions[0].Type != braindump.ActionCreateEvent {
			t.Fatalf("expected one CREATE_EVENT action, got %+v", d.Actions)
		}
		if d.Actions[0].Payload["start_iso"] != "2026-02-07T09:00:00" {
			t.Errorf("expected start_iso carried to payload")
		}
		if d.Actions[0].Payload["title"] != "Meeting with Boss" {
			t.Errorf("expected structured title to win over raw text")
		}
	})

	t.Run("Raw time marker counts as time signal", func(t *testing.T) {
		d := e.Decide(result(braindump.IntentEvent, "dinner on friday",
			map[string]string{"raw": `title="dinner", date="friday"`}), "u1")

		if d.Status != braindump.StatusSuccess {
			t.Fatalf("expected SUCCESS on date= marker, got %s", d.Status)
		}
	})

	t.Run("Missing time asks when", func(t *testing.T) {
		d := e.Decide(result(braindump.IntentEvent, "Schedule meeting tomorrow", map[string]string{}), "u1")

		if d.Status != braindump.StatusNeedsClarification {
			t.Fatalf("expected NEEDS_CLARIFICATION, got %s", d.Status)
		}
		if len(d.Actions) != 0 {
			t.Errorf("expected no actions, got %d", len(d.Actions))
		}
		if !strings.Contains(d.Feedback, "Schedule meeting tomorrow") || !strings.Contains(d.Feedback, "מתי") {
			t.Errorf("expected bilingual when-question, got %q", d.Feedback)
		}
	})
}

func TestDecideReminder(t *testing.T) {
	e := newTestEngine(t)

	t.Run("ISO round-trips unchanged", func(t *testing.T) {
		d := e.Decide(result(braindump.IntentReminder, "remind me about the delivery",
			map[string]string{"title": "delivery", "start_iso": "2026-02-06T17:00:00"}), "u1")

		if d.Status != braindump.StatusSuccess {
			t.Fatalf("expected SUCCESS, got %s", d.Status)
		}
		if d.Extra[ExtraReminderISO] != "2026-02-06T17:00:00" {
			t.Errorf("expected reminder_iso unchanged by normalization, got %v", d.Extra[ExtraReminderISO])
		}
		if d.Extra[ExtraReminderTitle] != "delivery" {
			t.Errorf("expected reminder_title in extra, got %v", d.Extra[ExtraReminderTitle])
		}
		if !strings.Contains(d.Feedback, "תזכורת נקבעה: 'delivery'") {
			t.Errorf("unexpected feedback: %q", d.Feedback)
		}
		if !strings.Contains(d.Feedback, "ב-17:00 (2026-02-06)") {
			t.Errorf("expected formatted time in feedback, got %q", d.Feedback)
		}
	})

	t.Run("Bare time combines with today", func(t *testing.T) {
		d := e.Decide(result(braindump.IntentReminder, "remind me to call mom at five",
			map[string]string{"title": "call mom", "time": "17:00"}), "u1")

		if d.Status != braindump.StatusSuccess {
			t.Fatalf("expected SUCCESS, got %s", d.Status)
		}
		if d.Extra[ExtraReminderISO] != "2026-02-06T17:00:00" {
			t.Errorf("expected bare time combined with today, got %v", d.Extra[ExtraReminderISO])
		}
	})

	t.Run("Textual cue without parseable time still succeeds", func(t *testing.T) {
		d := e.Decide(result(braindump.IntentReminder, "remind me in an hour to stretch", map[string]string{}), "u1")

		if d.Status != braindump.StatusSuccess {
			t.Fatalf("expected SUCCESS on textual cue, got %s", d.Status)
		}
		if d.Extra[ExtraReminderISO] != "" {
			t.Errorf("expected empty reminder_iso, got %v", d.Extra[ExtraReminderISO])
		}
	})

	t.Run("Missing time asks when", func(t *testing.T) {
		d := e.Decide(result(braindump.IntentReminder, "remind me about the thing",
			map[string]string{"title": "the thing"}), "u1")

		if d.Status != braindump.StatusNeedsClarification {
			t.Fatalf("expected NEEDS_CLARIFICATION, got %s", d.Status)
		}
		if d.Feedback != "מתי להזכיר לך על 'the thing'?" {
			t.Errorf("unexpected feedback: %q", d.Feedback)
		}
		if d.Extra[ExtraClarificationFor] != ClarifyTime {
			t.Errorf("expected clarification_for=time, got %v", d.Extra[ExtraClarificationFor])
		}
		if d.Extra[ExtraReminderTitle] != "the thing" {
			t.Errorf("expected reminder_title still populated, got %v", d.Extra[ExtraReminderTitle])
		}
	})
}

func TestDecideAlarm(t *testing.T) {
	e := newTestEngine(t)

	t.Run("Alarm today omits date", func(t *testing.T) {
		d := e.Decide(result(braindump.IntentAlarm, "wake me at seven tonight",
			map[string]string{"start_iso": "2026-02-06T19:00:00", "label": ""}), "u1")

		if d.Status != braindump.StatusSuccess {
			t.Fatalf("expected SUCCESS, got %s", d.Status)
		}
		if d.Feedback != "שעון מעורר נקבע ל-19:00" {
			t.Errorf("expected date-free feedback for same-day alarm, got %q", d.Feedback)
		}
		if len(d.Actions) != 1 || d.Actions[0].Type != braindump.ActionCreateAlarm {
			t.Fatalf("expected one CREATE_ALARM action")
		}
		if d.Actions[0].Payload["alarm_iso"] != "2026-02-06T19:00:00" {
			t.Errorf("unexpected alarm_iso: %v", d.Actions[0].Payload["alarm_iso"])
		}
	})

	t.Run("Alarm another day includes date and label", func(t *testing.T) {
		d := e.Decide(result(braindump.IntentAlarm, "wake me tomorrow for the flight",
			map[string]string{"start_iso": "2026-02-07T06:00:00", "label": "flight"}), "u1")

		if d.Feedback != "שעון מעורר נקבע ל-06:00 (2026-02-07) — flight" {
			t.Errorf("unexpected feedback: %q", d.Feedback)
		}
		if d.Extra[ExtraAlarmLabel] != "flight" {
			t.Errorf("expected label in extra, got %v", d.Extra[ExtraAlarmLabel])
		}
	})

	t.Run("Unparseable time asks again", func(t *testing.T) {
		d := e.Decide(result(braindump.IntentAlarm, "wake me up",
			map[string]string{"start_iso": "sometime soon"}), "u1")

		if d.Status != braindump.StatusNeedsClarification {
			t.Fatalf("expected NEEDS_CLARIFICATION, got %s", d.Status)
		}
		if d.Feedback != FeedbackAlarmBadTime {
			t.Errorf("unexpected feedback: %q", d.Feedback)
		}
	})

	t.Run("Missing time asks when", func(t *testing.T) {
		d := e.Decide(result(braindump.IntentAlarm, "set an alarm", map[string]string{}), "u1")

		if d.Status != braindump.StatusNeedsClarification {
			t.Fatalf("expected NEEDS_CLARIFICATION, got %s", d.Status)
		}
		if d.Extra[ExtraClarificationFor] != ClarifyTime {
			t.Errorf("expected clarification_for=time")
		}
	})
}

func TestDecideNote(t *testing.T) {
	e := newTestEngine(t)

	t.Run("Always succeeds with exact feedback contract", func(t *testing.T) {
		d := e.Decide(result(braindump.IntentNote, "Buy milk", map[string]string{}), "u1")

		if d.Status != braindump.StatusSuccess {
			t.Fatalf("expected SUCCESS, got %s", d.Status)
		}
		if len(d.Actions) != 1 || d.Actions[0].Type != braindump.ActionSaveNote {
			t.Fatalf("expected exactly one SAVE_NOTE action, got %+v", d.Actions)
		}
		if d.Feedback != "Buy milk\n\n(06/02/2026 15:30)" {
			t.Errorf("note feedback contract broken: %q", d.Feedback)
		}
		if d.Actions[0].Payload["note_type"] != "IDEAS" {
			t.Errorf("expected note_type IDEAS, got %v", d.Actions[0].Payload["note_type"])
		}
		if d.Actions[0].Payload["formatted_content"] != d.Feedback {
			t.Errorf("expected formatted_content to match feedback")
		}
	})

	t.Run("Empty note still succeeds", func(t *testing.T) {
		d := e.Decide(result(braindump.IntentNote, "", map[string]string{}), "u1")
		if d.Status != braindump.StatusSuccess || len(d.Actions) != 1 {
			t.Errorf("notes have no failure mode, got %s with %d actions", d.Status, len(d.Actions))
		}
	})
}

func TestDecideShopping(t *testing.T) {
	e := newTestEngine(t)

	t.Run("Comma-separated items", func(t *testing.T) {
		d := e.Decide(result(braindump.IntentShopping, "add to the list",
			map[string]string{"items": "חלב, ביצים , לחם"}), "u1")

		if d.Status != braindump.StatusSuccess {
			t.Fatalf("expected SUCCESS, got %s", d.Status)
		}
		if len(d.Actions) != 1 || d.Actions[0].Type != braindump.ActionAddShopping {
			t.Fatalf("expected one ADD_SHOPPING action")
		}
		items, ok := d.Actions[0].Payload["items"].([]string)
		if !ok || !reflect.DeepEqual(items, []string{"חלב", "ביצים", "לחם"}) {
			t.Errorf("expected trimmed items, got %v", d.Actions[0].Payload["items"])
		}
		if d.Feedback != "נוסף לרשימת קניות: חלב, ביצים, לחם" {
			t.Errorf("unexpected feedback: %q", d.Feedback)
		}
	})

	t.Run("No items asks what to add", func(t *testing.T) {
		d := e.Decide(result(braindump.IntentShopping, "add to the shopping list", map[string]string{}), "u1")

		if d.Status != braindump.StatusNeedsClarification {
			t.Fatalf("expected NEEDS_CLARIFICATION, got %s", d.Status)
		}
		if d.Extra[ExtraClarificationFor] != ClarifyItems {
			t.Errorf("expected clarification_for=items")
		}
	})
}

func TestDecideQuestionAndUnknown(t *testing.T) {
	e := newTestEngine(t)

	t.Run("Question succeeds with no actions", func(t *testing.T) {
		d := e.Decide(result(braindump.IntentQuestion, "what's the weather?", map[string]string{}), "u1")

		if d.Status != braindump.StatusSuccess {
			t.Fatalf("expected SUCCESS, got %s", d.Status)
		}
		if len(d.Actions) != 0 {
			t.Errorf("expected no actions for questions, got %d", len(d.Actions))
		}
		if !strings.Contains(d.Feedback, "not implemented yet") {
			t.Errorf("expected unimplemented notice, got %q", d.Feedback)
		}
	})

	t.Run("Unknown asks to rephrase", func(t *testing.T) {
		d := e.Decide(result(braindump.IntentUnknown, "asdf qwerty", map[string]string{}), "u1")

		if d.Status != braindump.StatusNeedsClarification {
			t.Fatalf("expected NEEDS_CLARIFICATION, got %s", d.Status)
		}
		if !strings.Contains(d.Feedback, "rephrase") || !strings.Contains(d.Feedback, "לנסח מחדש") {
			t.Errorf("expected bilingual rephrase request, got %q", d.Feedback)
		}
	})
}

func TestDecideInvariants(t *testing.T) {
	e := newTestEngine(t)

	intents := []braindump.Intent{
		braindump.IntentTask, braindump.IntentEvent, braindump.IntentReminder,
		braindump.IntentAlarm, braindump.IntentNote, braindump.IntentQuestion,
		braindump.IntentShopping, braindump.IntentUnknown,
	}

	t.Run("Actions empty unless SUCCESS", func(t *testing.T) {
		for _, intent := range intents {
			d := e.Decide(result(intent, "some text", map[string]string{}), "u1")
			if d.Status != braindump.StatusSuccess && len(d.Actions) != 0 {
				t.Errorf("intent %s: %d actions with status %s", intent, len(d.Actions), d.Status)
			}
		}
	})

	t.Run("Every intent handled without panic", func(t *testing.T) {
		for _, intent := range intents {
			d := e.Decide(result(intent, "text", nil), "u1")
			if d.Status == "" {
				t.Errorf("intent %s: empty status", intent)
			}
		}
	})

	t.Run("Deterministic given identical inputs", func(t *testing.T) {
		in := result(braindump.IntentReminder, "remind me at five",
			map[string]string{"title": "thing", "start_iso": "2026-02-06T17:00:00"})
		first := e.Decide(in, "u1")
		second := e.Decide(in, "u1")
		if !reflect.DeepEqual(first, second) {
			t.Errorf("decide is not idempotent:\n%+v\n%+v", first, second)
		}
	})
}
