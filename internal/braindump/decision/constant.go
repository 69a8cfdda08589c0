package decision

// User-facing feedback strings. Most branches speak English and Hebrew;
// the reminder, alarm, shopping and note branches are Hebrew-only because
// their output is consumed by a Hebrew-speaking phone shortcut.
const (
	FeedbackTaskAdded      = "I'll add this task for you: '%s' / הוספתי את המשימה: '%s'"
	FeedbackTaskMissing    = "I understand you want to add a task, but what should the task be? / הבנתי שרצית להוסיף משימה, אבל מה המשימה?"
	FeedbackEventScheduled = "I'll schedule this event for you: '%s' / קבעתי לך את האירוע: '%s'"
	FeedbackEventWhen      = "I understand you want to schedule '%s', but when should it be? / הבנתי שאתה רוצה לקבוע את '%s', אבל מתי?"

	FeedbackReminderSet  = "תזכורת נקבעה: '%s'"
	FeedbackReminderWhen = "מתי להזכיר לך על '%s'?"

	FeedbackAlarmSet         = "שעון מעורר נקבע ל-%s"
	FeedbackAlarmWhen        = "מתי לקבוע את השעון מעורר?"
	FeedbackAlarmBadTime     = "לא הצלחתי לפענח את השעה. מתי לקבוע את השעון מעורר?"
	FeedbackShoppingAdded    = "נוסף לרשימת קניות: %s"
	FeedbackShoppingWhatItem = "מה להוסיף לרשימת הקניות?"

	FeedbackQuestionStub = "I understand you have a question, but question handling is not implemented yet. / הבנתי שיש לך שאלה, אבל עדיין אין לי אפשרות לענות על שאלות. בינתיים אני יכול לעזור עם משימות ואירועים."
	FeedbackUnknown      = "I didn't quite understand that. Could you rephrase? / לא לגמרי הבנתי אותך, אפשר לנסח מחדש? אני יכול לעזור לקבוע פגישות או לשמור משימות."
	FeedbackSystemError  = "Sorry, something went wrong. / סליחה, משהו השתבש בעיבוד הבקשה."
)

// Extra map keys consumed during response assembly.
const (
	ExtraReminderTitle    = "reminder_title"
	ExtraReminderISO      = "reminder_iso"
	ExtraAlarmISO         = "alarm_iso"
	ExtraAlarmLabel       = "alarm_label"
	ExtraItems            = "items"
	ExtraClarificationFor = "clarification_for"
)

// Clarification subjects
const (
	ClarifyTime  = "time"
	ClarifyItems = "items"
)

// NoteTimestampLayout stamps saved notes, e.g. "06/02/2026 17:00".
const NoteTimestampLayout = "02/01/2006 15:04"
