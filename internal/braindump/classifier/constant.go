package classifier

// Log prefixes
const (
	LogPrefixClassify = "internal.braindump.classifier.Classify"
)

// Classification prompts
const (
	PromptSystem = `You are an assistant for 'Brain Dump'. You help users capture tasks, events, and notes. You MUST support both Hebrew and English. If the user speaks Hebrew, analyze the intent correctly in Hebrew.`

	PromptClassify = `Classify the following user message into ONE of these intents:

Intents:
- task: User wants to add a todo/task (e.g., "add milk to list", "buy groceries", "remember to call")
- event: User wants to create a calendar event (e.g., "schedule meeting tomorrow", "set appointment")
- reminder: User wants to set a reminder about something (e.g., "remind me to call mom", "תזכיר לי לאסוף את המשלוח")
- alarm: User explicitly wants to set an ALARM / clock alarm (e.g., "שעון מעורר", "תעיר אותי", "set alarm", "אלארם"). Use this ONLY when the user explicitly says alarm/שעון מעורר/תעיר אותי.
- note: User wants to save a note/idea (e.g., "note: great idea", "save this thought")
- question: User is asking a question (e.g., "what's the weather?", "how do I...?")
- unknown: Cannot determine clear intent

User message: "%s"
Language Note: The user may speak Hebrew, English, or both. Transliterate or translate entities if necessary, but keep the core meaning. If it's an event, analyze the Hebrew temporal expressions (e.g. 'מחר' = tomorrow).
Current Local Time: %s

Respond in this EXACT format:
Intent: <one of the above intents>
Confidence: <number between 0.0 and 1.0>
Entities: <extracted info: key="value", key="value">
- For 'event' or 'reminder': ONLY include start_iso (ISO 8601 format) and end_iso if the user EXPLICITLY mentions a date or time. If the user does NOT mention when, do NOT invent or guess a time — leave start_iso and end_iso out entirely.
- For 'alarm': include start_iso (ISO 8601 format) for the alarm time, and label (the reason/description, if mentioned). If no label is given, set label="".
- For 'task', include title and priority.

Example response:
Intent: event
Confidence: 0.98
Entities: title="Meeting with Boss", start_iso="2026-01-26T09:00:00", end_iso="2026-01-26T10:00:00"
`
)

// Classification configuration
const (
	ClassifyTemperature = 0.3
	ClassifyMaxTokens   = 150

	// Used for the time context when no clock value is supplied
	FallbackTimeContext = "2026-01-25T21:30:00"

	DefaultConfidence = 0.5
)
