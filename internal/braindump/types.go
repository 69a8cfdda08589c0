package braindump

// Intent is the closed category of user goal extracted from text.
type Intent string

const (
	IntentTask     Intent = "task"
	IntentEvent    Intent = "event"
	IntentReminder Intent = "reminder"
	IntentAlarm    Intent = "alarm"
	IntentNote     Intent = "note"
	IntentQuestion Intent = "question"
	IntentShopping Intent = "shopping"
	IntentUnknown  Intent = "unknown"
)

// Status is the outcome class of a decision.
type Status string

const (
	StatusSuccess            Status = "SUCCESS"
	StatusNeedsClarification Status = "NEEDS_CLARIFICATION"
	StatusFailedValidation   Status = "FAILED_VALIDATION"
	StatusSystemError        Status = "SYSTEM_ERROR"
)

// ActionType identifies a symbolic side effect.
type ActionType string

const (
	ActionCreateTask     ActionType = "CREATE_TASK"
	ActionCreateEvent    ActionType = "CREATE_EVENT"
	ActionCreateReminder ActionType = "CREATE_REMINDER"
	ActionCreateAlarm    ActionType = "CREATE_ALARM"
	ActionSaveNote       ActionType = "SAVE_NOTE"
	ActionAddShopping    ActionType = "ADD_SHOPPING"
)

// IntentResult is the structured output of intent classification.
// Intent is always a member of the closed set; the classifier coerces
// anything else to IntentUnknown. Confidence is clamped to [0, 1].
type IntentResult struct {
	Intent       Intent
	Confidence   float64
	Entities     map[string]string
	OriginalText string
}

// Action is a symbolic instruction for a side effect, not yet executed.
type Action struct {
	Type    ActionType
	Payload map[string]any
}

// Decision is the validated outcome of applying intent-specific rules.
// Actions is non-empty only when Status is SUCCESS. Extra carries
// intent-specific fields (reminder_iso, alarm_label, clarification_for)
// consumed only during response assembly.
type Decision struct {
	Status   Status
	Actions  []Action
	Feedback string
	Extra    map[string]any
}

// ExecutionResult is the outcome of attempting one Action. Failures are
// reported, never raised; OK=false carries the reason in Details.
type ExecutionResult struct {
	OK      bool           `json:"ok"`
	Type    ActionType     `json:"type"`
	Details string         `json:"details"`
	Payload map[string]any `json:"payload,omitempty"`
}

// ProcessInput is the input for one pipeline run.
type ProcessInput struct {
	Text string // Transcribed voice message
}

// DebugInfo is attached to generic responses for troubleshooting.
type DebugInfo struct {
	Intent           Intent            `json:"intent"`
	Confidence       float64           `json:"confidence"`
	NumActions       int               `json:"num_actions"`
	ExecutionResults []ExecutionResult `json:"execution_results"`
}

// Response is the sealed set of per-intent output shapes. Note and
// reminder carry bespoke contracts consumed by the phone-side shortcut;
// everything else uses GenericResponse.
type Response interface {
	isResponse()
}

// NoteResponse is the strict note contract: exactly these three fields,
// nothing else. Message holds the formatted note content.
type NoteResponse struct {
	Status  Status `json:"status"`
	Intent  Intent `json:"intent"`
	Message string `json:"message"`
}

// ReminderResponse is the strict reminder contract for the shortcut.
type ReminderResponse struct {
	Status           Status  `json:"status"`
	Intent           Intent  `json:"intent"`
	Message          string  `json:"message"`
	ReminderTitle    *string `json:"reminder_title"`
	ReminderTime     *string `json:"reminder_time"`     // Formatted "(HH:MM DD/MM/YYYY)" or raw ISO
	ClarificationFor *string `json:"clarification_for"` // "time" when the reminder time is missing
}

// GenericResponse is the envelope for all remaining intents.
type GenericResponse struct {
	Success     bool      `json:"success"`
	Message     string    `json:"message"`
	ActionTaken *string   `json:"action_taken"` // Comma-joined successful action types
	Status      Status    `json:"status"`
	Debug       DebugInfo `json:"debug"`
}

func (NoteResponse) isResponse()     {}
func (ReminderResponse) isResponse() {}
func (GenericResponse) isResponse()  {}
