package http

// --- Request DTOs ---

type brainDumpReq struct {
	Text   string `json:"text"    binding:"required"`
	UserID string `json:"user_id" binding:"required"` // Technical device id from the shortcut
}

// --- Response DTOs ---

// needsRegistrationResp is returned with HTTP 200 when the device is not
// recognized: the shortcut treats it as a prompt, not an error.
type needsRegistrationResp struct {
	Success         bool    `json:"success"`
	Message         string  `json:"message"`
	ActionTaken     *string `json:"action_taken"`
	Status          string  `json:"status"`
	RegistrationURL string  `json:"registration_url,omitempty"`
}

const msgNeedsRegistration = "I need to know who you are to help you. Please provide your details."
