package response

// Resp is the standard JSON response body for system and onboarding routes.
// The brain-dump pipeline endpoints return their own per-intent contracts and
// do not use this envelope.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
