package http

import "braindump/internal/user"

// --- Request DTOs ---

type verifyUserReq struct {
	UserID string `json:"user_id" binding:"required"`
}

type registerCompleteReq struct {
	UserID          string `json:"user_id" binding:"required"` // Technical device id from the shortcut
	Phone           string `json:"phone"   binding:"required"`
	Email           string `json:"email"   binding:"required,email"`
	CalendarEnabled bool   `json:"calendar_enabled"`
}

func (r registerCompleteReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		DeviceID:        r.UserID,
		Phone:           r.Phone,
		Email:           r.Email,
		CalendarEnabled: r.CalendarEnabled,
	}
}

// --- Response DTOs ---

// Status values consumed by the shortcut.
const (
	statusOK                = "OK"
	statusNeedsRegistration = "NEEDS_REGISTRATION"
)

type statusResp struct {
	Status string `json:"status"`
}
