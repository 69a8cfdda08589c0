package model

// User is a registered Brain Dump user.
//
// UserID is the phone number (the canonical identity); DeviceID is the
// technical identifier sent by the iPhone Shortcut. A device can be re-paired
// to a different phone, so lookups go device → user.
type User struct {
	UserID          string // Phone number
	DeviceID        string // Technical ID from the Shortcut
	Email           string // Calendar id for Google Calendar
	CalendarEnabled bool   // True once calendar access has been verified
}
