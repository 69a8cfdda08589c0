package user

// RegisterInput finalizes onboarding for a device. DeviceID is the technical
// id the shortcut sends with every request; Phone becomes the canonical
// user id.
type RegisterInput struct {
	DeviceID        string
	Phone           string
	Email           string
	CalendarEnabled bool
}
