package gcalendar

// CreateEventRequest is the input for creating a Google Calendar event.
// Times are ISO-8601 strings as produced by the classifier; EndISO may be
// empty, in which case the event ends one hour after it starts.
type CreateEventRequest struct {
	CalendarID  string // Usually the user's email; "primary" when empty
	Title       string
	StartISO    string
	EndISO      string
	Description string
}

// Event is a simplified representation of a created Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
}
