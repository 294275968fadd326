package gcalendar

import "time"

// CreateEventRequest is the input for mirroring one planner event.
// StartTime/EndTime are UTC instants; Timezone tells the calendar which
// wall clock to render them in.
type CreateEventRequest struct {
	CalendarID  string // empty uses the client's default
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Tokyo"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
