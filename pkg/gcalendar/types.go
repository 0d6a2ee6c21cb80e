package gcalendar

import (
	"context"
	"errors"
	"time"
)

const DefaultCalendarID = "primary"

var ErrTokenMissing = errors.New("gcalendar: OAuth desktop credentials need a saved token (run `jarvis gcal-auth`)")

// ICalendar is the subset of Google Calendar the assistant writes to.
type ICalendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Asia/Kolkata"
	// Recurrence holds RFC 5545 lines such as "RRULE:FREQ=DAILY".
	Recurrence []string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Recurrence  []string
}
