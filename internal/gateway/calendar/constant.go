package calendar

import "time"

const (
	LogPrefixCreateSchedule = "internal.gateway.calendar.CreateSchedule"

	// EventDuration is the length of a mirrored reminder event.
	EventDuration = 15 * time.Minute

	PayloadEventID   = "calendar_event_id"
	PayloadEventLink = "calendar_event_link"

	rruleDaily  = "RRULE:FREQ=DAILY"
	rruleHourly = "RRULE:FREQ=HOURLY"
)
