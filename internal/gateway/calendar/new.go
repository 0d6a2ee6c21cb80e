package calendar

import (
	"time"

	"jarvis-assistant/internal/gateway"
	"jarvis-assistant/pkg/gcalendar"
	pkgLog "jarvis-assistant/pkg/log"
)

// MirroringScheduler forwards schedules to the next Scheduler and, when that
// succeeds, copies them into Google Calendar. Mirror failures are only logged.
type MirroringScheduler struct {
	next       gateway.Scheduler
	calendar   gcalendar.ICalendar
	l          pkgLog.Logger
	calendarID string
	location   *time.Location
	now        func() time.Time
}

var _ gateway.Scheduler = (*MirroringScheduler)(nil)

func New(next gateway.Scheduler, cal gcalendar.ICalendar, l pkgLog.Logger, calendarID string, location *time.Location) *MirroringScheduler {
	if calendarID == "" {
		calendarID = gcalendar.DefaultCalendarID
	}
	if location == nil {
		location = time.Local
	}
	return &MirroringScheduler{
		next:       next,
		calendar:   cal,
		l:          l,
		calendarID: calendarID,
		location:   location,
		now:        time.Now,
	}
}
