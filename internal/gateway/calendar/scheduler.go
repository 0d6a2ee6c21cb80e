package calendar

import (
	"context"
	"maps"
	"strings"

	"jarvis-assistant/internal/gateway"
	"jarvis-assistant/pkg/datemath"
	"jarvis-assistant/pkg/gcalendar"
)

func (s *MirroringScheduler) CreateSchedule(ctx context.Context, in gateway.ScheduleInput) (gateway.Result, error) {
	res, err := s.next.CreateSchedule(ctx, in)
	if err != nil || !res.Success {
		return res, err
	}

	event, mirrorErr := s.mirror(ctx, in)
	if mirrorErr != nil {
		s.l.Warnf(ctx, "%s: mirror %q to calendar: %v", LogPrefixCreateSchedule, in.CronExpression, mirrorErr)
		return res, nil
	}

	payload := make(map[string]any, len(res.Payload)+2)
	maps.Copy(payload, res.Payload)
	payload[PayloadEventID] = event.ID
	payload[PayloadEventLink] = event.HtmlLink
	res.Payload = payload
	return res, nil
}

func (s *MirroringScheduler) mirror(ctx context.Context, in gateway.ScheduleInput) (*gcalendar.Event, error) {
	desc := datemath.ScheduleDescriptor{CronExpression: in.CronExpression, Recurring: in.Recurring}
	start, err := desc.Next(s.now().In(s.location))
	if err != nil {
		return nil, err
	}

	req := gcalendar.CreateEventRequest{
		CalendarID:  s.calendarID,
		Summary:     in.Content,
		Description: "Created by the assistant (" + in.Type + ", cron " + in.CronExpression + ")",
		StartTime:   start,
		EndTime:     start.Add(EventDuration),
		Timezone:    s.location.String(),
	}
	if in.Recurring {
		req.Recurrence = recurrenceFor(in.CronExpression)
	}

	return s.calendar.CreateEvent(ctx, req)
}

// recurrenceFor maps the recurring cron shapes the time parser emits onto RRULEs.
// "0 * * * *" repeats hourly, "M H * * *" daily; anything else is left as a single event.
func recurrenceFor(cronExpr string) []string {
	fields := strings.Fields(cronExpr)
	if len(fields) != 5 || fields[2] != "*" || fields[3] != "*" || fields[4] != "*" {
		return nil
	}
	if fields[1] == "*" {
		return []string{rruleHourly}
	}
	return []string{rruleDaily}
}
