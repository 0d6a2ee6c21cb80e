package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultDelay is used when no time of day can be found in the text.
const DefaultDelay = 5 * time.Minute

const (
	cronHourly = "0 * * * *"
)

var (
	// HH[:MM][am|pm], e.g. "6pm", "9:30 am", "18:45", "1830".
	clockPattern = regexp.MustCompile(`(\d{1,2}):?(\d{2})?\s*(am|pm)?`)

	dailyMarkers    = []string{"every day", "daily"}
	hourlyMarkers   = []string{"every hour", "hourly"}
	tomorrowMarkers = []string{"tomorrow"}
)

// Parser turns natural-language time expressions into cron schedule descriptors.
type Parser struct {
	location *time.Location
}

// NewParser creates a new parser for the given IANA timezone string.
// e.g. "Asia/Kolkata"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidTimezone, timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the timezone the parser evaluates expressions in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseSchedule converts text into a ScheduleDescriptor relative to now.
// It never fails: text without a usable time of day schedules DefaultDelay from now.
func (p *Parser) ParseSchedule(text string, now time.Time) ScheduleDescriptor {
	text = strings.ToLower(text)
	now = now.In(p.location)

	if containsAny(text, dailyMarkers) {
		if c, ok := findClock(text); ok {
			return ScheduleDescriptor{
				CronExpression: fmt.Sprintf("%d %d * * *", c.minute, c.hour),
				Recurring:      true,
			}
		}
	}

	if containsAny(text, hourlyMarkers) {
		return ScheduleDescriptor{CronExpression: cronHourly, Recurring: true}
	}

	if c, ok := findClock(text); ok {
		target := time.Date(now.Year(), now.Month(), now.Day(), c.hour, c.minute, 0, 0, p.location)
		if containsAny(text, tomorrowMarkers) || !target.After(now) {
			target = target.AddDate(0, 0, 1)
		}
		return oneShot(target)
	}

	return oneShot(now.Add(DefaultDelay))
}

// oneShot pins minute, hour, day and month of t.
func oneShot(t time.Time) ScheduleDescriptor {
	return ScheduleDescriptor{
		CronExpression: fmt.Sprintf("%d %d %d %d *", t.Minute(), t.Hour(), t.Day(), int(t.Month())),
		Recurring:      false,
	}
}

// findClock returns the first candidate that normalises to a real time of day.
func findClock(text string) (clock, bool) {
	for _, m := range clockPattern.FindAllStringSubmatch(text, -1) {
		if c, ok := normalise(m[1], m[2], m[3]); ok {
			return c, true
		}
	}
	return clock{}, false
}

func normalise(hourStr, minuteStr, period string) (clock, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return clock{}, false
	}

	minute := 0
	if minuteStr != "" {
		if minute, err = strconv.Atoi(minuteStr); err != nil {
			return clock{}, false
		}
	}

	switch {
	case period == "pm" && hour != 12:
		hour += 12
	case period == "am" && hour == 12:
		hour = 0
	}

	if hour > 23 || minute > 59 {
		return clock{}, false
	}
	return clock{hour: hour, minute: minute}, true
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
