package datemath

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// ScheduleDescriptor is the cron form of a natural-language time expression.
// One-shot descriptors pin minute, hour, day and month ("30 9 17 10 *").
type ScheduleDescriptor struct {
	CronExpression string `json:"cron_expression"`
	Recurring      bool   `json:"recurring"`
}

var standardParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Validate reports whether the descriptor is a well-formed 5-field cron expression.
func (d ScheduleDescriptor) Validate() error {
	if _, err := standardParser.Parse(d.CronExpression); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidCron, d.CronExpression, err)
	}
	return nil
}

// Next returns the first activation strictly after the given time, evaluated in after's location.
func (d ScheduleDescriptor) Next(after time.Time) (time.Time, error) {
	sched, err := standardParser.Parse(d.CronExpression)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidCron, d.CronExpression, err)
	}
	return sched.Next(after), nil
}

// clock is a parsed HH[:MM][am|pm] fragment normalised to 24-hour time.
type clock struct {
	hour   int
	minute int
}
