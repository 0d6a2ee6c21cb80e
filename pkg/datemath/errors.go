package datemath

import "errors"

var (
	ErrInvalidTimezone = errors.New("invalid timezone")
	ErrInvalidCron     = errors.New("invalid cron expression")
)
