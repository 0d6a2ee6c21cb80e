package gateway

// Result is the normalised reply of a remote collaborator.
// Success=false with a nil error means the remote side refused the request.
type Result struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Error   string         `json:"error,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
}

// ScheduleInput describes a reminder to create.
type ScheduleInput struct {
	Content        string `json:"content"`
	CronExpression string `json:"cronExpression"`
	Type           string `json:"type"`
	Recurring      bool   `json:"recurring"`
}

const (
	ScheduleTypeReminder = "reminder"
)
