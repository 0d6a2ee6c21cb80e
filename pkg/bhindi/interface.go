package bhindi

import "context"

// IBhindi is the remote assistant API client.
// Implementations are safe for concurrent use.
type IBhindi interface {
	Chat(ctx context.Context, message string, history []ContextMessage) (*Response, error)
	AddAgent(ctx context.Context, agentID string) (*Response, error)
	CreateSchedule(ctx context.Context, req ScheduleRequest) (*Response, error)
	// Search enables the search agent and asks for a search.
	Search(ctx context.Context, query string) (*Response, error)
}

// New creates a new client with the given configuration.
func New(cfg Config) (IBhindi, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}
