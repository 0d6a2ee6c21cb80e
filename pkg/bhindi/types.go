package bhindi

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	pkgLog "jarvis-assistant/pkg/log"
)

// Config configures the client.
type Config struct {
	APIKey         string
	BaseURL        string
	ChatTimeout    time.Duration
	RequestTimeout time.Duration
	// RequestsPerSecond throttles outgoing calls; 0 disables throttling.
	RequestsPerSecond float64
	HTTPClient        *http.Client
	// Logger receives non-fatal failures; nil discards them.
	Logger pkgLog.Logger
}

// Validate fills defaults and checks required fields.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.ChatTimeout <= 0 {
		c.ChatTimeout = DefaultChatTimeout
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	if c.Logger == nil {
		c.Logger = pkgLog.NewNop()
	}
	return nil
}

// ContextMessage is one prior conversation turn sent along with a chat message.
type ContextMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Message string           `json:"message"`
	Context []ContextMessage `json:"context"`
}

type addAgentRequest struct {
	AgentID string `json:"agentId"`
}

// ScheduleRequest is the body of a scheduler/create call.
type ScheduleRequest struct {
	Content        string `json:"content"`
	CronExpression string `json:"cronExpression"`
	Type           string `json:"type"`
	Recurring      bool   `json:"recurring"`
}

// Response is the decoded reply of any endpoint.
// Raw keeps every field the API returned, including success/message/error.
type Response struct {
	Success bool
	Message string
	Error   string
	Raw     map[string]any
}

type client struct {
	apiKey         string
	baseURL        string
	chatTimeout    time.Duration
	requestTimeout time.Duration
	limiter        *rate.Limiter
	httpClient     *http.Client
	l              pkgLog.Logger
}
