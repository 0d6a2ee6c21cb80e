package bhindi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

func newClient(cfg Config) *client {
	c := &client{
		l:              cfg.Logger,
		apiKey:         cfg.APIKey,
		baseURL:        cfg.BaseURL,
		chatTimeout:    cfg.ChatTimeout,
		requestTimeout: cfg.RequestTimeout,
		httpClient:     cfg.HTTPClient,
	}
	if cfg.RequestsPerSecond > 0 {
		burst := int(cfg.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}
	return c
}

// Chat sends a message with the recent conversation.
func (c *client) Chat(ctx context.Context, message string, history []ContextMessage) (*Response, error) {
	if history == nil {
		history = []ContextMessage{}
	}
	return c.post(ctx, pathChat, chatRequest{Message: message, Context: history}, c.chatTimeout)
}

// AddAgent enables agentID for the account.
func (c *client) AddAgent(ctx context.Context, agentID string) (*Response, error) {
	return c.post(ctx, pathAddAgent, addAgentRequest{AgentID: agentID}, c.requestTimeout)
}

// CreateSchedule creates a reminder or recurring job.
func (c *client) CreateSchedule(ctx context.Context, req ScheduleRequest) (*Response, error) {
	return c.post(ctx, pathCreateSchedule, req, c.requestTimeout)
}

// Search enables the search agent, whatever it answers, and then chats the query.
// A failed registration is logged; the agent is often enabled already.
func (c *client) Search(ctx context.Context, query string) (*Response, error) {
	if _, err := c.AddAgent(ctx, SearchAgentID); err != nil {
		c.l.Warnf(ctx, "%s: enable %s: %v", LogPrefixSearch, SearchAgentID, err)
	}
	return c.Chat(ctx, searchPrefix+query, nil)
}

func (c *client) post(ctx context.Context, path string, payload any, timeout time.Duration) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("bhindi: rate limiter: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("bhindi: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("bhindi: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("bhindi: failed to call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w %d on %s: %s", ErrUnexpectedStatus, resp.StatusCode, path, string(raw))
	}

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("bhindi: failed to decode response: %w", err)
	}

	return toResponse(raw), nil
}

func toResponse(raw map[string]any) *Response {
	r := &Response{Raw: raw}
	r.Success, _ = raw["success"].(bool)
	r.Message, _ = raw["message"].(string)
	r.Error, _ = raw["error"].(string)
	return r
}
