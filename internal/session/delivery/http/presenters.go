package http

import (
	"strings"

	"jarvis-assistant/internal/agent/orchestrator"
	"jarvis-assistant/internal/memory"
	"jarvis-assistant/internal/session"
	"jarvis-assistant/pkg/response"
)

// --- Request DTOs ---

type messageReq struct {
	SessionID string `json:"-"`
	Text      string `json:"text" binding:"required,max=4000"`
}

func (r messageReq) validate() error {
	if strings.TrimSpace(r.SessionID) == "" {
		return errSessionIDRequired
	}
	if strings.TrimSpace(r.Text) == "" {
		return session.ErrEmptyMessage
	}
	return nil
}

// ---

type preferenceReq struct {
	SessionID string `json:"-"`
	Key       string `json:"key"   binding:"required,max=128"`
	Value     any    `json:"value"`
}

func (r preferenceReq) validate() error {
	if strings.TrimSpace(r.SessionID) == "" {
		return errSessionIDRequired
	}
	return nil
}

// ---

type taskReq struct {
	SessionID string         `json:"-"`
	ID        string         `json:"id"     binding:"max=128"`
	Fields    map[string]any `json:"fields"`
}

func (r taskReq) validate() error {
	if strings.TrimSpace(r.SessionID) == "" {
		return errSessionIDRequired
	}
	return nil
}

func (r taskReq) toTask() memory.Task {
	return memory.Task{ID: r.ID, Fields: r.Fields}
}

// --- Response DTOs ---

type messageResp struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func newMessageResp(res orchestrator.ProcessResult) messageResp {
	return messageResp{
		Success: res.Success,
		Message: res.Message,
		Data:    res.Data,
	}
}

type suggestionResp struct {
	Suggestion *string `json:"suggestion"`
}

func newSuggestionResp(text string, ok bool) suggestionResp {
	if !ok {
		return suggestionResp{}
	}
	return suggestionResp{Suggestion: &text}
}

type taskResp struct {
	ID        string            `json:"id"`
	CreatedAt response.DateTime `json:"created_at"`
	Fields    map[string]any    `json:"fields,omitempty"`
}

func newTaskResp(t memory.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		CreatedAt: response.DateTime(t.CreatedAt),
		Fields:    t.Fields,
	}
}

type summaryResp struct {
	SessionDurationSeconds int64      `json:"session_duration_seconds"`
	MessagesExchanged      int        `json:"messages_exchanged"`
	ActiveTasks            int        `json:"active_tasks"`
	PreferencesLearned     int        `json:"preferences_learned"`
	ActiveAgents           []string   `json:"active_agents"`
	Tasks                  []taskResp `json:"tasks"`
}

func newSummaryResp(s session.Summary) summaryResp {
	tasks := make([]taskResp, len(s.Tasks))
	for i, t := range s.Tasks {
		tasks[i] = newTaskResp(t)
	}
	agents := s.ActiveAgents
	if agents == nil {
		agents = []string{}
	}
	return summaryResp{
		SessionDurationSeconds: int64(s.SessionDuration.Seconds()),
		MessagesExchanged:      s.MessagesExchanged,
		ActiveTasks:            s.ActiveTasks,
		PreferencesLearned:     s.PreferencesLearned,
		ActiveAgents:           agents,
		Tasks:                  tasks,
	}
}
