package memory

import "maps"

// AddMessage appends a message and drops the oldest entries beyond twice the context window.
func (m *SessionMemory) AddMessage(role Role, content string, metadata map[string]any) {
	meta := make(map[string]any, len(metadata))
	maps.Copy(meta, metadata)

	m.history = append(m.history, Message{
		Role:      role,
		Content:   content,
		Timestamp: m.now(),
		Metadata:  meta,
	})

	if limit := m.contextWindow * 2; len(m.history) > limit {
		kept := make([]Message, limit)
		copy(kept, m.history[len(m.history)-limit:])
		m.history = kept
	}
}

// GetContext returns the last contextWindow messages, oldest first, without metadata.
func (m *SessionMemory) GetContext() []ContextMessage {
	start := max(len(m.history)-m.contextWindow, 0)

	out := make([]ContextMessage, 0, len(m.history)-start)
	for _, msg := range m.history[start:] {
		out = append(out, ContextMessage{Role: msg.Role, Content: msg.Content})
	}
	return out
}

// History returns a copy of the retained history.
func (m *SessionMemory) History() []Message {
	out := make([]Message, len(m.history))
	copy(out, m.history)
	return out
}

// AddPreference stores value under key, replacing any previous value.
func (m *SessionMemory) AddPreference(key string, value any) {
	m.preferences[key] = value
}

// GetPreference returns the value stored under key, or def when absent.
func (m *SessionMemory) GetPreference(key string, def any) any {
	if v, ok := m.preferences[key]; ok {
		return v
	}
	return def
}

// AddTask stamps the task with the current time and appends it.
func (m *SessionMemory) AddTask(task Task) Task {
	task.CreatedAt = m.now()
	m.tasks = append(m.tasks, task)
	return task
}

// CompleteTask removes every task with the given id. Unknown ids are ignored.
func (m *SessionMemory) CompleteTask(id string) {
	kept := m.tasks[:0]
	for _, t := range m.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	clear(m.tasks[len(kept):])
	m.tasks = kept
}

// ActiveTasks returns a copy of the active task list.
func (m *SessionMemory) ActiveTasks() []Task {
	out := make([]Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}

// GetSummary reports the live session counters.
func (m *SessionMemory) GetSummary() Summary {
	return Summary{
		SessionDuration:    m.now().Sub(m.startedAt),
		MessagesExchanged:  len(m.history),
		ActiveTasks:        len(m.tasks),
		PreferencesLearned: len(m.preferences),
	}
}

// Clear empties history and active tasks. Preferences survive a clear.
func (m *SessionMemory) Clear() {
	m.history = nil
	m.tasks = nil
}
