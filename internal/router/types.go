package router

import "sort"

// Intent represents the coarse purpose of a user message.
type Intent string

const (
	IntentSchedule Intent = "schedule"
	IntentSearch   Intent = "search"
	IntentWeather  Intent = "weather"
	IntentTime     Intent = "time"
	IntentTask     Intent = "task"
	IntentQuestion Intent = "question"
	IntentGeneral  Intent = "general"
)

// IntentResult is the output of Classify.
type IntentResult struct {
	Intent     Intent  `json:"intent"`
	Confidence float64 `json:"confidence"` // 0-1
}

// AgentSet is an unordered set of agent identifiers.
type AgentSet map[string]struct{}

// Has reports whether id is in the set.
func (s AgentSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the identifiers in lexical order.
func (s AgentSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// keywordRule pairs a label with the substrings that select it.
type keywordRule[L any] struct {
	label    L
	keywords []string
}
