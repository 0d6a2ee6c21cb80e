package agent

import "sort"

// ActiveSet tracks the agents registered for a session.
// Agents are only ever added; there is no removal path.
type ActiveSet struct {
	agents map[string]struct{}
}

// NewActiveSet creates an empty ActiveSet.
func NewActiveSet() *ActiveSet {
	return &ActiveSet{
		agents: make(map[string]struct{}),
	}
}

// Add marks id as active. It reports false when id was already present.
func (s *ActiveSet) Add(id string) bool {
	if _, ok := s.agents[id]; ok {
		return false
	}
	s.agents[id] = struct{}{}
	return true
}

// Has reports whether id is active.
func (s *ActiveSet) Has(id string) bool {
	_, ok := s.agents[id]
	return ok
}

// Len returns the number of active agents.
func (s *ActiveSet) Len() int {
	return len(s.agents)
}

// List returns all active agents in lexical order.
func (s *ActiveSet) List() []string {
	ids := make([]string, 0, len(s.agents))
	for id := range s.agents {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Missing returns the ids from wanted that are not active yet, in lexical order.
func (s *ActiveSet) Missing(wanted []string) []string {
	var missing []string
	for _, id := range wanted {
		if !s.Has(id) {
			missing = append(missing, id)
		}
	}
	sort.Strings(missing)
	return missing
}
