package router

import "strings"

// Classify returns the first intent in table order whose keywords occur in message.
func (r *KeywordRouter) Classify(message string) IntentResult {
	lower := strings.ToLower(message)
	for _, rule := range r.intents {
		if matchesAny(lower, rule.keywords) {
			return IntentResult{Intent: rule.label, Confidence: MatchedConfidence}
		}
	}
	return IntentResult{Intent: FallbackIntent, Confidence: FallbackConfidence}
}

// ResolveAgents returns every agent whose keywords occur in message.
func (r *KeywordRouter) ResolveAgents(message string) AgentSet {
	lower := strings.ToLower(message)
	agents := make(AgentSet)
	for _, rule := range r.agents {
		if matchesAny(lower, rule.keywords) {
			agents[rule.label] = struct{}{}
		}
	}
	return agents
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
