package router

// Router classifies messages and works out which agents they need.
type Router interface {
	Classify(message string) IntentResult
	ResolveAgents(message string) AgentSet
}

// KeywordRouter is a deterministic Router backed by static keyword tables.
type KeywordRouter struct {
	intents []keywordRule[Intent]
	agents  []keywordRule[string]
}

var _ Router = (*KeywordRouter)(nil)

// New creates a KeywordRouter over the built-in tables.
func New() *KeywordRouter {
	return &KeywordRouter{
		intents: intentRules,
		agents:  agentRules,
	}
}
