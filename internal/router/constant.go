package router

// Confidence values for keyword matches.
const (
	MatchedConfidence  = 0.8
	FallbackConfidence = 0.5
	FallbackIntent     = IntentGeneral
)

// Agent identifiers understood by the remote assistant API.
const (
	AgentPerplexity = "perplexity"
	AgentScheduler  = "bhindi-scheduler-v2"
	AgentWeather    = "open-weather"
	AgentGmail      = "google-gmail"
	AgentCalculator = "calculator"
	AgentTime       = "time"
)

// intentRules is evaluated in order; the first match wins.
var intentRules = []keywordRule[Intent]{
	{IntentSchedule, []string{"remind", "schedule", "set alarm", "wake me", "meeting"}},
	{IntentSearch, []string{"search", "find", "look up", "what is", "who is", "google"}},
	{IntentWeather, []string{"weather", "temperature", "forecast"}},
	{IntentTime, []string{"time", "date", "what day"}},
	{IntentTask, []string{"do", "execute", "perform", "run", "create"}},
	{IntentQuestion, []string{"?", "how", "why", "when", "where", "what", "who"}},
}

// agentRules is evaluated in full; every match contributes its agent.
var agentRules = []keywordRule[string]{
	{AgentPerplexity, []string{"search", "find", "look up", "google"}},
	{AgentScheduler, []string{"remind", "schedule", "alarm", "meeting"}},
	{AgentWeather, []string{"weather", "temperature", "forecast"}},
	{AgentGmail, []string{"email", "send mail", "gmail"}},
	{AgentCalculator, []string{"calculate", "math", "compute"}},
	{AgentTime, []string{"time", "date", "timezone"}},
}
