package orchestrator

// Log prefixes
const (
	LogPrefixProcessMessage = "internal.agent.orchestrator.ProcessMessage"
	LogPrefixRegisterAgents = "internal.agent.orchestrator.registerAgents"
	LogPrefixDispatch       = "internal.agent.orchestrator.dispatch"
)

// Leading phrases removed from a scheduling request, applied in this order.
var scheduleTriggers = []string{"remind me to", "remind me", "schedule", "set alarm"}

const (
	reminderPrefix    = "Reminder: "
	scheduledTemplate = "%s I've scheduled that for you, sir."

	dateTemplate = "Today is %s, sir."
	timeTemplate = "The time is %s, sir."
	dateLayout   = "Monday, January 02, 2006"
	timeLayout   = "03:04 PM"
	dateKeyword  = "date"
)

// Fallback texts when a collaborator omits message or error.
const (
	defaultScheduleError = "Unknown error"
	defaultSearchMessage = "Here is what I found."
	defaultSearchError   = "Search failed"
	defaultChatMessage   = "I understand, sir."
	defaultChatError     = "I could not process that"
	unexpectedError      = "Something unexpected happened"
)

// Metadata keys stored on assistant messages.
const (
	MetadataIntent  = "intent"
	MetadataSuccess = "success"
)

// suggestionBand is a half-open [startHour, endHour) window with its suggestion.
type suggestionBand struct {
	startHour int
	endHour   int
	context   string
	action    string
}

var suggestionBands = []suggestionBand{
	{startHour: 6, endHour: 9, context: "the morning hour", action: "check your schedule for today?"},
	{startHour: 12, endHour: 14, context: "the lunch hour", action: "take a break, sir?"},
	{startHour: 18, endHour: 20, context: "the evening", action: "review today's accomplishments?"},
}
