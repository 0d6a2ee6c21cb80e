package telegram

const (
	sessionIDFormat = "telegram_%d"

	commandStart  = "/start"
	commandHelp   = "/help"
	commandStatus = "/status"
	commandReset  = "/reset"

	introMessage = "I am at your service. Ask me anything, have me search the web, " +
		"or set reminders such as \"remind me to call mum every day at 6pm\"."
	helpMessage = "Just talk to me, sir. A few things I understand:\n" +
		"- remind me to <something> at 9am tomorrow\n" +
		"- search for <topic>\n" +
		"- what time is it / what is the date\n\n" +
		"/status shows this session, /reset clears our conversation."
	noSessionMessage   = "We have not spoken yet in this session, sir. Say hello to begin."
	resetMessage       = "Conversation cleared, sir. Your preferences are retained."
	voiceMessage       = "I cannot listen to voice notes here yet, sir. Please type your request."
	rateLimitedMessage = "One moment, sir. You are sending messages faster than I can keep up."
	failureMessage     = "I apologize, sir, something went wrong while handling that. Please try again."
	statusTemplate     = "Session active for %s.\nMessages exchanged: %d\nActive tasks: %d\nPreferences learned: %d\nActive agents: %s"
)
