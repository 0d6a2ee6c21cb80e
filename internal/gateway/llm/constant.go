package llm

import "errors"

const (
	DefaultAssistantName = "Jarvis"

	LogPrefixChat = "internal.gateway.llm.Chat"

	dateFormatISO = "2006-01-02"
)

const systemPromptTemplate = `You are %s, a composed and courteous personal assistant.
Address the user as "sir". Answer in one to three sentences unless asked for detail.
You cannot create reminders or search the web yourself; other parts of the system handle those requests.`

const timeContextTemplate = `

[CURRENT TIME]
- Now: %s (%s)
- Tomorrow: %s
- This week: %s to %s`

var ErrEmptyResponse = errors.New("empty LLM response")
