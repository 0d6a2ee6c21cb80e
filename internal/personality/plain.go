package personality

import "fmt"

// Plain always picks the first phrase of each section and never rewrites replies.
type Plain struct {
	phrases Phrases
}

func NewPlain(phrases Phrases) *Plain {
	return &Plain{phrases: phrases}
}

func (p *Plain) Greeting() string    { return p.phrases.Greetings[0] }
func (p *Plain) Acknowledge() string { return p.phrases.Acknowledgments[0] }
func (p *Plain) Thinking() string    { return p.phrases.Thinking[0] }
func (p *Plain) Error() string       { return p.phrases.Errors[0] }

func (p *Plain) Format(response string) string { return response }

func (p *Plain) ProactiveSuggestion(context string) string {
	return fmt.Sprintf(p.phrases.Suggestions[0], context)
}
