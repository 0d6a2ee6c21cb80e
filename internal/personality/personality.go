package personality

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Formatter styles canonical assistant replies. Implementations are cosmetic
// and must not change the meaning of the text they wrap.
type Formatter interface {
	Greeting() string
	Acknowledge() string
	Thinking() string
	Error() string
	Format(response string) string
	ProactiveSuggestion(context string) string
}

// Phrases is the phrase book a Formatter draws from.
type Phrases struct {
	Greetings       []string `yaml:"greetings"`
	Acknowledgments []string `yaml:"acknowledgments"`
	Thinking        []string `yaml:"thinking"`
	Errors          []string `yaml:"errors"`
	Prefixes        []string `yaml:"prefixes"`
	Suggestions     []string `yaml:"suggestions"`
}

//go:embed phrases.yaml
var defaultPhrases []byte

// DefaultPhrases returns the built-in phrase book.
func DefaultPhrases() Phrases {
	p, err := ParsePhrases(defaultPhrases)
	if err != nil {
		panic(fmt.Sprintf("personality: embedded phrases are invalid: %v", err))
	}
	return p
}

// ParsePhrases decodes a YAML phrase book. Every section must be non-empty.
func ParsePhrases(data []byte) (Phrases, error) {
	var p Phrases
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Phrases{}, fmt.Errorf("%w: %v", ErrInvalidPhrases, err)
	}

	sections := map[string][]string{
		"greetings":       p.Greetings,
		"acknowledgments": p.Acknowledgments,
		"thinking":        p.Thinking,
		"errors":          p.Errors,
		"prefixes":        p.Prefixes,
		"suggestions":     p.Suggestions,
	}
	for name, phrases := range sections {
		if len(phrases) == 0 {
			return Phrases{}, fmt.Errorf("%w: section %q is empty", ErrInvalidPhrases, name)
		}
	}
	return p, nil
}

// New returns the formatter registered under name ("jarvis" or "plain").
func New(name string) (Formatter, error) {
	switch name {
	case StyleJarvis:
		return NewJarvis(DefaultPhrases()), nil
	case StylePlain, "":
		return NewPlain(DefaultPhrases()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
}
