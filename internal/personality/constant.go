package personality

import "errors"

const (
	StyleJarvis = "jarvis"
	StylePlain  = "plain"

	// prefixProbability is the chance a Jarvis reply gets a conversational prefix.
	prefixProbability = 0.4
)

var (
	ErrInvalidPhrases = errors.New("invalid phrase book")
	ErrUnknownStyle   = errors.New("unknown personality style")
)
