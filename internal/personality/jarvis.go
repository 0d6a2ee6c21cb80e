package personality

import (
	"fmt"
	"math/rand/v2"
	"unicode"
	"unicode/utf8"
)

// Jarvis picks phrases at random and occasionally prefixes replies.
type Jarvis struct {
	phrases Phrases
	rng     *rand.Rand
}

// JarvisOption customises a Jarvis formatter.
type JarvisOption func(*Jarvis)

// WithRand sets the random source, mainly for deterministic tests.
func WithRand(rng *rand.Rand) JarvisOption {
	return func(j *Jarvis) {
		j.rng = rng
	}
}

func NewJarvis(phrases Phrases, opts ...JarvisOption) *Jarvis {
	j := &Jarvis{
		phrases: phrases,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

func (j *Jarvis) Greeting() string    { return j.pick(j.phrases.Greetings) }
func (j *Jarvis) Acknowledge() string { return j.pick(j.phrases.Acknowledgments) }
func (j *Jarvis) Thinking() string    { return j.pick(j.phrases.Thinking) }
func (j *Jarvis) Error() string       { return j.pick(j.phrases.Errors) }

// Format sometimes prepends a prefix, lower-casing the reply's first letter to keep the sentence flowing.
func (j *Jarvis) Format(response string) string {
	if response == "" || j.rng.Float64() >= prefixProbability {
		return response
	}
	first, size := utf8.DecodeRuneInString(response)
	return j.pick(j.phrases.Prefixes) + string(unicode.ToLower(first)) + response[size:]
}

func (j *Jarvis) ProactiveSuggestion(context string) string {
	return fmt.Sprintf(j.pick(j.phrases.Suggestions), context)
}

func (j *Jarvis) pick(phrases []string) string {
	return phrases[j.rng.IntN(len(phrases))]
}
