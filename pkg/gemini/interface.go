package gemini

import "context"

// IGemini generates replies with one Gemini model.
// Implementations are safe for concurrent use.
type IGemini interface {
	Generate(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

var _ IGemini = (*geminiImpl)(nil)

// New validates cfg and returns a client bound to cfg.Model.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
