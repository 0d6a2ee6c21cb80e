package llmprovider

import (
	"errors"
	"fmt"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	// ErrInvalidRequest is returned for a request without messages.
	ErrInvalidRequest = errors.New("invalid request")
)

// ProviderError records which provider and model produced Err.
type ProviderError struct {
	Provider string
	Model    string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Model == "" {
		return fmt.Sprintf("llm %s: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("llm %s/%s: %v", e.Provider, e.Model, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
