package bhindi

import "errors"

var (
	ErrMissingAPIKey    = errors.New("bhindi: API key is required")
	ErrUnexpectedStatus = errors.New("bhindi: unexpected status")
)
