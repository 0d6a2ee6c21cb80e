package session

import "errors"

var (
	ErrInvalidSessionID = errors.New("session id is empty")
	ErrEmptyMessage     = errors.New("message text is empty")
	ErrEmptyKey         = errors.New("preference key is empty")
	ErrRateLimited      = errors.New("too many messages for this session")
	ErrSessionNotFound  = errors.New("session not found")
)
