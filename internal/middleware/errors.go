package middleware

import "errors"

var ErrRateLimited = errors.New("rate limit exceeded")
