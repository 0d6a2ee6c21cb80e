package session

import "time"

const (
	DefaultMaxSessions = 1000
	DefaultTTL         = 30 * time.Minute

	LogPrefixProcess = "internal.session.Process"
	LogPrefixEvict   = "internal.session.evict"
)
