package session

import (
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgLog "jarvis-assistant/pkg/log"
)

type manager struct {
	l       pkgLog.Logger
	factory Factory
	cfg     Config

	// mu serialises get-or-create so a session is never built twice.
	mu       sync.Mutex
	sessions *expirable.LRU[string, *entry]
}

var _ UseCase = (*manager)(nil)

func New(l pkgLog.Logger, factory Factory, cfg Config) UseCase {
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	m := &manager{
		l:       l,
		factory: factory,
		cfg:     cfg,
	}
	m.sessions = expirable.NewLRU[string, *entry](cfg.MaxSessions, m.onEvict, cfg.TTL)
	return m
}

func (m *manager) newLimiter() *rate.Limiter {
	if m.cfg.RateLimitPerMin <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := m.cfg.RateLimitPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(float64(m.cfg.RateLimitPerMin)/60.0), burst)
}
