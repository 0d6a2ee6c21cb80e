package llmprovider

import (
	"context"
	"fmt"
	"time"

	"jarvis-assistant/pkg/log"
)

const (
	LogPrefixGenerate = "pkg.llmprovider.Manager.GenerateContent"
)

// Manager tries providers in priority order, retrying each one before falling back.
type Manager struct {
	providers []Provider
	config    *Config
	l         log.Logger
}

type Config struct {
	FallbackEnabled bool
	// RetryAttempts is the number of calls per provider; values below 1 mean one call.
	RetryAttempts int
	// RetryDelay grows linearly: attempt n waits n*RetryDelay.
	RetryDelay time.Duration
	// MaxTotalTimeout bounds the whole chain; 0 leaves only the caller's deadline.
	MaxTotalTimeout time.Duration
}

func NewManager(providers []Provider, config *Config, l log.Logger) *Manager {
	return &Manager{
		providers: providers,
		config:    config,
		l:         l,
	}
}

// GenerateContent returns the first successful response.
// The error wraps ErrAllProvidersFailed and the last provider error.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for i, p := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w after %d provider(s): %w", ErrAllProvidersFailed, i, err)
		}

		resp, err := m.generateWithRetry(ctx, p, req)
		if err == nil {
			m.logSuccess(ctx, p, resp)
			return resp, nil
		}

		m.l.Warnf(ctx, "%s: %s/%s failed: %v", LogPrefixGenerate, p.Name(), p.Model(), err)
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

func (m *Manager) generateWithRetry(ctx context.Context, p Provider, req *Request) (*Response, error) {
	attempts := max(m.config.RetryAttempts, 1)

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * m.config.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := p.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func (m *Manager) logSuccess(ctx context.Context, p Provider, resp *Response) {
	if resp == nil || resp.Usage == nil {
		m.l.Infof(ctx, "%s: %s/%s ok", LogPrefixGenerate, p.Name(), p.Model())
		return
	}
	m.l.Infof(ctx, "%s: %s/%s ok input_tokens=%d output_tokens=%d", LogPrefixGenerate,
		p.Name(), p.Model(), resp.Usage.InputTokens, resp.Usage.OutputTokens)
}
