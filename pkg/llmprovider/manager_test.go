package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jarvis-assistant/pkg/log"
)

// scriptedProvider fails its first failures calls, then answers with reply.
type scriptedProvider struct {
	name     string
	failures int
	reply    string
	noUsage  bool
	block    bool

	mu    sync.Mutex
	calls int
	reqs  []*Request
}

func (p *scriptedProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	p.mu.Lock()
	p.calls++
	p.reqs = append(p.reqs, req)
	call := p.calls
	p.mu.Unlock()

	if p.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if call <= p.failures {
		return nil, fmt.Errorf("%s: quota exhausted", p.name)
	}

	resp := &Response{
		Content:      TextMessage(roleAssistant, p.reply),
		ProviderName: p.name,
		ModelName:    p.name + "-model",
	}
	if !p.noUsage {
		resp.Usage = &Usage{InputTokens: 12, OutputTokens: 4, TotalTokens: 16}
	}
	return resp, nil
}

func (p *scriptedProvider) Name() string  { return p.name }
func (p *scriptedProvider) Model() string { return p.name + "-model" }

func (p *scriptedProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func chatRequest() *Request {
	system := TextMessage("system", "You are Jarvis, a concise personal assistant.")
	return &Request{
		SystemInstruction: &system,
		Messages: []Message{
			TextMessage("user", "what's on today?"),
			TextMessage(roleAssistant, "Nothing scheduled, sir."),
			TextMessage("user", "remind me to stretch at 6pm"),
		},
	}
}

func TestManager_ForwardsChatRequest(t *testing.T) {
	p := &scriptedProvider{name: "primary", reply: "Certainly, sir."}
	m := NewManager([]Provider{p}, &Config{RetryAttempts: 1}, log.NewNop())

	req := chatRequest()
	resp, err := m.GenerateContent(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Certainly, sir.", resp.Text())
	assert.Equal(t, "primary", resp.ProviderName)

	require.Len(t, p.reqs, 1)
	got := p.reqs[0]
	assert.Same(t, req, got)
	require.NotNil(t, got.SystemInstruction)
	assert.Equal(t, "You are Jarvis, a concise personal assistant.", got.SystemInstruction.Parts[0].Text)
	require.Len(t, got.Messages, 3)
	assert.Equal(t, roleAssistant, got.Messages[1].Role)
	assert.Equal(t, "remind me to stretch at 6pm", got.Messages[2].Parts[0].Text)
}

func TestManager_FallsBackToNextProvider(t *testing.T) {
	primary := &scriptedProvider{name: "primary", failures: 100}
	backup := &scriptedProvider{name: "backup", reply: "From the backup, sir."}
	m := NewManager([]Provider{primary, backup}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
	}, log.NewNop())

	resp, err := m.GenerateContent(context.Background(), chatRequest())
	require.NoError(t, err)
	assert.Equal(t, "From the backup, sir.", resp.Text())
	assert.Equal(t, 2, primary.callCount())
	assert.Equal(t, 1, backup.callCount())
}

func TestManager_RetriesBeforeFallback(t *testing.T) {
	primary := &scriptedProvider{name: "primary", failures: 1, reply: "Second time lucky, sir."}
	backup := &scriptedProvider{name: "backup", reply: "unused"}
	m := NewManager([]Provider{primary, backup}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      time.Millisecond,
	}, log.NewNop())

	resp, err := m.GenerateContent(context.Background(), chatRequest())
	require.NoError(t, err)
	assert.Equal(t, "Second time lucky, sir.", resp.Text())
	assert.Equal(t, 2, primary.callCount())
	assert.Zero(t, backup.callCount())
}

func TestManager_FallbackDisabled(t *testing.T) {
	primary := &scriptedProvider{name: "primary", failures: 100}
	backup := &scriptedProvider{name: "backup", reply: "unused"}
	m := NewManager([]Provider{primary, backup}, &Config{RetryAttempts: 1}, log.NewNop())

	_, err := m.GenerateContent(context.Background(), chatRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAllProvidersFailed))
	assert.Contains(t, err.Error(), "primary: quota exhausted")
	assert.Zero(t, backup.callCount())
}

func TestManager_AllProvidersFail(t *testing.T) {
	a := &scriptedProvider{name: "a", failures: 100}
	b := &scriptedProvider{name: "b", failures: 100}
	m := NewManager([]Provider{a, b}, &Config{FallbackEnabled: true, RetryAttempts: 1}, log.NewNop())

	_, err := m.GenerateContent(context.Background(), chatRequest())
	assert.True(t, errors.Is(err, ErrAllProvidersFailed))
	assert.Contains(t, err.Error(), "b: quota exhausted")
}

func TestManager_NoProviders(t *testing.T) {
	m := NewManager(nil, &Config{}, log.NewNop())

	_, err := m.GenerateContent(context.Background(), chatRequest())
	assert.True(t, errors.Is(err, ErrNoProvidersConfigured))
}

func TestManager_ZeroRetryAttemptsStillCalls(t *testing.T) {
	p := &scriptedProvider{name: "primary", reply: "ok"}
	m := NewManager([]Provider{p}, &Config{}, log.NewNop())

	_, err := m.GenerateContent(context.Background(), chatRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, p.callCount())
}

func TestManager_MissingUsage(t *testing.T) {
	p := &scriptedProvider{name: "primary", reply: "No meter on this one, sir.", noUsage: true}
	m := NewManager([]Provider{p}, &Config{RetryAttempts: 1}, log.NewNop())

	var resp *Response
	require.NotPanics(t, func() {
		var err error
		resp, err = m.GenerateContent(context.Background(), chatRequest())
		require.NoError(t, err)
	})
	assert.Nil(t, resp.Usage)
	assert.Equal(t, "No meter on this one, sir.", resp.Text())
}

func TestManager_TotalTimeout(t *testing.T) {
	slow := &scriptedProvider{name: "slow", block: true}
	backup := &scriptedProvider{name: "backup", reply: "too late"}
	m := NewManager([]Provider{slow, backup}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		MaxTotalTimeout: 30 * time.Millisecond,
	}, log.NewNop())

	start := time.Now()
	_, err := m.GenerateContent(context.Background(), chatRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAllProvidersFailed))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Less(t, time.Since(start), time.Second)
	assert.Zero(t, backup.callCount())
}

func TestManager_CancelDuringRetryDelay(t *testing.T) {
	p := &scriptedProvider{name: "primary", failures: 100}
	m := NewManager([]Provider{p}, &Config{RetryAttempts: 3, RetryDelay: time.Hour}, log.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := m.GenerateContent(ctx, chatRequest())
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, 1, p.callCount())
}
