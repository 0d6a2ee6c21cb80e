package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jarvis-assistant/config"
	bhindiGateway "jarvis-assistant/internal/gateway/bhindi"
	llmGateway "jarvis-assistant/internal/gateway/llm"
	"jarvis-assistant/internal/personality"
	pkgLog "jarvis-assistant/pkg/log"
)

func baseConfig() *config.Config {
	return &config.Config{
		Assistant: config.AssistantConfig{Name: "Jarvis", Timezone: "UTC", Personality: "plain"},
		Memory:    config.MemoryConfig{ContextWindow: 4},
		Bhindi:    config.BhindiConfig{APIKey: "key"},
		Chat:      config.ChatConfig{Backend: config.ChatBackendBhindi},
	}
}

func TestNewParserFallsBackToUTC(t *testing.T) {
	cfg := baseConfig()
	cfg.Assistant.Timezone = "Mars/Olympus_Mons"

	parser := NewParser(context.Background(), cfg, pkgLog.NewNop())
	assert.Equal(t, time.UTC, parser.Location())
}

func TestNewDepsRemoteOnly(t *testing.T) {
	ctx := context.Background()
	cfg := baseConfig()
	parser := NewParser(ctx, cfg, pkgLog.NewNop())

	deps, err := NewDeps(ctx, cfg, pkgLog.NewNop(), parser)
	require.NoError(t, err)

	assert.IsType(t, &bhindiGateway.Gateway{}, deps.Chat)
	assert.IsType(t, &bhindiGateway.Gateway{}, deps.Scheduler)
	assert.IsType(t, &bhindiGateway.Gateway{}, deps.Search)
}

func TestNewDepsRequiresAPIKey(t *testing.T) {
	ctx := context.Background()
	cfg := baseConfig()
	cfg.Bhindi.APIKey = ""

	_, err := NewDeps(ctx, cfg, pkgLog.NewNop(), NewParser(ctx, cfg, pkgLog.NewNop()))
	assert.Error(t, err)
}

func TestNewDepsLLMChat(t *testing.T) {
	ctx := context.Background()
	cfg := baseConfig()
	cfg.Chat.Backend = config.ChatBackendLLM
	cfg.LLM = config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 1, APIKey: "g", Model: "gemini-2.5-flash"},
		},
		RetryAttempts: 1,
		RetryDelay:    "10ms",
	}

	deps, err := NewDeps(ctx, cfg, pkgLog.NewNop(), NewParser(ctx, cfg, pkgLog.NewNop()))
	require.NoError(t, err)
	assert.IsType(t, &llmGateway.ChatCompleter{}, deps.Chat)
	assert.IsType(t, &bhindiGateway.Gateway{}, deps.Search)

	cfg.LLM.Providers = nil
	_, err = NewDeps(ctx, cfg, pkgLog.NewNop(), NewParser(ctx, cfg, pkgLog.NewNop()))
	assert.Error(t, err)
}

func TestNewDepsCalendarUnavailable(t *testing.T) {
	ctx := context.Background()
	cfg := baseConfig()
	cfg.GoogleCalendar.CredentialsPath = t.TempDir() + "/missing.json"

	deps, err := NewDeps(ctx, cfg, pkgLog.NewNop(), NewParser(ctx, cfg, pkgLog.NewNop()))
	require.NoError(t, err)
	assert.IsType(t, &bhindiGateway.Gateway{}, deps.Scheduler)
}

func TestNewFactory(t *testing.T) {
	ctx := context.Background()
	cfg := baseConfig()
	parser := NewParser(ctx, cfg, pkgLog.NewNop())
	deps, err := NewDeps(ctx, cfg, pkgLog.NewNop(), parser)
	require.NoError(t, err)

	factory, err := NewFactory(cfg, pkgLog.NewNop(), deps, parser)
	require.NoError(t, err)

	a, b := factory("a"), factory("b")
	assert.NotSame(t, a, b)
	assert.Equal(t, 4, a.Memory().ContextWindow())
	assert.IsType(t, &personality.Plain{}, a.Formatter())

	cfg.Assistant.Personality = "pirate"
	_, err = NewFactory(cfg, pkgLog.NewNop(), deps, parser)
	assert.ErrorIs(t, err, personality.ErrUnknownStyle)
}
