package llmprovider_test

import (
	"context"
	"errors"
	"testing"

	"jarvis-assistant/config"
	"jarvis-assistant/pkg/llmprovider"
	"jarvis-assistant/pkg/log"
)

func TestInitializeProviders(t *testing.T) {
	ctx := context.Background()
	l := log.NewNop()

	tests := []struct {
		name    string
		cfg     *config.LLMConfig
		wantErr bool
		want    []string
	}{
		{
			name: "valid config",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "gemini", Enabled: true, Priority: 1, APIKey: "test-key", Model: "gemini-2.5-flash"},
				},
			},
			want: []string{"gemini-2.5-flash"},
		},
		{
			name:    "no providers",
			cfg:     &config.LLMConfig{},
			wantErr: true,
		},
		{
			name: "all providers disabled",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "gemini", Enabled: false, Priority: 1, APIKey: "test-key", Model: "gemini-2.5-flash"},
				},
			},
			wantErr: true,
		},
		{
			name: "missing API key",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "gemini", Enabled: true, Priority: 1, Model: "gemini-2.5-flash"},
				},
			},
			wantErr: true,
		},
		{
			name: "unknown provider is skipped",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "mystery", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
					{Name: "gemini", Enabled: true, Priority: 2, APIKey: "k", Model: "gemini-2.5-pro"},
				},
			},
			want: []string{"gemini-2.5-pro"},
		},
		{
			name: "ordered by priority",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "gemini", Enabled: true, Priority: 10, APIKey: "k", Model: "gemini-2.5-pro"},
					{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", Model: "gemini-2.5-flash", Timeout: "5s"},
				},
			},
			want: []string{"gemini-2.5-flash", "gemini-2.5-pro"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers, err := llmprovider.InitializeProviders(ctx, tt.cfg, l)
			if (err != nil) != tt.wantErr {
				t.Fatalf("InitializeProviders() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(providers) != len(tt.want) {
				t.Fatalf("expected %d providers, got %d", len(tt.want), len(providers))
			}
			for i, model := range tt.want {
				if providers[i].Model() != model {
					t.Errorf("provider %d: expected model %s, got %s", i, model, providers[i].Model())
				}
			}
		})
	}
}

func TestInitializeProviders_NoneEnabledIsSentinel(t *testing.T) {
	_, err := llmprovider.InitializeProviders(context.Background(), &config.LLMConfig{}, log.NewNop())
	if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestNewManagerFromConfig(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", Model: "gemini-2.5-flash"},
		},
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      "250ms",
		MaxTotalTimeout: "30s",
	}

	manager, err := llmprovider.NewManagerFromConfig(context.Background(), cfg, log.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if manager == nil {
		t.Fatal("Manager should not be nil")
	}

	cfg.RetryDelay = "soon"
	if _, err := llmprovider.NewManagerFromConfig(context.Background(), cfg, log.NewNop()); err == nil {
		t.Fatal("expected error for invalid retry delay")
	}
}
