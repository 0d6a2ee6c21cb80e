package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Assistant
	Assistant AssistantConfig
	Memory    MemoryConfig
	Session   SessionConfig
	Voice     VoiceConfig

	// Remote collaborators
	Bhindi         BhindiConfig
	Chat           ChatConfig
	LLM            LLMConfig
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// APIKey protects /api/v1 when set.
	APIKey          string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type AssistantConfig struct {
	Name        string
	Timezone    string
	Personality string // jarvis | plain
}

type MemoryConfig struct {
	ContextWindow int
}

type SessionConfig struct {
	TTL             time.Duration
	MaxSessions     int
	RateLimitPerMin int
}

type VoiceConfig struct {
	Enabled bool
	Command string
	Rate    int
	Volume  float64
	// ListenCommand records one utterance and prints its transcript; empty disables /listen.
	ListenCommand string
	ListenTimeout time.Duration
}

type BhindiConfig struct {
	APIKey            string
	BaseURL           string
	ChatTimeout       time.Duration
	RequestTimeout    time.Duration
	RequestsPerSecond float64
}

// ChatConfig selects which collaborator answers general messages.
type ChatConfig struct {
	Backend string // bhindi | llm
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

const (
	ChatBackendBhindi = "bhindi"
	ChatBackendLLM    = "llm"
)

var (
	ErrMissingBhindiAPIKey = errors.New("bhindi api key is required (set BHINDI_API_KEY)")
	ErrUnknownChatBackend  = errors.New("unknown chat backend")
)

// dotenvFiles are loaded before viper reads the environment. Existing variables win.
var dotenvFiles = []string{".env.local", ".env"}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/jarvis/
func Load() (*Config, error) {
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error reading %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/jarvis/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.APIKey = v.GetString("http_server.api_key")
	cfg.HTTPServer.RateLimitPerMin = v.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Assistant
	cfg.Assistant.Name = v.GetString("assistant.name")
	cfg.Assistant.Timezone = v.GetString("assistant.timezone")
	cfg.Assistant.Personality = v.GetString("assistant.personality")
	cfg.Memory.ContextWindow = v.GetInt("memory.context_window")
	if window := v.GetInt("context_window"); window > 0 {
		cfg.Memory.ContextWindow = window
	}
	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.Session.MaxSessions = v.GetInt("session.max_sessions")
	cfg.Session.RateLimitPerMin = v.GetInt("session.rate_limit_per_min")

	cfg.Voice.Enabled = v.GetBool("voice.enabled")
	cfg.Voice.Command = v.GetString("voice.command")
	cfg.Voice.Rate = v.GetInt("voice.rate")
	cfg.Voice.Volume = v.GetFloat64("voice.volume")
	cfg.Voice.ListenCommand = v.GetString("voice.listen_command")
	cfg.Voice.ListenTimeout = v.GetDuration("voice.listen_timeout")

	// Remote collaborators
	cfg.Bhindi.APIKey = expandEnvVar(v, v.GetString("bhindi.api_key"))
	cfg.Bhindi.BaseURL = v.GetString("bhindi.base_url")
	cfg.Bhindi.ChatTimeout = v.GetDuration("bhindi.chat_timeout")
	cfg.Bhindi.RequestTimeout = v.GetDuration("bhindi.request_timeout")
	cfg.Bhindi.RequestsPerSecond = v.GetFloat64("bhindi.requests_per_second")
	cfg.Chat.Backend = v.GetString("chat.backend")

	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = v.GetString("telegram.secret_token")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	return cfg, nil
}

// Validate checks the settings the assistant cannot start without.
func (c *Config) Validate() error {
	if c.Bhindi.APIKey == "" {
		return ErrMissingBhindiAPIKey
	}

	switch c.Chat.Backend {
	case ChatBackendBhindi:
	case ChatBackendLLM:
		if err := validateLLMConfig(&c.LLM); err != nil {
			return fmt.Errorf("chat backend llm: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownChatBackend, c.Chat.Backend)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.rate_limit_per_min", 120)
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("assistant.name", "Jarvis")
	v.SetDefault("assistant.timezone", "Local")
	v.SetDefault("assistant.personality", "jarvis")
	v.SetDefault("memory.context_window", 10)
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.max_sessions", 1000)
	v.SetDefault("session.rate_limit_per_min", 30)

	v.SetDefault("voice.enabled", true)
	v.SetDefault("voice.command", "espeak")
	v.SetDefault("voice.rate", 180)
	v.SetDefault("voice.volume", 0.9)
	v.SetDefault("voice.listen_timeout", "5s")

	v.SetDefault("bhindi.base_url", "https://api.bhindi.io")
	v.SetDefault("bhindi.chat_timeout", "30s")
	v.SetDefault("bhindi.request_timeout", "10s")
	v.SetDefault("chat.backend", ChatBackendBhindi)

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 3)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}.
// An unresolved placeholder expands to "".
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
