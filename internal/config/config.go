package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type LLMConfig struct {
	Provider        string `envconfig:"LLM_PROVIDER" default:"openai"`
	Model           string `envconfig:"LLM_MODEL"`
	OpenAIAPIKey    string `envconfig:"OPENAI_API_KEY"`
	AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY"`
	GeminiAPIKey    string `envconfig:"GEMINI_API_KEY"`
}

// APIKey returns the credential of the selected provider, empty when unset.
func (c LLMConfig) APIKey() string {
	switch strings.ToLower(c.Provider) {
	case "anthropic":
		return c.AnthropicAPIKey
	case "gemini":
		return c.GeminiAPIKey
	default:
		return c.OpenAIAPIKey
	}
}

type AppConfig struct {
	LLM LLMConfig

	AlphaVantageAPIKey string `envconfig:"ALPHA_VANTAGE_API_KEY"`
	FinnhubAPIKey      string `envconfig:"FINNHUB_API_KEY"`
	MassiveAPIKey      string `envconfig:"MASSIVE_API_KEY"`

	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"1h"`
	RedisURL string        `envconfig:"REDIS_URL"`

	DatabaseURL string `envconfig:"DATABASE_URL"`
	Port        string `envconfig:"PORT" default:"8080"`
	FrontendURL string `envconfig:"FRONTEND_URL"`

	SectorCount int           `envconfig:"SECTOR_COUNT" default:"5"`
	SectorDelay time.Duration `envconfig:"SECTOR_DELAY" default:"500ms"`
	SectorsFile string        `envconfig:"SECTORS_FILE"`
}

// Load reads .env when present, then the process environment.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
