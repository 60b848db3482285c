package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

const (
	TierPolicyLast = "last"
	TierPolicyMax  = "max"

	ResponderLocal  = "local"
	ResponderHosted = "hosted"
	ResponderOpenAI = "openai"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort            string        `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL         string        `env:"DATABASE_URL"`
	RedisAddr           string        `env:"REDIS_ADDR"`
	RedisPassword       string        `env:"REDIS_PASSWORD"`
	RedisDB             int           `env:"REDIS_DB" envDefault:"0"`
	HistoryWindow       int           `env:"HISTORY_WINDOW" envDefault:"5"`
	DefaultLanguage     string        `env:"DEFAULT_LANGUAGE" envDefault:"en-US"`
	QuickIntentsEnabled bool          `env:"QUICK_INTENTS_ENABLED" envDefault:"true"`
	IntensityTierPolicy string        `env:"INTENSITY_TIER_POLICY" envDefault:"last"`
	Responder           string        `env:"RESPONDER" envDefault:"local"`
	HostedResponseURL   string        `env:"HOSTED_RESPONSE_URL"`
	HostedResponseKey   string        `env:"HOSTED_RESPONSE_KEY"`
	HostedTimeout       time.Duration `env:"HOSTED_RESPONSE_TIMEOUT" envDefault:"8s"`
	OpenAIAPIKey        string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL       string        `env:"OPENAI_BASE_URL"`
	OpenAIModel         string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	TranslationEnabled  bool          `env:"TRANSLATION_ENABLED" envDefault:"false"`
	SessionSecret       string        `env:"SESSION_SECRET"`
	SessionTTL          time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	TurnRateLimit       int           `env:"TURN_RATE_LIMIT" envDefault:"30"`
	TurnRateWindow      time.Duration `env:"TURN_RATE_WINDOW" envDefault:"1m"`
	SnapshotTTL         time.Duration `env:"SNAPSHOT_TTL" envDefault:"24h"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate revisa combinaciones que env no puede expresar con tags.
func (c *Config) Validate() error {
	if c.HistoryWindow < 1 {
		return fmt.Errorf("HISTORY_WINDOW must be >= 1, got %d", c.HistoryWindow)
	}
	c.IntensityTierPolicy = strings.ToLower(strings.TrimSpace(c.IntensityTierPolicy))
	switch c.IntensityTierPolicy {
	case TierPolicyLast, TierPolicyMax:
	default:
		return fmt.Errorf("INTENSITY_TIER_POLICY must be %q or %q, got %q", TierPolicyLast, TierPolicyMax, c.IntensityTierPolicy)
	}
	c.Responder = strings.ToLower(strings.TrimSpace(c.Responder))
	switch c.Responder {
	case ResponderLocal:
	case ResponderHosted:
		if strings.TrimSpace(c.HostedResponseURL) == "" {
			return fmt.Errorf("HOSTED_RESPONSE_URL is required when RESPONDER=%s", ResponderHosted)
		}
	case ResponderOpenAI:
		if strings.TrimSpace(c.OpenAIAPIKey) == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when RESPONDER=%s", ResponderOpenAI)
		}
	default:
		return fmt.Errorf("RESPONDER must be one of local, hosted, openai; got %q", c.Responder)
	}
	if c.TranslationEnabled && strings.TrimSpace(c.OpenAIAPIKey) == "" {
		return fmt.Errorf("OPENAI_API_KEY is required when TRANSLATION_ENABLED=true")
	}
	return nil
}
