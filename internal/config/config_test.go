package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HistoryWindow != 5 || !cfg.QuickIntentsEnabled || cfg.HostedTimeout != 8*time.Second {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.IntensityTierPolicy != TierPolicyLast || cfg.Responder != ResponderLocal {
		t.Fatalf("unexpected policy/responder %q/%q", cfg.IntensityTierPolicy, cfg.Responder)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("HISTORY_WINDOW", "8")
	t.Setenv("INTENSITY_TIER_POLICY", " MAX ")
	t.Setenv("RESPONDER", "hosted")
	t.Setenv("HOSTED_RESPONSE_URL", "http://localhost:9000/generate-response")
	t.Setenv("HOSTED_RESPONSE_TIMEOUT", "3s")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HistoryWindow != 8 || cfg.IntensityTierPolicy != TierPolicyMax || cfg.HostedTimeout != 3*time.Second {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	base := func() Config {
		return Config{HistoryWindow: 5, IntensityTierPolicy: TierPolicyLast, Responder: ResponderLocal}
	}
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"window below one", func(c *Config) { c.HistoryWindow = 0 }},
		{"unknown tier policy", func(c *Config) { c.IntensityTierPolicy = "first" }},
		{"unknown responder", func(c *Config) { c.Responder = "magic" }},
		{"hosted without url", func(c *Config) { c.Responder = ResponderHosted }},
		{"openai without key", func(c *Config) { c.Responder = ResponderOpenAI }},
		{"translation without key", func(c *Config) { c.TranslationEnabled = true }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}

	cfg := base()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}
