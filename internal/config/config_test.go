package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"BPSIM_PORT", "NATS_URL", "LOG_LEVEL",
		"ANTHROPIC_API_KEY", "BPSIM_MODEL", "BPSIM_DEFAULT_SKILL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != 8780 {
		t.Errorf("expected default port 8780, got %d", cfg.Port)
	}
	if cfg.NatsURL != "" {
		t.Errorf("expected empty default nats url, got %s", cfg.NatsURL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.AnthropicModel != "claude-sonnet-4-20250514" {
		t.Errorf("expected default model, got %s", cfg.AnthropicModel)
	}
	if cfg.DefaultSkill != "intermediate" {
		t.Errorf("expected default skill intermediate, got %s", cfg.DefaultSkill)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("BPSIM_PORT", "9999")
	t.Setenv("NATS_URL", "nats://custom:4222")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test-key")
	t.Setenv("BPSIM_MODEL", "claude-test-model")
	t.Setenv("BPSIM_DEFAULT_SKILL", "advanced")

	cfg := Load()

	if cfg.Port != 9999 {
		t.Errorf("expected port 9999, got %d", cfg.Port)
	}
	if cfg.NatsURL != "nats://custom:4222" {
		t.Errorf("expected custom nats url, got %s", cfg.NatsURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug log level, got %s", cfg.LogLevel)
	}
	if cfg.AnthropicAPIKey != "sk-test-key" {
		t.Errorf("expected custom api key, got %s", cfg.AnthropicAPIKey)
	}
	if cfg.AnthropicModel != "claude-test-model" {
		t.Errorf("expected custom model, got %s", cfg.AnthropicModel)
	}
	if cfg.DefaultSkill != "advanced" {
		t.Errorf("expected custom skill, got %s", cfg.DefaultSkill)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("BPSIM_PORT", "notanumber")

	cfg := Load()

	if cfg.Port != 8780 {
		t.Errorf("expected default port on invalid value, got %d", cfg.Port)
	}
}
