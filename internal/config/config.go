package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port            int
	NatsURL         string
	LogLevel        string
	AnthropicAPIKey string
	AnthropicModel  string
	DefaultSkill    string
}

func Load() Config {
	return Config{
		Port:            envInt("BPSIM_PORT", 8780),
		NatsURL:         envStr("NATS_URL", ""),
		LogLevel:        envStr("LOG_LEVEL", "info"),
		AnthropicAPIKey: envStr("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  envStr("BPSIM_MODEL", "claude-sonnet-4-20250514"),
		DefaultSkill:    envStr("BPSIM_DEFAULT_SKILL", "intermediate"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
