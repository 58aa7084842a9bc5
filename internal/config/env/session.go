package env

import (
	"fmt"
	"os"
	"time"

	"studyhub_backend/internal/config"
)

const (
	sessionTTLEnvName     = "SESSION_TTL"
	cookieDomainEnvName   = "SESSION_COOKIE_DOMAIN"
	appEnvName            = "APP_ENV"
	productionEnvironment = "production"

	// 30 дней по умолчанию
	defaultSessionTTL = 30 * 24 * time.Hour
)

type sessionConfig struct {
	ttl          time.Duration
	cookieDomain string
	cookieSecure bool
}

func NewSessionConfig() (config.SessionConfig, error) {
	ttl := defaultSessionTTL
	if raw := os.Getenv(sessionTTLEnvName); len(raw) > 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid session ttl: %w", err)
		}
		ttl = parsed
	}

	return &sessionConfig{
		ttl:          ttl,
		cookieDomain: os.Getenv(cookieDomainEnvName),
		cookieSecure: os.Getenv(appEnvName) == productionEnvironment,
	}, nil
}

func (cfg *sessionConfig) TTL() time.Duration {
	return cfg.ttl
}

func (cfg *sessionConfig) CookieDomain() string {
	return cfg.cookieDomain
}

func (cfg *sessionConfig) CookieSecure() bool {
	return cfg.cookieSecure
}
