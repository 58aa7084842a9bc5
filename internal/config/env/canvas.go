package env

import (
	"fmt"
	"os"
	"time"

	"studyhub_backend/internal/config"
)

const (
	canvasTimeoutEnvName = "CANVAS_REQUEST_TIMEOUT"

	defaultCanvasTimeout = 10 * time.Second
)

type canvasConfig struct {
	requestTimeout time.Duration
}

func NewCanvasConfig() (config.CanvasConfig, error) {
	timeout := defaultCanvasTimeout
	if raw := os.Getenv(canvasTimeoutEnvName); len(raw) > 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid canvas request timeout: %w", err)
		}
		timeout = parsed
	}

	return &canvasConfig{
		requestTimeout: timeout,
	}, nil
}

func (cfg *canvasConfig) RequestTimeout() time.Duration {
	return cfg.requestTimeout
}
