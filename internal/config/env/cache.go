package env

import (
	"fmt"
	"os"
	"time"

	"studyhub_backend/internal/config"
)

const (
	cacheTTLEnvName        = "CACHE_TTL"
	cacheSummaryTTLEnvName = "CACHE_SUMMARY_TTL"
	cacheSweepEnvName      = "CACHE_SWEEP_INTERVAL"

	defaultCacheTTL      = 5 * time.Minute
	defaultSummaryTTL    = time.Minute
	defaultSweepInterval = time.Hour
)

type cacheConfig struct {
	defaultTTL    time.Duration
	summaryTTL    time.Duration
	sweepInterval time.Duration
}

func NewCacheConfig() (config.CacheConfig, error) {
	cfg := &cacheConfig{
		defaultTTL:    defaultCacheTTL,
		summaryTTL:    defaultSummaryTTL,
		sweepInterval: defaultSweepInterval,
	}

	durations := []struct {
		envName string
		target  *time.Duration
	}{
		{cacheTTLEnvName, &cfg.defaultTTL},
		{cacheSummaryTTLEnvName, &cfg.summaryTTL},
		{cacheSweepEnvName, &cfg.sweepInterval},
	}

	for _, d := range durations {
		raw := os.Getenv(d.envName)
		if len(raw) == 0 {
			continue
		}
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", d.envName, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("%s must be positive", d.envName)
		}
		*d.target = parsed
	}

	return cfg, nil
}

func (cfg *cacheConfig) DefaultTTL() time.Duration {
	return cfg.defaultTTL
}

func (cfg *cacheConfig) SummaryTTL() time.Duration {
	return cfg.summaryTTL
}

func (cfg *cacheConfig) SweepInterval() time.Duration {
	return cfg.sweepInterval
}
