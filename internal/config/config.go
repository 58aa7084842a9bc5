package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
	CORSAllowedOrigins() []string
}

type PGConfig interface {
	DSN() string
}

type SessionConfig interface {
	TTL() time.Duration
	CookieDomain() string
	CookieSecure() bool
}

type CacheConfig interface {
	DefaultTTL() time.Duration
	SummaryTTL() time.Duration
	SweepInterval() time.Duration
}

type CanvasConfig interface {
	RequestTimeout() time.Duration
}

type GradeScaleConfig interface {
	Points(grade string) (float64, bool)
	DefaultTargetGPA() float64
}
