package env

import (
	"net"
	"os"
	"strings"

	"studyhub_backend/internal/config"
)

const (
	httpHostEnvName    = "HTTP_HOST"
	httpPortEnvName    = "HTTP_PORT"
	corsOriginsEnvName = "CORS_ALLOWED_ORIGINS"

	defaultHTTPPort = "8080"

	// Dev сервер фронтенда
	defaultCORSOrigin = "http://localhost:3000"
)

type httpConfig struct {
	host        string
	port        string
	corsOrigins []string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	host := os.Getenv(httpHostEnvName)

	port := os.Getenv(httpPortEnvName)
	if len(port) == 0 {
		port = defaultHTTPPort
	}

	// Cookie-аутентификация требует явного списка origin'ов, "*" с
	// credentials браузеры не принимают
	origins := []string{defaultCORSOrigin}
	if raw := os.Getenv(corsOriginsEnvName); raw != "" {
		origins = origins[:0]
		for _, origin := range strings.Split(raw, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	return &httpConfig{
		host:        host,
		port:        port,
		corsOrigins: origins,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.host, cfg.port)
}

func (cfg *httpConfig) CORSAllowedOrigins() []string {
	return cfg.corsOrigins
}
