package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds application configuration. Values come from environment
// variables with the prefix "RHASSPY_", e.g. RHASSPY_API_URL.
type Config struct {
	APIURL         string        `envconfig:"API_URL"         default:"http://localhost:12101/api"`
	LogLevel       string        `envconfig:"LOG_LEVEL"       default:"info"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
}

// Load populates Config from environment variables (prefix RHASSPY_).
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("RHASSPY", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Init initializes logging from the loaded configuration.
func (c *Config) Init() {
	InitLogger()
	SetLogLevel(c.Level())

	log.Info().
		Str("api_url", c.APIURL).
		Dur("request_timeout", c.RequestTimeout).
		Str("log_level", c.LogLevel).
		Msg("Application configuration loaded")
}

// Level parses the configured log level, defaulting to info.
func (c *Config) Level() zerolog.Level {
	switch c.LogLevel {
	case "debug", "DEBUG":
		return zerolog.DebugLevel
	case "info", "INFO":
		return zerolog.InfoLevel
	case "warn", "WARN":
		return zerolog.WarnLevel
	case "error", "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
