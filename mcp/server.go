// Package mcp runs a Model Context Protocol server that exposes Rhasspy
// operations as tools so LLM hosts can drive the voice assistant.
package mcp

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/voxmill/rhasspy-go/client"
	"github.com/voxmill/rhasspy-go/mcp/handlers"
)

// config holds all settings for the MCP server.
type config struct {
	APIURL          string
	LogLevel        zerolog.Level
	ServerName      string
	ServerVersion   string
	HTTPAddr        string
	ShutdownTimeout time.Duration
	HTTPReadTimeout time.Duration
	HTTPIdleTimeout time.Duration
}

// loadConfig loads configuration from environment variables and flags.
func loadConfig() *config {
	cfg := &config{
		APIURL:          getEnvOrDefault("RHASSPY_API_URL", "http://localhost:12101/api"),
		ServerName:      getEnvOrDefault("MCP_SERVER_NAME", "rhasspy-mcp-server"),
		ServerVersion:   getEnvOrDefault("MCP_SERVER_VERSION", "0.1.0"),
		HTTPAddr:        getEnvOrDefault("MCP_HTTP_ADDR", ":12180"),
		ShutdownTimeout: parseDurationOrDefault("SHUTDOWN_TIMEOUT", "10s"),
		HTTPReadTimeout: parseDurationOrDefault("HTTP_READ_TIMEOUT", "5s"),
		HTTPIdleTimeout: parseDurationOrDefault("HTTP_IDLE_TIMEOUT", "120s"),
	}

	cfg.LogLevel = parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info"))

	// Command line flags override env vars.
	var rawLogLevel string
	flag.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "Base URL of the Rhasspy server API")
	flag.StringVar(&rawLogLevel, "log-level", cfg.LogLevel.String(), "Log level: debug|info|warn|error")
	flag.Parse()

	if rawLogLevel != "" {
		cfg.LogLevel = parseLogLevel(rawLogLevel)
	}

	return cfg
}

func (c *config) initLogger() {
	zerolog.SetGlobalLevel(c.LogLevel)
	log.Logger = log.With().Caller().Logger()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(envKey, defaultValue string) time.Duration {
	if value := os.Getenv(envKey); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	d, _ := time.ParseDuration(defaultValue)
	return d
}

func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

func registerHandler(s *server.MCPServer, handler toolRegisterer, name string) {
	if err := handler.RegisterTools(s); err != nil {
		log.Fatal().Err(err).Msgf("Failed to register %s tools", name)
	}
}

// shouldUseStdio picks the transport: stdio by default (launched processes),
// HTTP when MCP_TRANSPORT=http (manual/Docker startup).
func shouldUseStdio() bool {
	return strings.ToLower(os.Getenv("MCP_TRANSPORT")) != "http"
}

// RunMCPServer starts the MCP server.
func RunMCPServer() error {
	cfg := loadConfig()
	cfg.initLogger()

	log.Info().Str("api_url", cfg.APIURL).Msg("Creating Rhasspy client")
	rhasspyClient := client.New(cfg.APIURL)

	s := server.NewMCPServer(
		cfg.ServerName,
		cfg.ServerVersion,
		server.WithToolCapabilities(true),
	)

	registerHandler(s, handlers.NewIntentHandler(rhasspyClient), "intent")
	registerHandler(s, handlers.NewSpeechHandler(rhasspyClient), "speech")
	registerHandler(s, handlers.NewAdminHandler(rhasspyClient), "admin")

	if shouldUseStdio() {
		log.Info().Msg("Starting Rhasspy MCP server (stdio transport)")
		if err := server.ServeStdio(s); err != nil {
			log.Fatal().Err(err).Msg("Stdio server error")
		}
		return rhasspyClient.Close()
	}

	log.Info().Str("addr", cfg.HTTPAddr).Msg("Starting Rhasspy MCP server (Streamable HTTP)")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	shutdownComplete := make(chan struct{})

	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(30*time.Second),
	)

	srv := &http.Server{
		Addr:        cfg.HTTPAddr,
		Handler:     streamSrv,
		ReadTimeout: cfg.HTTPReadTimeout,
		// No write deadline: required for SSE streaming.
		WriteTimeout: 0,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		defer close(shutdownComplete)

		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during HTTP server shutdown")
		}
		if err := streamSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during MCP server shutdown")
		}
		if err := rhasspyClient.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing Rhasspy client")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	<-shutdownComplete
	return nil
}
