package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultListenHost   = "0.0.0.0"
	DefaultListenPort   = 5000
	DefaultMediaCommand = "media-control get"

	// SourceTimeout bounds the media detection call; a slow player reads as
	// stopped rather than blocking the request.
	SourceTimeout = 2 * time.Second

	// ProviderTimeout bounds each remote artwork lookup.
	ProviderTimeout = 3 * time.Second

	// ArtworkTimeout bounds downloading the image itself for color work.
	ArtworkTimeout = 5 * time.Second

	// CacheTTL is how long a provider answer, including a legitimate
	// "nothing found", stays valid.
	CacheTTL = time.Hour

	// TickInterval drives the watch client's poll loop; FetchInterval gates
	// how often a tick actually hits the server.
	TickInterval  = 2 * time.Second
	FetchInterval = 3 * time.Second
)

type Config struct {
	ListenHost    string
	ListenPort    int
	ServerURL     string
	MediaCommand  string
	MPRISEnabled  bool
	LastfmAPIKey  string
	ITunesEnabled bool
	LogLevel      string
}

func Load() *Config {
	// a .env file is optional and never overrides the real environment
	_ = godotenv.Load()

	port := DefaultListenPort
	if raw := os.Getenv("LISTEN_PORT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed < 65536 {
			port = parsed
		}
	}

	cfg := &Config{
		ListenHost:    getEnvOrDefault("LISTEN_HOST", DefaultListenHost),
		ListenPort:    port,
		MediaCommand:  getEnvOrDefault("MEDIA_COMMAND", DefaultMediaCommand),
		MPRISEnabled:  parseBool(getEnvOrDefault("MPRIS_ENABLED", "true")),
		LastfmAPIKey:  os.Getenv("LASTFM_API_KEY"),
		ITunesEnabled: parseBool(getEnvOrDefault("ITUNES_ENABLED", "true")),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
	}

	cfg.ServerURL = getEnvOrDefault("SERVER_URL", fmt.Sprintf("http://127.0.0.1:%d", cfg.ListenPort))

	return cfg
}

func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.ListenHost, c.ListenPort)
}

func getEnvOrDefault(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func parseBool(raw string) bool {
	return raw == "1" || raw == "true" || raw == "yes" || raw == "on"
}
