package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Addr is the listen address for the HTTP/websocket server.
	Addr string
	// PublicBaseURL prefixes the join links handed to participants.
	PublicBaseURL string
	// DatabaseURL enables result persistence when set.
	DatabaseURL string
	// TurnSeconds is the default per-turn countdown for new sessions.
	TurnSeconds int
}

// Load reads .env if present, then the environment, falling back to
// defaults suitable for local development.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:          getenv("ADDR", ":8080"),
		PublicBaseURL: getenv("PUBLIC_BASE_URL", "http://localhost:8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		TurnSeconds:   getenvInt("TURN_SECONDS", 30),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
