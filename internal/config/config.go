package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL     = "http://localhost:8000"
	defaultTimeout     = 30 * time.Second
	defaultSessionPath = ".hostel/session.json"
)

type Config struct {
	BaseURL string

	// Per the backend contract: connect, read and write are each bounded.
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration

	// SessionBackend selects the session store: "file" (default) or "redis".
	SessionBackend string
	SessionPath    string

	RedisAddress  string
	RedisPassword string
	RedisDB       int

	// MetricsAddress, when set, exposes /metrics on that listen address.
	MetricsAddress string
}

func Load() *Config {
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	cfg := &Config{
		BaseURL:        envOr("HOSTEL_API_URL", defaultBaseURL),
		ConnectTimeout: envDuration("HOSTEL_CONNECT_TIMEOUT", defaultTimeout),
		ReadTimeout:    envDuration("HOSTEL_READ_TIMEOUT", defaultTimeout),
		WriteTimeout:   envDuration("HOSTEL_WRITE_TIMEOUT", defaultTimeout),
		SessionBackend: envOr("SESSION_BACKEND", "file"),
		SessionPath:    envOr("SESSION_PATH", defaultSessionPath),
		RedisAddress:   os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASS"),
		RedisDB:        redisDB,
		MetricsAddress: os.Getenv("METRICS_ADDR"),
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
