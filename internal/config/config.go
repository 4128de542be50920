package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	AppEnv          string
	LogLevel        string
	HTTPAddr        string
	DBConnString    string
	RedisAddr       string
	KafkaBrokers    []string
	KafkaTopic      string
	ShutdownTimeout time.Duration
	SessionTTL      time.Duration
	SubmitDelay     time.Duration
	AllowedOrigins  []string
	MenuFile        string
}

// FromEnv builds Config with defaults, overridden by environment variables.
// An empty DB_DSN, REDIS_ADDR or KAFKA_BROKERS switches that backend off.
func FromEnv() Config {
	return Config{
		AppEnv:          envOrDefault("APP_ENV", "dev"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		DBConnString:    os.Getenv("DB_DSN"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		KafkaBrokers:    envList("KAFKA_BROKERS", nil),
		KafkaTopic:      envOrDefault("KAFKA_TOPIC", "littlelemon.events"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		SessionTTL:      envDuration("SESSION_TTL_SECONDS", 3*time.Hour),
		SubmitDelay:     time.Duration(envInt("SUBMIT_DELAY_MS", 650)) * time.Millisecond,
		AllowedOrigins:  envList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		MenuFile:        os.Getenv("MENU_FILE"),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
