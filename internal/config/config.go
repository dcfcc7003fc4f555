package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenAddr   string
	DatabasePath string

	// Network simulation applied by the API middleware.
	SimulateLatency bool
	MinLatency      time.Duration
	MaxLatency      time.Duration
	FailureRate     float64

	// Team members that can be @mentioned in candidate notes.
	KnownUsers []string

	SeedOnStart bool
}

func LoadConfig() (*Config, error) {
	config := &Config{
		ListenAddr:   getEnvString("LISTEN_ADDR", ":8080"),
		DatabasePath: getEnvString("DATABASE_PATH", "talentflow.db"),

		SimulateLatency: getEnvBool("SIMULATE_LATENCY", true),
		MinLatency:      getEnvDuration("SIMULATE_MIN_LATENCY", 200*time.Millisecond),
		MaxLatency:      getEnvDuration("SIMULATE_MAX_LATENCY", 1200*time.Millisecond),
		FailureRate:     getEnvFloat("SIMULATE_FAILURE_RATE", 0.08),

		KnownUsers: getEnvList("KNOWN_USERS", []string{
			"John Smith", "Sarah Johnson", "Mike Chen", "Emma Davis",
		}),

		SeedOnStart: getEnvBool("SEED_ON_START", true),
	}

	return config, nil
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	if value, exists := os.LookupEnv(key); exists {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
