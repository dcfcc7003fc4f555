package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "talentflow.db", cfg.DatabasePath)
	assert.True(t, cfg.SimulateLatency)
	assert.Equal(t, 200*time.Millisecond, cfg.MinLatency)
	assert.Equal(t, 1200*time.Millisecond, cfg.MaxLatency)
	assert.Equal(t, 0.08, cfg.FailureRate)
	assert.Equal(t, []string{"John Smith", "Sarah Johnson", "Mike Chen", "Emma Davis"}, cfg.KnownUsers)
	assert.True(t, cfg.SeedOnStart)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("SIMULATE_LATENCY", "false")
	t.Setenv("SIMULATE_FAILURE_RATE", "0.5")
	t.Setenv("SIMULATE_MIN_LATENCY", "10ms")
	t.Setenv("KNOWN_USERS", "Alice Adams, Bob Brown")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.False(t, cfg.SimulateLatency)
	assert.Equal(t, 0.5, cfg.FailureRate)
	assert.Equal(t, 10*time.Millisecond, cfg.MinLatency)
	assert.Equal(t, []string{"Alice Adams", "Bob Brown"}, cfg.KnownUsers)
}

func TestLoadConfigIgnoresUnparseableValues(t *testing.T) {
	t.Setenv("SIMULATE_FAILURE_RATE", "lots")
	t.Setenv("SIMULATE_MAX_LATENCY", "soon")
	t.Setenv("KNOWN_USERS", " , ,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 0.08, cfg.FailureRate)
	assert.Equal(t, 1200*time.Millisecond, cfg.MaxLatency)
	assert.Len(t, cfg.KnownUsers, 4)
}
