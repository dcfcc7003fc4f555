package middleware

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SimulationConfig tunes the artificial network conditions the API applies
// to every request, mirroring what a flaky real-world backend feels like.
type SimulationConfig struct {
	MinLatency  time.Duration
	MaxLatency  time.Duration
	FailureRate float64
}

// Simulation delays each request by a uniform random latency and fails a
// configurable fraction of them with a 500 before the handler runs.
func Simulation(cfg SimulationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		spread := cfg.MaxLatency - cfg.MinLatency
		delay := cfg.MinLatency
		if spread > 0 {
			delay += time.Duration(rand.Int63n(int64(spread)))
		}
		time.Sleep(delay)

		if cfg.FailureRate > 0 && rand.Float64() < cfg.FailureRate {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Network error occurred"})
			return
		}
		c.Next()
	}
}
