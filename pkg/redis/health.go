package redis

import (
	"context"
	"strconv"
	"time"
)

// RedisHealthCheck represents the health check response for Redis
type RedisHealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthChecker pings Redis and reports pool statistics.
type HealthChecker struct {
	client  *Client
	timeout time.Duration
}

// NewHealthChecker creates a new Redis health checker
func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{
		client:  client,
		timeout: 2 * time.Second,
	}
}

// Ping returns the ping error, bounded by the checker timeout.
func (h *HealthChecker) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	return h.client.Ping(ctx)
}

// HealthCheck pings Redis and reports the result along with connection details.
func (h *HealthChecker) HealthCheck(ctx context.Context) RedisHealthCheck {
	cfg := h.client.GetConfig()
	details := map[string]string{
		"host":     cfg.Host,
		"port":     strconv.Itoa(cfg.Port),
		"database": strconv.Itoa(cfg.Database),
	}

	status := StatusUp
	if err := h.Ping(ctx); err != nil {
		status = StatusDown
		details["error"] = err.Error()
	}

	stats := h.client.Stats()
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)

	return RedisHealthCheck{Status: status, Details: details}
}
