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

// HealthCheck pings the server and reports connection pool figures
func (c *Client) HealthCheck(ctx context.Context, timeout time.Duration) RedisHealthCheck {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	details := map[string]string{
		"host":     c.config.Host,
		"port":     strconv.Itoa(c.config.Port),
		"database": strconv.Itoa(c.config.Database),
	}

	status := StatusUp
	if err := c.Ping(ctx); err != nil {
		status = StatusDown
		details["last_error"] = err.Error()
	}

	stats := c.rdb.PoolStats()
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)

	return RedisHealthCheck{Status: status, Details: details}
}
