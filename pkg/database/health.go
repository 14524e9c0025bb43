package database

import (
	"context"
	"time"
)

// PoolHealth is a point-in-time view of connectivity and pool pressure,
// logged at startup and served to liveness probes.
type PoolHealth struct {
	Healthy      bool          `json:"healthy"`
	PingTime     time.Duration `json:"ping_time"`
	OpenConns    int           `json:"open_conns"`
	InUse        int           `json:"in_use"`
	Idle         int           `json:"idle"`
	WaitCount    int64         `json:"wait_count"`
	WaitTime     time.Duration `json:"wait_time"`
	MaxOpenConns int           `json:"max_open_conns"`
}

// Health pings the database and snapshots the pool counters. The
// snapshot is returned even when the ping fails, so callers can log
// pool pressure alongside the error.
func (c *Client) Health(ctx context.Context) (PoolHealth, error) {
	start := time.Now()
	err := c.db.PingContext(ctx)

	stats := c.db.Stats()
	health := PoolHealth{
		Healthy:      err == nil,
		PingTime:     time.Since(start),
		OpenConns:    stats.OpenConnections,
		InUse:        stats.InUse,
		Idle:         stats.Idle,
		WaitCount:    stats.WaitCount,
		WaitTime:     stats.WaitDuration,
		MaxOpenConns: stats.MaxOpenConnections,
	}
	return health, err
}
