package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Database  string    `json:"database"`
	Redis     []bool    `json:"redis,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// Healthy reports whether every configured dependency answered.
func (h HealthStatus) Healthy() bool {
	if h.Database == "error" {
		return false
	}
	for _, ok := range h.Redis {
		if !ok {
			return false
		}
	}
	return true
}

// HealthMonitor periodically pings the database and Redis and keeps the last snapshot.
type HealthMonitor struct {
	pingDB       func(ctx context.Context) error // nil when running on the in-memory store
	redisClients []*redis.Client

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(pingDB func(ctx context.Context) error, redisClients []*redis.Client) *HealthMonitor {
	return &HealthMonitor{pingDB: pingDB, redisClients: redisClients}
}

// Status returns latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check runs one round of checks and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	status := HealthStatus{Database: "memory", CheckedAt: time.Now().UTC()}
	if m.pingDB != nil {
		status.Database = "ok"
		if err := m.pingDB(ctx); err != nil {
			status.Database = "error"
		}
	}
	for _, client := range m.redisClients {
		status.Redis = append(status.Redis, client.Ping(ctx).Err() == nil)
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start checks immediately and then every interval until ctx is cancelled.
func (m *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	m.Check(ctx)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
