package utils

import (
	"context"
	"fmt"
	"time"

	"wavehouse/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for admin session caching.
	AuthCacheClient *redis.Client
)

// RedisEnabled reports whether a Redis address is configured.
func RedisEnabled() bool {
	return config.AppConfig.RedisAddr != ""
}

func newRedisClient(db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

// InitCache initializes the generic Redis cache client.
func InitCache() error {
	client, err := newRedisClient(config.AppConfig.RedisCacheDB)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis (Cache): %w", err)
	}
	CacheClient = client
	return nil
}

// InitAuthCache initializes the Redis client for admin sessions.
func InitAuthCache() error {
	client, err := newRedisClient(config.AppConfig.RedisAuthDB)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis (Auth Cache): %w", err)
	}
	AuthCacheClient = client
	return nil
}

// RedisClients returns the initialized clients, for health checks and shutdown.
func RedisClients() []*redis.Client {
	var clients []*redis.Client
	for _, c := range []*redis.Client{CacheClient, AuthCacheClient} {
		if c != nil {
			clients = append(clients, c)
		}
	}
	return clients
}

// CloseCache closes every initialized client.
func CloseCache() {
	for _, c := range RedisClients() {
		_ = c.Close()
	}
}
