package admin

import (
	"context"
	"sync"
	"time"

	"wavehouse/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore tracks live admin sessions by token hash.
type SessionStore interface {
	Save(ctx context.Context, tokenHash string, ttl time.Duration) error
	Exists(ctx context.Context, tokenHash string) (bool, error)
	Delete(ctx context.Context, tokenHash string) error
}

// RedisSessionStore keeps sessions in the auth cache DB.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (r *RedisSessionStore) Save(ctx context.Context, tokenHash string, ttl time.Duration) error {
	return r.client.Set(ctx, utils.AdminSessionPrefix+tokenHash, time.Now().UTC().Format(time.RFC3339), ttl).Err()
}

func (r *RedisSessionStore) Exists(ctx context.Context, tokenHash string) (bool, error) {
	n, err := r.client.Exists(ctx, utils.AdminSessionPrefix+tokenHash).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RedisSessionStore) Delete(ctx context.Context, tokenHash string) error {
	return r.client.Del(ctx, utils.AdminSessionPrefix+tokenHash).Err()
}

// MemorySessionStore keeps sessions in process. Sessions do not survive a restart.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	now      func() time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: map[string]time.Time{}, now: time.Now}
}

func (m *MemorySessionStore) Save(_ context.Context, tokenHash string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for k, exp := range m.sessions {
		if now.After(exp) {
			delete(m.sessions, k)
		}
	}
	m.sessions[tokenHash] = now.Add(ttl)
	return nil
}

func (m *MemorySessionStore) Exists(_ context.Context, tokenHash string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	exp, ok := m.sessions[tokenHash]
	if !ok {
		return false, nil
	}
	if m.now().After(exp) {
		delete(m.sessions, tokenHash)
		return false, nil
	}
	return true, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, tokenHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, tokenHash)
	return nil
}
