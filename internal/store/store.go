// Package store persists builds as opaque JSON blobs. The engine never sees
// storage; a serialize/deserialize cycle must hand back the build unchanged.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/spec-logic/speclogic-api/internal/models"
)

var ErrNotFound = errors.New("build not found")

// BuildStore saves and restores build snapshots by id.
type BuildStore interface {
	Save(ctx context.Context, build *models.Build) (string, error)
	Get(ctx context.Context, id string) (*models.Build, error)
	Delete(ctx context.Context, id string) error
}

// MemoryStore keeps serialized builds in process memory. It is the default
// when no Redis address is configured, and what the tests run against.
// Builds are stored as JSON so memory and Redis behave identically.
type MemoryStore struct {
	mu     sync.RWMutex
	builds map[string][]byte
}

func NewMemory() *MemoryStore {
	return &MemoryStore{builds: make(map[string][]byte)}
}

func (s *MemoryStore) Save(_ context.Context, build *models.Build) (string, error) {
	data, err := json.Marshal(build)
	if err != nil {
		return "", fmt.Errorf("store: encode build: %w", err)
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.builds[id] = data
	s.mu.Unlock()
	return id, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.Build, error) {
	s.mu.RLock()
	data, ok := s.builds[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	var build models.Build
	if err := json.Unmarshal(data, &build); err != nil {
		return nil, fmt.Errorf("store: decode build %s: %w", id, err)
	}
	return &build, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.builds[id]; !ok {
		return ErrNotFound
	}
	delete(s.builds, id)
	return nil
}

// RedisStore persists builds in Redis under a shared key prefix.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

const redisKeyPrefix = "speclogic:build:"

// NewRedis connects to the given address. A zero ttl keeps builds forever.
func NewRedis(addr string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

// Ping verifies the connection, for use at startup.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Save(ctx context.Context, build *models.Build) (string, error) {
	data, err := json.Marshal(build)
	if err != nil {
		return "", fmt.Errorf("store: encode build: %w", err)
	}

	id := uuid.NewString()
	if err := s.client.Set(ctx, redisKeyPrefix+id, data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store: save build %s: %w", id, err)
	}
	return id, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*models.Build, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: load build %s: %w", id, err)
	}

	var build models.Build
	if err := json.Unmarshal(data, &build); err != nil {
		return nil, fmt.Errorf("store: decode build %s: %w", id, err)
	}
	return &build, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, redisKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("store: delete build %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
