package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"hearmeout/internal/domain"
)

// HistorySnapshotStore guarda la ventana de historial para restaurar sesiones.
type HistorySnapshotStore interface {
	Save(snap domain.SessionSnapshot, ttl time.Duration) error
	Load(sessionID string) (domain.SessionSnapshot, bool, error)
	Delete(sessionID string) error
}

type memorySnapshot struct {
	snap      domain.SessionSnapshot
	expiresAt time.Time
}

type memoryHistoryStore struct {
	mu    sync.Mutex
	items map[string]memorySnapshot
}

func NewMemoryHistoryStore() HistorySnapshotStore {
	return &memoryHistoryStore{
		items: make(map[string]memorySnapshot),
	}
}

func (s *memoryHistoryStore) Save(snap domain.SessionSnapshot, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := strings.TrimSpace(snap.Session.ID)
	if id == "" {
		return nil
	}
	snap.History = append([]domain.Turn{}, snap.History...)
	s.items[id] = memorySnapshot{snap: snap, expiresAt: time.Now().UTC().Add(ttl)}
	return nil
}

func (s *memoryHistoryStore) Load(sessionID string) (domain.SessionSnapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[sessionID]
	if !ok {
		return domain.SessionSnapshot{}, false, nil
	}
	if time.Now().UTC().After(item.expiresAt) {
		delete(s.items, sessionID)
		return domain.SessionSnapshot{}, false, nil
	}
	snap := item.snap
	snap.History = append([]domain.Turn{}, snap.History...)
	return snap, true, nil
}

func (s *memoryHistoryStore) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, sessionID)
	return nil
}

type redisKVClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisHistoryStore struct {
	client redisKVClient
	prefix string
}

func NewRedisHistoryStore(client *redis.Client) HistorySnapshotStore {
	if client == nil {
		return nil
	}
	return &redisHistoryStore{
		client: client,
		prefix: "session:snapshot:",
	}
}

func (s *redisHistoryStore) Save(snap domain.SessionSnapshot, ttl time.Duration) error {
	id := strings.TrimSpace(snap.Session.ID)
	if id == "" {
		return nil
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	return s.client.Set(ctx, s.prefix+id, payload, ttl).Err()
}

func (s *redisHistoryStore) Load(sessionID string) (domain.SessionSnapshot, bool, error) {
	if strings.TrimSpace(sessionID) == "" {
		return domain.SessionSnapshot{}, false, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	raw, err := s.client.Get(ctx, s.prefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.SessionSnapshot{}, false, nil
	}
	if err != nil {
		return domain.SessionSnapshot{}, false, err
	}
	var snap domain.SessionSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return domain.SessionSnapshot{}, false, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return snap, true, nil
}

func (s *redisHistoryStore) Delete(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	return s.client.Del(ctx, s.prefix+sessionID).Err()
}
