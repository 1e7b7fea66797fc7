package booking

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"soloapp/models"
)

// SessionStore keeps booking sessions between flow steps. Sessions expire
// after a TTL so abandoned flows clean themselves up.
type SessionStore interface {
	Save(ctx context.Context, session *models.BookingSession) error
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Delete(ctx context.Context, sessionID string) error
}

type memoryEntry struct {
	session  models.BookingSession
	expireAt time.Time
}

// MemoryStore is the in-process default store.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memoryEntry
}

// NewMemoryStore returns a MemoryStore whose sessions expire after ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
	}
}

func (m *MemoryStore) Save(_ context.Context, session *models.BookingSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.SessionID] = memoryEntry{
		session:  *session,
		expireAt: time.Now().Add(m.ttl),
	}
	return nil
}

func (m *MemoryStore) Get(_ context.Context, sessionID string) (*models.BookingSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.sessions[sessionID]
	if !ok || time.Now().After(entry.expireAt) {
		delete(m.sessions, sessionID)
		return nil, ErrSessionNotFound
	}
	session := entry.session
	return &session, nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

// RedisStore keeps sessions in Redis so a flow can span processes.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisStore returns a RedisStore with the given TTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: client, TTL: ttl}
}

func sessionKey(sessionID string) string {
	return "booking:session:" + sessionID
}

func (r *RedisStore) Save(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, sessionKey(session.SessionID), data, r.TTL).Err()
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := r.Client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session models.BookingSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return r.Client.Del(ctx, sessionKey(sessionID)).Err()
}
