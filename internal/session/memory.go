package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	sess      Session
	expiresAt time.Time
}

// MemoryStore - хранилище сессий в памяти процесса.
// Запросы в gin обслуживаются параллельно, поэтому карта под RWMutex.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
	ttl  time.Duration

	stopSweep chan struct{}
	once      sync.Once
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		data:      make(map[string]memoryEntry),
		ttl:       ttl,
		stopSweep: make(chan struct{}),
	}
	go s.sweep()
	return s
}

func (s *MemoryStore) Create(_ context.Context, sess Session) (string, error) {
	id := uuid.NewString()
	s.mu.Lock()
	s.data[id] = memoryEntry{sess: sess, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return id, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (Session, error) {
	s.mu.RLock()
	entry, ok := s.data[id]
	s.mu.RUnlock()

	if !ok {
		return Session{}, ErrNotFound
	}
	if time.Now().After(entry.expiresAt) {
		// Ленивое удаление; фоновая уборка подчистит остальное
		s.mu.Lock()
		delete(s.data, id)
		s.mu.Unlock()
		return Session{}, ErrNotFound
	}
	return entry.sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.data, id)
	s.mu.Unlock()
	return nil
}

// Close останавливает фоновую уборку истекших сессий.
func (s *MemoryStore) Close() {
	s.once.Do(func() { close(s.stopSweep) })
}

func (s *MemoryStore) sweep() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.stopSweep:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, entry := range s.data {
				if now.After(entry.expiresAt) {
					delete(s.data, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
