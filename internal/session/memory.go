package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/al-qunnut/TicketFlow/internal/models"
)

// MemoryStore keeps sessions in a mutex-guarded map. Sessions do not survive
// a process restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: map[string]*Record{}}
}

func (s *MemoryStore) Create(ctx context.Context, user models.Identity) (string, error) {
	id := uuid.NewString()
	rec := &Record{
		Token:     uuid.NewString(),
		User:      user,
		ExpiresAt: time.Now().Add(TTL),
	}
	s.mu.Lock()
	s.sessions[id] = rec
	s.mu.Unlock()
	return id, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Record, error) {
	s.mu.RLock()
	rec, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if time.Now().After(rec.ExpiresAt) {
		_ = s.Destroy(ctx, id)
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (s *MemoryStore) Destroy(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) SetFlash(ctx context.Context, id string, f Flash) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.sessions[id]; ok {
		rec.Flash = &f
	}
	return nil
}

func (s *MemoryStore) PopFlash(ctx context.Context, id string) (*Flash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.sessions[id]
	if !ok || rec.Flash == nil {
		return nil, nil
	}
	f := *rec.Flash
	rec.Flash = nil
	return &f, nil
}
