package repository

import (
	"context"
	"sync"

	"legalease-backend/models"

	"github.com/google/uuid"
)

// MemoryStore is the default in-process analysis store. Entries evicted
// from the bounded recent list are dropped entirely.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*models.StoredAnalysis
	recent  []uuid.UUID // newest first
}

// NewMemoryStore creates an empty in-memory analysis store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[uuid.UUID]*models.StoredAnalysis),
	}
}

// Put stores an analysis and prepends it to the recent list, evicting the
// oldest entry once the list exceeds RecentLimit. Re-putting an existing
// id moves it to the front instead of duplicating it.
func (s *MemoryStore) Put(ctx context.Context, stored *models.StoredAnalysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[stored.ID] = stored
	for i, id := range s.recent {
		if id == stored.ID {
			s.recent = append(s.recent[:i], s.recent[i+1:]...)
			break
		}
	}
	s.recent = append([]uuid.UUID{stored.ID}, s.recent...)
	if len(s.recent) > RecentLimit {
		evicted := s.recent[RecentLimit:]
		s.recent = s.recent[:RecentLimit]
		for _, id := range evicted {
			delete(s.entries, id)
		}
	}
	return nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}

// Get retrieves an analysis by id
func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (*models.StoredAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return stored, nil
}

// Recent returns the bounded most-recent list, newest first
func (s *MemoryStore) Recent(ctx context.Context) ([]*models.StoredAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.StoredAnalysis, 0, len(s.recent))
	for _, id := range s.recent {
		if stored, ok := s.entries[id]; ok {
			out = append(out, stored)
		}
	}
	return out, nil
}

// MostRecent returns the newest stored analysis
func (s *MemoryStore) MostRecent(ctx context.Context) (*models.StoredAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.recent) == 0 {
		return nil, ErrNotFound
	}
	stored, ok := s.entries[s.recent[0]]
	if !ok {
		return nil, ErrNotFound
	}
	return stored, nil
}
