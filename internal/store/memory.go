package store

import (
	"sync"

	"bizbook/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// In-memory collection for the local directory variant
// ─────────────────────────────────────────────────────────────
//
// Holds records in local state only. Every mutation is a direct,
// synchronous change with no failure path and no persistence.

// MemoryStore is the backing collection of the local variant.
type MemoryStore struct {
	mu    sync.Mutex
	items []domain.Business
}

// NewMemoryStore creates a MemoryStore, optionally pre-seeded.
func NewMemoryStore(seed []domain.Business) *MemoryStore {
	s := &MemoryStore{}
	s.items = append(s.items, seed...)
	return s
}

// List returns a copy of the collection in insertion order.
func (s *MemoryStore) List() []domain.Business {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Business, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the record with the given id.
func (s *MemoryStore) Get(id int) (domain.Business, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.items {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Business{}, false
}

// NextID returns max(existing ids)+1, starting at 1 for an empty
// collection. Not race-safe across clients; the directory assumes a
// single operator.
func (s *MemoryStore) NextID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextIDLocked()
}

func (s *MemoryStore) nextIDLocked() int {
	max := 0
	for _, b := range s.items {
		if b.ID > max {
			max = b.ID
		}
	}
	return max + 1
}

// Add appends a record, assigning the next id when b.ID is zero.
// Returns the stored record.
func (s *MemoryStore) Add(b domain.Business) domain.Business {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == 0 {
		b.ID = s.nextIDLocked()
	}
	s.items = append(s.items, b)
	return b
}

// Replace swaps the record with matching id. Returns false when no
// record matches.
func (s *MemoryStore) Replace(b domain.Business) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == b.ID {
			s.items[i] = b
			return true
		}
	}
	return false
}

// Remove filters out the record with the given id.
func (s *MemoryStore) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// SetStatus patches the status of the one matching record, leaving
// every other field and record untouched.
func (s *MemoryStore) SetStatus(id int, status domain.Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Status = status
			return true
		}
	}
	return false
}

// Len returns the current collection size.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
