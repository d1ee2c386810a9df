package history

import (
	"sync"

	"tokengrip/internal/domain"
)

// Store keeps the tokens decoded during a session
type Store interface {
	Add(entry domain.HistoryEntry)
	All() []domain.HistoryEntry
	Len() int
}

// MemoryStore is an in-memory implementation of Store bounded to a fixed number of entries
type MemoryStore struct {
	mu      sync.RWMutex
	entries []domain.HistoryEntry // oldest first
	limit   int
}

// NewMemoryStore creates a store keeping at most limit entries (limit <= 0 means unbounded)
func NewMemoryStore(limit int) *MemoryStore {
	return &MemoryStore{limit: limit}
}

// Add records entry, replacing an earlier record of the same token and
// dropping the oldest entries past the limit
func (s *MemoryStore) Add(entry domain.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.Raw == entry.Raw {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
	s.entries = append(s.entries, entry)

	if s.limit > 0 && len(s.entries) > s.limit {
		s.entries = append([]domain.HistoryEntry(nil), s.entries[len(s.entries)-s.limit:]...)
	}
}

// All returns a copy of the entries, newest first
func (s *MemoryStore) All() []domain.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.HistoryEntry, len(s.entries))
	for i, e := range s.entries {
		result[len(s.entries)-1-i] = e
	}
	return result
}

// Len returns the number of entries
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
