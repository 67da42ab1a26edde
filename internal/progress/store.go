package progress

import "sync"

// Entry is one persisted flag, in stored order.
type Entry struct {
	Key       string
	Completed bool
}

// Store persists the ledger as a flat key to flag mapping.
type Store interface {
	// Load returns the persisted entries in stored order.
	Load() ([]Entry, error)
	// Update replaces the persisted entries with fn's result.
	// The read, fn and write happen atomically with respect to other writers.
	Update(fn func(current []Entry) []Entry) error
}

// MemoryStore is a Store that keeps entries in memory.
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry
	saves   int
	err     error
}

// NewMemoryStore creates a MemoryStore seeded with entries.
func NewMemoryStore(entries ...Entry) *MemoryStore {
	return &MemoryStore{entries: append([]Entry(nil), entries...)}
}

// FailWith makes subsequent Load and Update calls return err.
func (s *MemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Load returns a copy of the stored entries.
func (s *MemoryStore) Load() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return append([]Entry(nil), s.entries...), nil
}

// Update applies fn to the stored entries.
func (s *MemoryStore) Update(fn func(current []Entry) []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.entries = append([]Entry(nil), fn(append([]Entry(nil), s.entries...))...)
	s.saves++
	return nil
}

// Saves returns how many times Update has written.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
