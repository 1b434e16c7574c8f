package memory

import (
	"context"
	"sync"

	"gastos/internal/core"
)

// Store keeps the entry collection in process memory. It backs tests and
// throwaway sessions where nothing should survive the process.
type Store struct {
	mu      sync.Mutex
	entries []core.Entry
}

func New() *Store {
	return &Store{}
}

// NewWithEntries creates a store pre-populated with the given entries.
func NewWithEntries(entries []core.Entry) *Store {
	return &Store{entries: clone(entries)}
}

// Load returns a copy of the stored collection.
func (s *Store) Load(_ context.Context) ([]core.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.entries), nil
}

// Save replaces the stored collection.
func (s *Store) Save(_ context.Context, entries []core.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = clone(entries)
	return nil
}

// Len reports how many entries are currently stored.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func clone(in []core.Entry) []core.Entry {
	if in == nil {
		return nil
	}
	return append([]core.Entry(nil), in...)
}
