package resultstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/uspp-raketa/vertexsim/pkg/compare"
)

// MemoryStore keeps reports in process memory. It is the default backend
// for local runs and tests; reports do not survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

// Put stores a report under its ID.
func (s *MemoryStore) Put(ctx context.Context, rep *compare.Report) error {
	if rep.ID == "" {
		return fmt.Errorf("put report: empty ID")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rep.ID] = Record{Report: rep, StoredAt: time.Now().UTC()}
	return nil
}

// Get retrieves a stored report.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return &rec, nil
}

// Len reports the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close(ctx context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
