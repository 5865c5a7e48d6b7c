package storage

import (
	"fmt"
	"sync"
)

// MemoryStore implements Store using an in-memory map (not persistent).
// Runs are kept encoded so callers never share state with the store.
type MemoryStore struct {
	runs map[string][]byte
	mu   sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{runs: make(map[string][]byte)}
}

func (m *MemoryStore) SaveRun(run *Run) error {
	data, err := encodeRun(run)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[run.ID] = data
	return nil
}

func (m *MemoryStore) GetRun(id string) (*Run, error) {
	m.mu.RLock()
	data, exists := m.runs[id]
	m.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	run, err := decodeRun(data)
	if err != nil {
		return nil, err
	}
	if err := checkVersion(run); err != nil {
		return nil, err
	}
	return run, nil
}

func (m *MemoryStore) ListRuns() ([]*Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	runs := make([]*Run, 0, len(m.runs))
	for _, data := range m.runs {
		run, err := decodeRun(data)
		if err != nil {
			return nil, err
		}
		if checkVersion(run) != nil {
			continue
		}
		runs = append(runs, run)
	}
	sortNewestFirst(runs)
	return runs, nil
}

func (m *MemoryStore) DeleteRun(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.runs[id]; !exists {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	delete(m.runs, id)
	return nil
}

// Close is a no-op for the memory store
func (m *MemoryStore) Close() error {
	return nil
}
