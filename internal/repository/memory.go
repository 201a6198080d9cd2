package repository

import (
	"sort"
	"sync"
)

// Memory is an in-memory ContentStore used by tests and local tooling.
type Memory struct {
	mu    sync.RWMutex
	files map[string]map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{files: make(map[string]map[string][]byte)}
}

func (m *Memory) List(category string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var names []string
	for name := range m.files[category] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *Memory) Read(category, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.files[category][name]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *Memory) Write(category, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.files[category] == nil {
		m.files[category] = make(map[string][]byte)
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	m.files[category][name] = stored
	return nil
}

func (m *Memory) Delete(category, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.files[category][name]; !ok {
		return ErrNotFound
	}
	delete(m.files[category], name)
	return nil
}

func (m *Memory) Exists(category, name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.files[category][name]
	return ok
}
