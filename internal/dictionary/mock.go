package dictionary

import (
	"context"
	"sync"
)

// Mock is a test double for Lookuper. Words missing from Definitions and
// Errs fail with ErrNotFound.
type Mock struct {
	Definitions map[string]string
	Errs        map[string]error

	mu    sync.Mutex
	calls []string
}

// Lookup records the call and returns the configured result.
func (m *Mock) Lookup(ctx context.Context, word string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, word)
	m.mu.Unlock()

	if err, ok := m.Errs[word]; ok {
		return "", err
	}
	if text, ok := m.Definitions[word]; ok {
		return text, nil
	}
	return "", ErrNotFound
}

// Calls returns the words looked up so far.
func (m *Mock) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}
