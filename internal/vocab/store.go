package vocab

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrEmptyLabel is returned when registering a blank word.
var ErrEmptyLabel = errors.New("empty label")

// Store is an ordered collection of entries keyed by label.
// The zero value is an empty store. It is not safe for concurrent use.
type Store struct {
	entries []Entry
	index   map[string]int
}

// New returns a store holding the given entries, merged by label.
func New(entries ...Entry) *Store {
	s := &Store{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		s.InsertOrUpdate(e)
	}
	return s
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Entries returns a copy of all entries in insertion order.
func (s *Store) Entries() []Entry {
	return slices.Clone(s.entries)
}

// Get returns the entry for label.
func (s *Store) Get(label string) (Entry, bool) {
	i, ok := s.index[label]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// InsertOrUpdate replaces the entry with the same label in place, or appends
// it. Entries with an empty label are ignored.
func (s *Store) InsertOrUpdate(e Entry) {
	if e.Label == "" {
		return
	}
	if i, ok := s.index[e.Label]; ok {
		s.entries[i] = e
		return
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	s.index[e.Label] = len(s.entries)
	s.entries = append(s.entries, e)
}

// Register adds a fresh entry for label unless one already exists.
// An existing entry is returned untouched so its history survives
// re-registration. The bool reports whether a new entry was added.
func (s *Store) Register(label string) (Entry, bool, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Entry{}, false, ErrEmptyLabel
	}
	if e, ok := s.Get(label); ok {
		return e, false, nil
	}
	e := NewEntry(label)
	s.InsertOrUpdate(e)
	return e, true, nil
}

// Remove deletes the entry for label. Removing an absent label is a no-op.
func (s *Store) Remove(label string) bool {
	i, ok := s.index[label]
	if !ok {
		return false
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	delete(s.index, label)
	for j := i; j < len(s.entries); j++ {
		s.index[s.entries[j].Label] = j
	}
	return true
}

// Record increments the correct or incorrect counter of the stored entry.
// It returns the updated entry, or false if label is not in the store.
func (s *Store) Record(label string, correct bool) (Entry, bool) {
	i, ok := s.index[label]
	if !ok {
		return Entry{}, false
	}
	if correct {
		s.entries[i].CorrectCount++
	} else {
		s.entries[i].IncorrectCount++
	}
	return s.entries[i], true
}

// Select returns up to n entries that are not retired under maxAttempts,
// stably sorted by cmp when cmp is non-nil. The store itself is not
// reordered.
func (s *Store) Select(n int, cmp func(a, b Entry) int, maxAttempts int) []Entry {
	if n <= 0 {
		return []Entry{}
	}
	eligible := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if !e.Retired(maxAttempts) {
			eligible = append(eligible, e)
		}
	}
	if cmp != nil {
		slices.SortStableFunc(eligible, cmp)
	}
	if len(eligible) > n {
		eligible = eligible[:n]
	}
	return eligible
}

// Encode serializes the store as a JSON array. An empty store encodes as [].
func (s *Store) Encode() ([]byte, error) {
	entries := s.entries
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encode store: %w", err)
	}
	return data, nil
}

// Decode parses a JSON array of entries. Empty input yields an empty store.
// Blank labels are dropped, duplicate labels collapse onto the first position
// with the last value, and negative counters are clamped to zero.
func Decode(data []byte) (*Store, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return New(), nil
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode store: %w", err)
	}
	s := New()
	for _, e := range entries {
		e.CorrectCount = max(e.CorrectCount, 0)
		e.IncorrectCount = max(e.IncorrectCount, 0)
		s.InsertOrUpdate(e)
	}
	return s, nil
}
