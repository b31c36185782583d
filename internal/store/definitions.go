package store

import (
	"database/sql"
	"fmt"
	"time"
)

// Definition is a cached dictionary lookup result.
type Definition struct {
	Word       string
	Definition string
	Source     string
	FetchedAt  int64
	Hits       int
}

// GetDefinition returns the cached definition for word, or nil if there is none.
// A successful read counts as a hit.
func (db *DB) GetDefinition(word string) (*Definition, error) {
	var d Definition
	err := db.QueryRow(`
		SELECT word, definition, source, fetched_at, hits
		FROM definitions WHERE word = ?
	`, word).Scan(&d.Word, &d.Definition, &d.Source, &d.FetchedAt, &d.Hits)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get definition: %w", err)
	}

	if _, err := db.Exec("UPDATE definitions SET hits = hits + 1 WHERE word = ?", word); err != nil {
		return nil, fmt.Errorf("touch definition: %w", err)
	}
	d.Hits++
	return &d, nil
}

// SaveDefinition inserts or replaces the cached definition for word.
func (db *DB) SaveDefinition(word, definition, source string) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		INSERT INTO definitions (word, definition, source, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(word) DO UPDATE SET definition = ?, source = ?, fetched_at = ?
	`, word, definition, source, now,
		definition, source, now)
	if err != nil {
		return fmt.Errorf("save definition: %w", err)
	}
	return nil
}

// DeleteDefinition evicts word from the cache. Evicting an absent word is not an error.
func (db *DB) DeleteDefinition(word string) error {
	if _, err := db.Exec("DELETE FROM definitions WHERE word = ?", word); err != nil {
		return fmt.Errorf("delete definition: %w", err)
	}
	return nil
}

// CountDefinitions returns the number of cached definitions.
func (db *DB) CountDefinitions() (int, error) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM definitions").Scan(&count); err != nil {
		return 0, fmt.Errorf("count definitions: %w", err)
	}
	return count, nil
}
