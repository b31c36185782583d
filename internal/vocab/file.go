package vocab

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultPath returns the default vocabulary path: ~/.wordbook/data.json
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".wordbook", "data.json"), nil
}

// File is the durable location of a vocabulary store.
type File struct {
	Path string
	Log  *slog.Logger
}

// NewFile returns a File for path logging through logger.
func NewFile(path string, logger *slog.Logger) *File {
	if logger == nil {
		logger = slog.Default()
	}
	return &File{Path: path, Log: logger}
}

// Load reads the store from disk. A missing or unreadable file is treated as
// an empty store and rewritten as [] so later reads see a valid file. Only a
// failure to write that replacement is returned.
func (f *File) Load() (*Store, error) {
	data, err := os.ReadFile(f.Path)
	if err == nil {
		s, decodeErr := Decode(data)
		if decodeErr == nil {
			return s, nil
		}
		err = decodeErr
	}

	f.logger().Warn("vocabulary unreadable, starting empty",
		slog.String("path", f.Path),
		slog.String("error", err.Error()),
	)
	s := New()
	if err := f.Save(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes the whole store to disk, replacing the previous file.
func (f *File) Save(s *Store) error {
	data, err := s.Encode()
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".wordbook-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write vocabulary: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close vocabulary: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("replace vocabulary: %w", err)
	}
	return nil
}

func (f *File) logger() *slog.Logger {
	if f.Log == nil {
		return slog.Default()
	}
	return f.Log
}
