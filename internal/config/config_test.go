package config

import (
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Quiz.Size != 10 {
		t.Errorf("Quiz.Size = %d, want 10", cfg.Quiz.Size)
	}
	if cfg.Quiz.MaxAttempts != 10 {
		t.Errorf("Quiz.MaxAttempts = %d, want 10", cfg.Quiz.MaxAttempts)
	}
	if !cfg.Quiz.Shuffle {
		t.Error("Quiz.Shuffle = false, want true")
	}
	if cfg.ListenAddr() != "127.0.0.1:37780" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadFromOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"WORDBOOK_DATA":          "/tmp/words.json",
		"WORDBOOK_QUIZ_SIZE":     "5",
		"WORDBOOK_MAX_ATTEMPTS":  "20",
		"WORDBOOK_SHUFFLE":       "false",
		"WORDBOOK_DICT_TIMEOUT":  "3s",
		"WORDBOOK_LOG_FORMAT":    "json",
		"WORDBOOK_DICT_PROVIDER": "ollama",
		"WORDBOOK_OLLAMA_MODEL":  "tiny",
	})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Data.Path != "/tmp/words.json" {
		t.Errorf("Data.Path = %q", cfg.Data.Path)
	}
	if cfg.Quiz.Size != 5 {
		t.Errorf("Quiz.Size = %d, want 5", cfg.Quiz.Size)
	}
	if cfg.Quiz.MaxAttempts != 20 {
		t.Errorf("Quiz.MaxAttempts = %d, want 20", cfg.Quiz.MaxAttempts)
	}
	if cfg.Quiz.Shuffle {
		t.Error("Quiz.Shuffle = true, want false")
	}
	if cfg.Dictionary.Timeout != 3*time.Second {
		t.Errorf("Dictionary.Timeout = %s, want 3s", cfg.Dictionary.Timeout)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
	}
	if cfg.Dictionary.Provider != "ollama" || cfg.Dictionary.OllamaModel != "tiny" {
		t.Errorf("Dictionary = %+v", cfg.Dictionary)
	}
	// Untouched values keep their defaults.
	if cfg.Dictionary.URL != "https://eow.alc.co.jp/search" {
		t.Errorf("Dictionary.URL = %q", cfg.Dictionary.URL)
	}
}

func TestLoadFromInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"not a number", map[string]string{"WORDBOOK_QUIZ_SIZE": "ten"}},
		{"zero size", map[string]string{"WORDBOOK_QUIZ_SIZE": "0"}},
		{"bad port", map[string]string{"WORDBOOK_PORT": "70000"}},
		{"negative timeout", map[string]string{"WORDBOOK_DICT_TIMEOUT": "-1s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFrom(tt.env); err == nil {
				t.Error("expected error")
			}
		})
	}
}
