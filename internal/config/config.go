package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all wordbook configuration.
// Values come from Default() and are overridden by WORDBOOK_* environment variables.
type Config struct {
	Server     ServerConfig
	Data       DataConfig
	Quiz       QuizConfig
	Dictionary DictionaryConfig
	Log        LogConfig
}

type ServerConfig struct {
	Bind string `env:"WORDBOOK_BIND"`
	Port int    `env:"WORDBOOK_PORT"`
}

type DataConfig struct {
	Path      string `env:"WORDBOOK_DATA"`  // resolved via vocab.DefaultPath() when empty
	CachePath string `env:"WORDBOOK_CACHE"` // resolved via store.DefaultDBPath() when empty
}

type QuizConfig struct {
	Size        int  `env:"WORDBOOK_QUIZ_SIZE"`
	MaxAttempts int  `env:"WORDBOOK_MAX_ATTEMPTS"` // retirement threshold; <= 0 disables
	Shuffle     bool `env:"WORDBOOK_SHUFFLE"`
}

type DictionaryConfig struct {
	Provider    string        `env:"WORDBOOK_DICT_PROVIDER"` // "alc", "ollama"
	URL         string        `env:"WORDBOOK_DICT_URL"`
	OllamaURL   string        `env:"WORDBOOK_OLLAMA_URL"`
	OllamaModel string        `env:"WORDBOOK_OLLAMA_MODEL"` // e.g. "llama3.2"
	Timeout     time.Duration `env:"WORDBOOK_DICT_TIMEOUT"`
	Cache       bool          `env:"WORDBOOK_DICT_CACHE"`
}

type LogConfig struct {
	Level  string `env:"WORDBOOK_LOG_LEVEL"`  // debug, info, warn, error
	Format string `env:"WORDBOOK_LOG_FORMAT"` // text, json
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Bind: "127.0.0.1",
			Port: 37780,
		},
		Quiz: QuizConfig{
			Size:        10,
			MaxAttempts: 10,
			Shuffle:     true,
		},
		Dictionary: DictionaryConfig{
			Provider:  "alc",
			URL:       "https://eow.alc.co.jp/search",
			OllamaURL: "http://localhost:11434",
			Timeout:   15 * time.Second,
			Cache:     true,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load returns Default() overridden by the environment.
func Load() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFrom is Load with an explicit environment, for tests.
func LoadFrom(environment map[string]string) (Config, error) {
	cfg := Default()
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environment}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values no command can run with.
func (c *Config) Validate() error {
	if c.Quiz.Size < 1 {
		return fmt.Errorf("quiz size must be positive, got %d", c.Quiz.Size)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if c.Dictionary.Timeout < 0 {
		return fmt.Errorf("negative dictionary timeout %s", c.Dictionary.Timeout)
	}
	return nil
}

// ListenAddr returns the bind:port address string.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Bind, c.Server.Port)
}
