package dictionary

import (
	"fmt"
	"log/slog"

	"github.com/lazypower/wordbook/internal/config"
)

// Provider is a Lookuper that can name itself for cache records.
type Provider interface {
	Lookuper
	Source() string
}

// NewProvider creates a definition source based on the config provider setting.
func NewProvider(cfg config.DictionaryConfig, logger *slog.Logger) (Provider, error) {
	switch cfg.Provider {
	case "", "alc":
		return NewALC(cfg.URL, cfg.Timeout, logger), nil
	case "ollama":
		url := cfg.OllamaURL
		if url == "" {
			url = "http://localhost:11434"
		}
		model := cfg.OllamaModel
		if model == "" {
			model = "llama3.2"
		}
		return NewOllama(url, model, cfg.Timeout, logger), nil
	default:
		return nil, fmt.Errorf("unknown dictionary provider: %q", cfg.Provider)
	}
}
