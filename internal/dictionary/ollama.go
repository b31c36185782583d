package dictionary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Ollama asks a local Ollama model for a short definition. Useful offline or
// when the search page changes its layout.
type Ollama struct {
	url    string
	model  string
	client *http.Client
	log    *slog.Logger
}

// NewOllama creates a new Ollama provider.
func NewOllama(url, model string, timeout time.Duration, logger *slog.Logger) *Ollama {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ollama{
		url:    strings.TrimRight(url, "/"),
		model:  model,
		client: &http.Client{Timeout: timeout},
		log:    logger.With("adapter", "ollama"),
	}
}

// Source names the provider in cache records.
func (o *Ollama) Source() string {
	return "ollama:" + o.model
}

func definitionPrompt(word string) string {
	return "Give a one-line dictionary definition of the English word or phrase below. " +
		"Reply with the definition only, or NONE if it is not a real word.\n\n" + word
}

// Lookup sends a definition prompt to Ollama's generate endpoint.
func (o *Ollama) Lookup(ctx context.Context, word string) (string, error) {
	reqBody := map[string]any{
		"model":  o.model,
		"prompt": definitionPrompt(word),
		"stream": false,
		"options": map[string]any{
			"temperature": 0.1,
			"num_predict": 128,
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("ollama: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.url+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ollama: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ollama: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama: status %d: %s", resp.StatusCode, respBody)
	}

	var result struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("ollama: decode response: %w", err)
	}

	text := strings.Join(strings.Fields(result.Response), " ")
	if text == "" || strings.EqualFold(strings.Trim(text, "."), "none") {
		return "", ErrNotFound
	}
	o.log.DebugContext(ctx, "ollama response", slog.String("word", word), slog.Int("length", len(text)))
	return text, nil
}
