package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lazypower/wordbook/internal/config"
	"github.com/lazypower/wordbook/internal/dictionary"
	"github.com/lazypower/wordbook/internal/store"
	"github.com/lazypower/wordbook/internal/vocab"
	"github.com/spf13/cobra"
)

// app bundles what every command needs: resolved config, a logger and the
// vocabulary file.
type app struct {
	cfg  config.Config
	log  *slog.Logger
	file *vocab.File
}

// setup loads config from the environment and resolves the data path.
func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg.Log, cmd.ErrOrStderr())

	path := cfg.Data.Path
	if path == "" {
		path, err = vocab.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve data path: %w", err)
		}
	}

	return &app{
		cfg:  cfg,
		log:  logger,
		file: vocab.NewFile(path, logger),
	}, nil
}

// openCache opens the definition cache, or returns nil when caching is off.
func (a *app) openCache() (*store.DB, error) {
	if !a.cfg.Dictionary.Cache {
		return nil, nil
	}
	path := a.cfg.Data.CachePath
	if path == "" {
		var err error
		path, err = store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}
	return store.Open(path)
}

// lookuper builds the dictionary chain. A cache that cannot be opened is
// skipped with a warning. The returned func releases the cache.
func (a *app) lookuper() (dictionary.Lookuper, func(), error) {
	provider, err := dictionary.NewProvider(a.cfg.Dictionary, a.log)
	if err != nil {
		return nil, nil, err
	}

	db, err := a.openCache()
	if err != nil {
		a.log.Warn("definition cache unavailable", slog.String("error", err.Error()))
		return provider, func() {}, nil
	}
	if db == nil {
		return provider, func() {}, nil
	}
	return dictionary.NewCached(db, provider, provider.Source(), a.log), func() { db.Close() }, nil
}

// newLogger creates a *slog.Logger writing to w.
// Format "json" produces JSON lines; anything else produces text.
func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
