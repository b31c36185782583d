package dictionary

import (
	"context"
	"log/slog"

	"github.com/lazypower/wordbook/internal/store"
)

// Cached serves definitions from the local cache and falls through to next on
// a miss. Cache errors are logged and never fail a lookup.
type Cached struct {
	db     *store.DB
	next   Lookuper
	source string
	log    *slog.Logger
}

// NewCached wraps next with a cache in db. source labels stored rows.
func NewCached(db *store.DB, next Lookuper, source string, logger *slog.Logger) *Cached {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cached{
		db:     db,
		next:   next,
		source: source,
		log:    logger.With("adapter", "cache"),
	}
}

// Lookup implements Lookuper.
func (c *Cached) Lookup(ctx context.Context, word string) (string, error) {
	d, err := c.db.GetDefinition(word)
	if err != nil {
		c.log.WarnContext(ctx, "cache read failed", slog.String("word", word), slog.String("error", err.Error()))
	} else if d != nil {
		c.log.DebugContext(ctx, "cache hit", slog.String("word", word))
		return d.Definition, nil
	}

	text, err := c.next.Lookup(ctx, word)
	if err != nil {
		return "", err
	}

	if err := c.db.SaveDefinition(word, text, c.source); err != nil {
		c.log.WarnContext(ctx, "cache write failed", slog.String("word", word), slog.String("error", err.Error()))
	}
	return text, nil
}

// Forget evicts word so the next lookup refetches it.
func (c *Cached) Forget(word string) error {
	return c.db.DeleteDefinition(word)
}
