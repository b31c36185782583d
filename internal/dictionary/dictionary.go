// Package dictionary looks up human-readable definitions for vocabulary words.
//
// Lookups are best-effort: the sources are uncontrolled web pages, so a
// failure for one word is reported alongside that word and never suppresses
// the definitions of the others.
package dictionary

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// ErrNotFound is returned when a source has no definition for a word.
var ErrNotFound = errors.New("no definition found")

// Lookuper fetches the definition of a single word.
type Lookuper interface {
	Lookup(ctx context.Context, word string) (string, error)
}

// Definition pairs a word with its definition or the error that prevented
// fetching it.
type Definition struct {
	Word string
	Text string
	Err  error
}

// LookupAll looks up every word concurrently and returns once all lookups
// have finished. Results keep the order of words.
func LookupAll(ctx context.Context, l Lookuper, words []string) []Definition {
	defs := make([]Definition, len(words))

	var g errgroup.Group
	for i, w := range words {
		g.Go(func() error {
			text, err := l.Lookup(ctx, w)
			defs[i] = Definition{Word: w, Text: text, Err: err}
			// Per-word failures are kept in defs so the group never cancels.
			return nil
		})
	}
	g.Wait()

	return defs
}

// Print writes one line per definition.
func Print(w io.Writer, defs []Definition) {
	for _, d := range defs {
		if d.Err != nil {
			fmt.Fprintf(w, "%s: lookup failed: %v\n", d.Word, d.Err)
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", d.Word, d.Text)
	}
}
