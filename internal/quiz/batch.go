package quiz

import (
	"math/rand/v2"

	"github.com/lazypower/wordbook/internal/vocab"
)

// BatchOpts controls which entries a session asks about.
type BatchOpts struct {
	Size        int
	MaxAttempts int
	Shuffle     bool
	Rand        *rand.Rand // nil uses the global source
}

// PickBatch selects the Size weakest eligible entries, then optionally
// shuffles them. Shuffling only changes the asking order, never membership.
func PickBatch(s *vocab.Store, opts BatchOpts) []vocab.Entry {
	batch := s.Select(opts.Size, vocab.CompareMastery, opts.MaxAttempts)
	if !opts.Shuffle {
		return batch
	}

	swap := func(i, j int) { batch[i], batch[j] = batch[j], batch[i] }
	if opts.Rand != nil {
		opts.Rand.Shuffle(len(batch), swap)
	} else {
		rand.Shuffle(len(batch), swap)
	}
	return batch
}
