// Package quiz runs interactive review sessions over a frozen batch of words.
package quiz

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lazypower/wordbook/internal/dictionary"
	"github.com/lazypower/wordbook/internal/vocab"
)

// ErrCompleted is returned when answering a session that has no entries left.
var ErrCompleted = errors.New("session completed")

// State is the position of a session in its lifecycle.
type State int

const (
	Pending State = iota
	Asking
	Completed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Asking:
		return "asking"
	case Completed:
		return "completed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Outcome is how a single answer resolved.
type Outcome int

const (
	Correct Outcome = iota + 1
	Incorrect
	Invalid
)

func (o Outcome) String() string {
	switch o {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case Invalid:
		return "invalid"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// ParseAnswer maps a line of user input to an outcome. A blank line, y and
// yes mean the word was known; n and no mean it was not.
func ParseAnswer(answer string) Outcome {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "y", "yes":
		return Correct
	case "n", "no":
		return Incorrect
	}
	return Invalid
}

// Saver persists the whole store.
type Saver interface {
	Save(*vocab.Store) error
}

// Result summarizes a finished session.
type Result struct {
	Correct   int
	Incorrect int
	Invalid   int
	Missed    []string
}

// Session asks about each batch entry once, in batch order. Counters live in
// the store; the batch is a snapshot taken before the first question.
type Session struct {
	store  *vocab.Store
	saver  Saver
	batch  []vocab.Entry
	pos    int
	state  State
	result Result

	// Lookup, when set, receives the missed labels once the batch is done.
	Lookup dictionary.Lookuper
	Log    *slog.Logger
}

// NewSession creates a session over batch. An empty batch starts Completed.
func NewSession(store *vocab.Store, saver Saver, batch []vocab.Entry) *Session {
	s := &Session{
		store: store,
		saver: saver,
		batch: append([]vocab.Entry(nil), batch...),
	}
	if len(s.batch) == 0 {
		s.state = Completed
	}
	return s
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Current returns the entry awaiting an answer.
func (s *Session) Current() (vocab.Entry, bool) {
	if s.state == Completed {
		return vocab.Entry{}, false
	}
	s.state = Asking
	return s.batch[s.pos], true
}

// Answer resolves the current entry. Correct and incorrect answers update the
// stored counters and save the store before returning; a save error is
// returned as is and the session should be abandoned. Invalid answers change
// nothing. Either way the session moves on to the next entry.
func (s *Session) Answer(answer string) (Outcome, error) {
	entry, ok := s.Current()
	if !ok {
		return 0, ErrCompleted
	}

	outcome := ParseAnswer(answer)
	switch outcome {
	case Correct, Incorrect:
		if _, ok := s.store.Record(entry.Label, outcome == Correct); !ok {
			s.logger().Warn("quiz entry no longer in store", slog.String("label", entry.Label))
			break
		}
		if err := s.saver.Save(s.store); err != nil {
			return outcome, fmt.Errorf("save after %q: %w", entry.Label, err)
		}
		if outcome == Correct {
			s.result.Correct++
		} else {
			s.result.Incorrect++
			s.result.Missed = append(s.result.Missed, entry.Label)
		}
	case Invalid:
		s.result.Invalid++
	}

	s.advance()
	return outcome, nil
}

// Missed returns the labels answered incorrectly so far.
func (s *Session) Missed() []string {
	return append([]string(nil), s.result.Missed...)
}

// Result returns the tallies so far.
func (s *Session) Result() Result {
	r := s.result
	r.Missed = s.Missed()
	return r
}

func (s *Session) advance() {
	s.pos++
	if s.pos >= len(s.batch) {
		s.state = Completed
	}
}

// Run prompts on out and reads one answer line per entry from in. End of
// input finishes the session early; answers already given stay saved. After
// the last entry the missed words are looked up and printed when Lookup is
// set. Only read and save failures are returned.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) (Result, error) {
	scanner := bufio.NewScanner(in)

	for s.state != Completed {
		if err := ctx.Err(); err != nil {
			return s.Result(), err
		}

		entry, _ := s.Current()
		fmt.Fprintf(out, "%s [Y/n]: ", entry.Label)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return s.Result(), fmt.Errorf("read answer: %w", err)
			}
			fmt.Fprintln(out)
			s.state = Completed
			break
		}

		outcome, err := s.Answer(scanner.Text())
		if err != nil {
			return s.Result(), err
		}
		if outcome == Invalid {
			fmt.Fprintf(out, "unrecognized answer %q, skipping %s (use y, n or blank)\n", scanner.Text(), entry.Label)
		}
	}

	r := s.Result()
	fmt.Fprintf(out, "%d correct, %d incorrect, %d skipped\n", r.Correct, r.Incorrect, r.Invalid)

	if s.Lookup != nil && len(r.Missed) > 0 {
		fmt.Fprintln(out)
		dictionary.Print(out, dictionary.LookupAll(ctx, s.Lookup, r.Missed))
	}
	return r, nil
}

func (s *Session) logger() *slog.Logger {
	if s.Log == nil {
		return slog.Default()
	}
	return s.Log
}
