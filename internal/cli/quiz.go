package cli

import (
	"fmt"

	"github.com/lazypower/wordbook/internal/dictionary"
	"github.com/lazypower/wordbook/internal/quiz"
	"github.com/lazypower/wordbook/internal/vocab"
	"github.com/spf13/cobra"
)

// --- quiz (root) command ---

var (
	quizNumber    int
	quizNoShuffle bool
)

func runQuiz(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	st, err := a.file.Load()
	if err != nil {
		return fmt.Errorf("load vocabulary: %w", err)
	}

	batch := quiz.PickBatch(st, quiz.BatchOpts{
		Size:        sizeOr(quizNumber, a.cfg.Quiz.Size),
		MaxAttempts: a.cfg.Quiz.MaxAttempts,
		Shuffle:     a.cfg.Quiz.Shuffle && !quizNoShuffle,
	})
	if len(batch) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No words to quiz. Add one with: wordbook register <word>")
		return nil
	}

	lookup, closeLookup, err := a.lookuper()
	if err != nil {
		return err
	}
	defer closeLookup()

	sess := quiz.NewSession(st, a.file, batch)
	sess.Lookup = lookup
	sess.Log = a.log

	fmt.Fprintf(cmd.OutOrStdout(), "Do you know these words? (y/n, blank = yes)\n\n")
	if _, err := sess.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("quiz: %w", err)
	}
	return nil
}

// --- dict command ---

var dictNumber int

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Print definitions for the words you know least",
	Long:  "Look up the next quiz batch in mastery order without asking anything. The vocabulary is not changed.",
	Args:  cobra.NoArgs,
	RunE:  runDict,
}

func runDict(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	st, err := a.file.Load()
	if err != nil {
		return fmt.Errorf("load vocabulary: %w", err)
	}

	entries := st.Select(sizeOr(dictNumber, a.cfg.Quiz.Size), vocab.CompareMastery, a.cfg.Quiz.MaxAttempts)
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No words to look up.")
		return nil
	}

	words := make([]string, len(entries))
	for i, e := range entries {
		words[i] = e.Label
	}

	lookup, closeLookup, err := a.lookuper()
	if err != nil {
		return err
	}
	defer closeLookup()

	dictionary.Print(cmd.OutOrStdout(), dictionary.LookupAll(cmd.Context(), lookup, words))
	return nil
}

// sizeOr returns n when the flag was given a positive value, else def.
func sizeOr(n, def int) int {
	if n > 0 {
		return n
	}
	return def
}
