package cli

import (
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// --- register command ---

var registerCmd = &cobra.Command{
	Use:   "register <word>",
	Short: "Add a word to the vocabulary",
	Long:  "Add a word or phrase. Re-registering a known word keeps its answer history.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRegister,
}

func runRegister(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	st, err := a.file.Load()
	if err != nil {
		return fmt.Errorf("load vocabulary: %w", err)
	}

	entry, added, err := st.Register(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if !added {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is already registered (%d correct, %d incorrect)\n",
			entry.Label, entry.CorrectCount, entry.IncorrectCount)
		return nil
	}

	if err := a.file.Save(st); err != nil {
		return fmt.Errorf("save vocabulary: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "registered %s\n", entry.Label)
	return nil
}

// --- delete command ---

var deleteCmd = &cobra.Command{
	Use:   "delete <word>",
	Short: "Remove a word from the vocabulary",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	label := strings.TrimSpace(strings.Join(args, " "))

	st, err := a.file.Load()
	if err != nil {
		return fmt.Errorf("load vocabulary: %w", err)
	}
	if !st.Remove(label) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is not registered\n", label)
		return nil
	}
	if err := a.file.Save(st); err != nil {
		return fmt.Errorf("save vocabulary: %w", err)
	}

	// Drop the cached definition too; a stale cache entry is harmless.
	if db, err := a.openCache(); err != nil {
		a.log.Warn("definition cache unavailable", slog.String("error", err.Error()))
	} else if db != nil {
		if err := db.DeleteDefinition(label); err != nil {
			a.log.Warn("evict cached definition", slog.String("word", label), slog.String("error", err.Error()))
		}
		db.Close()
	}

	fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", label)
	return nil
}

// --- list command ---

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every word with its answer history",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	st, err := a.file.Load()
	if err != nil {
		return fmt.Errorf("load vocabulary: %w", err)
	}
	if st.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No words registered. Add one with: wordbook register <word>")
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WORD\tCORRECT\tINCORRECT\tACCURACY\t")
	for _, e := range st.Entries() {
		accuracy := "-"
		if e.Attempts() > 0 {
			accuracy = fmt.Sprintf("%.0f%%", e.Accuracy()*100)
		}
		retired := ""
		if e.Retired(a.cfg.Quiz.MaxAttempts) {
			retired = "retired"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\n", e.Label, e.CorrectCount, e.IncorrectCount, accuracy, retired)
	}
	return tw.Flush()
}
