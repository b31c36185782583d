package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wordbook",
	Short: "Quiz yourself on the words you know least",
	Long: "Wordbook keeps a list of words you are learning and quizzes you on the ones you\n" +
		"answer worst. Run with no command to start a quiz.",
	Args:          cobra.NoArgs,
	RunE:          runQuiz,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(dictCmd)
	rootCmd.AddCommand(listCmd)

	// Quiz flags
	rootCmd.Flags().IntVarP(&quizNumber, "number", "n", 0, "Number of words to quiz (default from WORDBOOK_QUIZ_SIZE, 10)")
	rootCmd.Flags().BoolVar(&quizNoShuffle, "no-shuffle", false, "Ask in mastery order instead of shuffling")

	// Dict flags
	dictCmd.Flags().IntVarP(&dictNumber, "number", "n", 0, "Number of words to look up (default from WORDBOOK_QUIZ_SIZE, 10)")
}
