package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes: 0 when at least one match was found, 1 when the search ran
// cleanly but found nothing, 2 on usage or runtime errors. Mirrors grep.
const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

var quiet bool

var rootCmd = &cobra.Command{
	Use:   "fuzzex",
	Short: "Fuzzex - approximate substring search",
	Long: `Fuzzex finds approximate (fuzzy) occurrences of patterns in text, tolerating
a bounded number of single-character insertions, deletions, and substitutions.

It is an online searcher: the text needs no preprocessing or index, so it
works on streams, logs, and one-off files alike.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress normal output (exit status only)")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(versionCmd)
}

// exitStatus is what Execute returns on success. The search command lowers
// it to exitNoMatch when nothing was found.
var exitStatus = exitMatch

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fuzzex: %v\n", err)
		return exitError
	}
	return exitStatus
}
