// Package cmd implements the bminor command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var watchFiles bool

var rootCmd = &cobra.Command{
	Use:   "bminor",
	Short: "Compiler front end for the B-minor language",
	Long: `bminor scans and parses B-minor source files.

The lex subcommand stops after scanning and lists the tokens; the parse
subcommand builds the syntax tree and summarizes the top-level
declarations. Both accept multiple files and an optional watch mode.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&watchFiles, "watch", "w", false,
		"keep running and reprocess files when they change")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bminor:", err)
		os.Exit(1)
	}
}
