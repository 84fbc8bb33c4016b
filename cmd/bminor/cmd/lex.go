package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bminor-lang/bminor/internal/scanner"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>...",
	Short: "Scan source files and list their tokens",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args, lexFile)
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func lexFile(path string, w io.Writer) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	tokens, err := scanner.Tokenize(string(source))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Fprintf(w, "%s: %d tokens\n", path, len(tokens))
	scanner.Dump(w, tokens)
	return nil
}
