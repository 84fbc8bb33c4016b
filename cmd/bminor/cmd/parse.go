package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bminor-lang/bminor/internal/ast"
	"github.com/bminor-lang/bminor/internal/parser"
	"github.com/bminor-lang/bminor/internal/scanner"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>...",
	Short: "Parse source files and summarize their declarations",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args, parseFile)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func parseFile(path string, w io.Writer) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	tokens, err := scanner.Tokenize(string(source))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Fprintf(w, "%s:\n", path)
	for d := program; d != nil; d = d.Next {
		fmt.Fprintf(w, "  %s: %s%s\n", d.Name, d.Type, declarationNote(d))
	}
	return nil
}

func declarationNote(d *ast.Declaration) string {
	switch {
	case d.Code != nil:
		return " = {...}"
	case d.Value != nil:
		return fmt.Sprintf(" = %s", d.Value.Kind)
	default:
		return ""
	}
}
