package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bminor-lang/bminor/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bminor version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bminor version %s\n", version.Current())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
