package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/szma/brewlis/repl"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "brewlis",
	Short: "A floating point lisp",
	Long: `brewlis is an interpreter for a small lisp dialect whose only scalar type
is a 64-bit floating point number.  Without arguments an interactive session
is started.`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl("> ")
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
