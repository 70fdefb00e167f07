// Command jparse is a small CLI/LSP front end over the javaparser library:
// a parse subcommand that dumps the syntax tree, a check subcommand that
// turns diagnostics into a process exit code, and an lsp subcommand that
// publishes the same diagnostics over the Language Server Protocol.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jparse",
		Short: "Parse Java source into a syntax tree",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
