package main

import "github.com/spf13/cobra"

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start a Language Server Protocol server publishing parse diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := newLangServer("0.1.0")
			return server.runStdio()
		},
	}
}
