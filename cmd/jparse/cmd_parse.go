package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jparse/internal/javaparser"
)

func newParseCmd() *cobra.Command {
	var flags envelopeFlags
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .java file and dump its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read java file: %w", err)
			}

			tree, diags := javaparser.Parse(string(data), flags.options(filename)...)
			printDiagnostics(os.Stderr, filename, diags)
			if tree == nil {
				return fmt.Errorf("parse %s: incomplete or invalid syntax", filename)
			}

			switch outputFormat {
			case "json":
				return newASTJSONEncoder(os.Stdout).Encode(tree)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json)")
	return cmd
}
