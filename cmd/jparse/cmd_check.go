package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jparse/internal/javaparser"
)

// newCheckCmd parses every file given on the command line and reports
// pass/fail per file, exiting nonzero if any file failed — the same
// aggregate-then-report shape as dhamidi-sai's cmd_compile.go, applied to
// parsing instead of invoking javac.
func newCheckCmd() *cobra.Command {
	var flags envelopeFlags

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse files and report diagnostics, exiting nonzero on failure",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, filename := range args {
				ok, err := checkFile(filename, &flags)
				if err != nil {
					return err
				}
				if !ok {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed to parse", failed, len(args))
			}
			fmt.Printf("%d files parsed successfully\n", len(args))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func checkFile(filename string, flags *envelopeFlags) (bool, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return false, fmt.Errorf("read java file: %w", err)
	}

	tree, diags := javaparser.Parse(string(data), flags.options(filename)...)
	printDiagnostics(os.Stderr, filename, diags)
	return tree != nil, nil
}
