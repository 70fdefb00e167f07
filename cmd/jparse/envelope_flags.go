package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jparse/internal/diagnostic"
	"github.com/dhamidi/jparse/internal/javaparser"
)

// envelopeFlags mirrors the SecurityEnvelope's tunables as CLI flags so
// the resource limits can be exercised and tuned from the command line,
// the same way dhamidi-sai's parse/compile commands expose their
// behavior-shaping flags (--format, --comments, --positions) on the
// cobra.Command itself rather than through a config file.
type envelopeFlags struct {
	maxSourceBytes int
	maxTokens      int
	maxArenaNodes  int
	maxDepth       int
	deadline       time.Duration
	languageLevel  int
}

func (f *envelopeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.maxSourceBytes, "max-source-bytes", 0, "maximum source size in bytes (0 = default)")
	cmd.Flags().IntVar(&f.maxTokens, "max-tokens", 0, "maximum significant token count (0 = default)")
	cmd.Flags().IntVar(&f.maxArenaNodes, "max-nodes", 0, "maximum arena node count (0 = default)")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", 0, "maximum recursion depth (0 = default)")
	cmd.Flags().DurationVar(&f.deadline, "deadline", 0, "wall-clock parse deadline (0 = default)")
	cmd.Flags().IntVar(&f.languageLevel, "language-level", 25, "Java language level to parse")
}

func (f *envelopeFlags) options(file string) []javaparser.Option {
	opts := []javaparser.Option{
		javaparser.WithFile(file),
		javaparser.WithLanguageLevel(f.languageLevel),
	}
	if f.maxSourceBytes > 0 {
		opts = append(opts, javaparser.WithMaxSourceBytes(f.maxSourceBytes))
	}
	if f.maxTokens > 0 {
		opts = append(opts, javaparser.WithMaxTokens(f.maxTokens))
	}
	if f.maxArenaNodes > 0 {
		opts = append(opts, javaparser.WithMaxArenaNodes(f.maxArenaNodes))
	}
	if f.maxDepth > 0 {
		opts = append(opts, javaparser.WithMaxRecursionDepth(f.maxDepth))
	}
	if f.deadline > 0 {
		opts = append(opts, javaparser.WithDeadline(f.deadline))
	}
	return opts
}

func printDiagnostics(w *os.File, file string, diags []diagnostic.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", file, d.Line, d.Column, d.Kind, d.Message)
	}
}
