package javaparser

import (
	"time"

	"github.com/dhamidi/jparse/internal/envelope"
)

// Option configures a parse. Functional options mirror the pattern both
// dhamidi-sai (parser.Option) and gosonata (parser.CompileOption) use for
// per-instance configuration.
type Option func(*config)

type config struct {
	file          string
	languageLevel int
	envelopeOpts  []envelope.Option
	observer      Observer
}

func newConfig(opts ...Option) *config {
	c := &config{languageLevel: 25}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithFile attaches a file name used only in diagnostics, never
// interpreted (no file I/O happens inside the core).
func WithFile(name string) Option { return func(c *config) { c.file = name } }

// WithLanguageLevel sets the JDK language level. Default 25. Module imports
// and implicit classes are accepted only at level 25 or above; flexible
// constructor bodies and primitive type patterns are accepted at every
// level. See spec §9 "Parse
// strategy plug-in system" — folded into a single field, not a registry.
func WithLanguageLevel(n int) Option { return func(c *config) { c.languageLevel = n } }

// WithMaxSourceBytes, WithMaxTokens, WithMaxArenaNodes,
// WithMaxRecursionDepth and WithDeadline configure the SecurityEnvelope
// (spec §4.4); they forward directly to internal/envelope.
func WithMaxSourceBytes(n int) Option {
	return func(c *config) { c.envelopeOpts = append(c.envelopeOpts, envelope.WithMaxSourceBytes(n)) }
}
func WithMaxTokens(n int) Option {
	return func(c *config) { c.envelopeOpts = append(c.envelopeOpts, envelope.WithMaxTokens(n)) }
}
func WithMaxArenaNodes(n int) Option {
	return func(c *config) { c.envelopeOpts = append(c.envelopeOpts, envelope.WithMaxArenaNodes(n)) }
}
func WithMaxRecursionDepth(n int) Option {
	return func(c *config) { c.envelopeOpts = append(c.envelopeOpts, envelope.WithMaxRecursionDepth(n)) }
}
func WithDeadline(d time.Duration) Option {
	return func(c *config) { c.envelopeOpts = append(c.envelopeOpts, envelope.WithDeadline(d)) }
}

// WithObserver installs an optional telemetry hook (spec §9 "Global
// state" — replaced by an observer the caller supplies instead of
// process-wide metrics globals). nil methods are never called.
func WithObserver(o Observer) Option { return func(c *config) { c.observer = o } }

// Observer is an optional telemetry hook. WithObserver stores it in the
// parse configuration, but no parse step calls its methods, and cmd/jparse
// does not install one.
type Observer interface {
	OnDiagnostic(kind string, message string)
}
