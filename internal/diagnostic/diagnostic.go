// Package diagnostic defines the structured error taxonomy produced by the
// lexer and parser. A diagnostic is a value, never a panic: every failure
// path in lexer and parser returns diagnostics instead of throwing.
package diagnostic

import "fmt"

// Kind is the closed set of diagnostic kinds a parse can produce.
type Kind int

const (
	LexError Kind = iota
	ParseError
	ResourceExhaustedSourceSize
	ResourceExhaustedTokenCount
	ResourceExhaustedArenaCapacity
	ResourceExhaustedRecursionDepth
	ResourceExhaustedDeadline
)

var kindNames = map[Kind]string{
	LexError:                        "LexError",
	ParseError:                      "ParseError",
	ResourceExhaustedSourceSize:     "ResourceExhausted::SourceSize",
	ResourceExhaustedTokenCount:     "ResourceExhausted::TokenCount",
	ResourceExhaustedArenaCapacity:  "ResourceExhausted::ArenaCapacity",
	ResourceExhaustedRecursionDepth: "ResourceExhausted::RecursionDepth",
	ResourceExhaustedDeadline:       "ResourceExhausted::Deadline",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Fatal reports whether a diagnostic of this kind aborts the parse
// immediately, per the propagation policy: only LexError accumulates
// alongside successful tokens.
func (k Kind) Fatal() bool {
	return k != LexError
}

// Diagnostic is a single structured error, position-ordered relative to
// its siblings.
type Diagnostic struct {
	Kind    Kind
	Offset  uint32
	Line    uint32
	Column  uint32
	Message string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s at %d:%d: %s", d.Kind, d.Line, d.Column, d.Message)
}

// New builds a diagnostic; message must be non-empty per the data model.
func New(kind Kind, offset, line, column uint32, message string) Diagnostic {
	if message == "" {
		message = kind.String()
	}
	return Diagnostic{Kind: kind, Offset: offset, Line: line, Column: column, Message: message}
}
