// Package envelope implements the SecurityEnvelope: per-parse resource
// budgets checked at token consumption and node allocation (spec §4.4).
package envelope

import "time"

const (
	DefaultMaxSourceBytes   = 10 << 20 // 10 MiB
	DefaultMaxTokens        = 1_000_000
	DefaultMaxArenaNodes    = 10_000_000
	DefaultMaxRecursionDepth = 200
	DefaultDeadline         = 30 * time.Second
)

// Envelope is the configured set of limits for one parse.
type Envelope struct {
	MaxSourceBytes   int
	MaxTokens        int
	MaxArenaNodes    int
	MaxRecursionDepth int
	Deadline         time.Duration
}

// Option configures an Envelope, following the functional-options shape
// used throughout the example pack for per-instance configuration.
type Option func(*Envelope)

func WithMaxSourceBytes(n int) Option      { return func(e *Envelope) { e.MaxSourceBytes = n } }
func WithMaxTokens(n int) Option           { return func(e *Envelope) { e.MaxTokens = n } }
func WithMaxArenaNodes(n int) Option       { return func(e *Envelope) { e.MaxArenaNodes = n } }
func WithMaxRecursionDepth(n int) Option   { return func(e *Envelope) { e.MaxRecursionDepth = n } }
func WithDeadline(d time.Duration) Option  { return func(e *Envelope) { e.Deadline = d } }

// New builds an Envelope with spec-mandated defaults, overridden by opts.
func New(opts ...Option) *Envelope {
	e := &Envelope{
		MaxSourceBytes:    DefaultMaxSourceBytes,
		MaxTokens:         DefaultMaxTokens,
		MaxArenaNodes:     DefaultMaxArenaNodes,
		MaxRecursionDepth: DefaultMaxRecursionDepth,
		Deadline:          DefaultDeadline,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Clock tracks wall-clock elapsed time against the envelope's deadline.
// Checked at every token consumption and every recursion step (spec §4.4).
type Clock struct {
	start    time.Time
	deadline time.Duration
	now      func() time.Time
}

// NewClock starts a deadline clock. nowFn defaults to time.Now; tests may
// override it for determinism.
func NewClock(deadline time.Duration, nowFn func() time.Time) *Clock {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Clock{start: nowFn(), deadline: deadline, now: nowFn}
}

// Expired reports whether the deadline has passed.
func (c *Clock) Expired() bool {
	if c.deadline <= 0 {
		return false
	}
	return c.now().Sub(c.start) > c.deadline
}
