package cost

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultMaxDepth is the chain length of the short puzzle variant.
const DefaultMaxDepth = 2

// MaxChainDepth is the longest chain WithMaxDepth accepts. Press counts grow
// about 2.5× per keypad; at this depth every four-key door code still scores
// (presses × value) within int64. Longer targets are caught by ErrOverflow.
const MaxChainDepth = 37

// Sentinel errors for cost evaluation.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cost: invalid option supplied")
	// ErrNilTable is returned when New is given a nil transition table.
	ErrNilTable = errors.New("cost: transition table is nil")
	// ErrDepthOutOfRange is returned for depth < 0 or depth > MaxDepth.
	ErrDepthOutOfRange = errors.New("cost: depth out of range")
	// ErrSequenceTooLong is returned when Expand would exceed its limit.
	ErrSequenceTooLong = errors.New("cost: expanded sequence exceeds limit")
	// ErrOverflow is returned when a press count does not fit in int64.
	ErrOverflow = errors.New("cost: press count overflows int64")
)

// Option configures an Evaluator. Invalid values are recorded and surface
// as ErrOptionViolation from New.
type Option func(*Options)

// Options holds Evaluator settings.
type Options struct {
	// MaxDepth is the number of robot-operated directional keypads between
	// the human and the numeric keypad.
	MaxDepth int

	// Logger receives debug records; never nil after DefaultOptions.
	Logger *slog.Logger

	// Registerer, if non-nil, receives the memo hit/miss counters.
	Registerer prometheus.Registerer

	err error
}

// DefaultOptions returns MaxDepth = DefaultMaxDepth, a discarding logger and
// no metrics registration.
func DefaultOptions() Options {
	return Options{
		MaxDepth: DefaultMaxDepth,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithMaxDepth sets the chain length. Values outside [0, MaxChainDepth] are
// a violation.
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		if n < 0 || n > MaxChainDepth {
			o.err = fmt.Errorf("%w: MaxDepth %d not in [0, %d]", ErrOptionViolation, n, MaxChainDepth)
			return
		}
		o.MaxDepth = n
	}
}

// WithLogger sets the structured logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRegisterer registers the evaluator's counters with r.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *Options) {
		o.Registerer = r
	}
}

// Stats reports memo usage since construction or the last Reset.
type Stats struct {
	Hits    int64 // lookups answered from the memo
	Misses  int64 // (target, depth) pairs actually computed
	Entries int   // pairs currently memoized
}
