package cost

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/transition"
)

// memoKey identifies one sub-problem. MaxDepth is fixed per Evaluator, so it
// is not part of the key.
type memoKey struct {
	target string
	depth  int
}

// Evaluator owns the memo for one chain length. It reads a shared, immutable
// transition.Table and is not safe for concurrent use; give each goroutine
// its own Evaluator.
type Evaluator struct {
	table    *transition.Table
	maxDepth int
	log      *slog.Logger
	metrics  *memoMetrics
	rest     [2]byte // activate keys of the numeric and directional pads

	memo   map[memoKey]int64
	hits   int64
	misses int64
}

// New creates an Evaluator over table. Returns ErrNilTable, ErrOptionViolation,
// keypad.ErrUnknownKind if the table lacks a fixed layout kind, or a
// prometheus registration error.
func New(table *transition.Table, opts ...Option) (*Evaluator, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	e := &Evaluator{
		table:    table,
		maxDepth: o.MaxDepth,
		log:      o.Logger.With(slog.Int("max_depth", o.MaxDepth)),
		memo:     make(map[memoKey]int64),
		rest:     [2]byte{keypad.NumericActivate, keypad.DirectionalActivate},
	}
	// Depth 0 is numeric; every deeper level is directional.
	num, err := table.Layout(keypad.Numeric)
	if err != nil {
		return nil, err
	}
	e.rest[0] = num.Activate()
	if o.MaxDepth > 0 {
		dir, err := table.Layout(keypad.Directional)
		if err != nil {
			return nil, err
		}
		e.rest[1] = dir.Activate()
	}
	if o.Registerer != nil {
		m, err := newMemoMetrics(o.Registerer, strconv.Itoa(o.MaxDepth))
		if err != nil {
			return nil, fmt.Errorf("cost: register metrics: %w", err)
		}
		e.metrics = m
	}

	return e, nil
}

// MaxDepth returns the configured chain length.
func (e *Evaluator) MaxDepth() int { return e.maxDepth }

// Cost returns the minimum number of presses the human must make so that
// target is typed on the keypad at depth.
//
// Precondition: the arm over that keypad rests on its activate key before
// the first symbol of target. Targets built from transition sequences always
// end on the activate key, so the arm is back at rest afterward.
//
// Returns ErrDepthOutOfRange unless 0 ≤ depth ≤ MaxDepth, a wrapped
// transition.ErrNoTransition for any symbol the keypad at depth cannot type,
// and a wrapped ErrOverflow when the count exceeds int64.
func (e *Evaluator) Cost(target string, depth int) (int64, error) {
	if depth < 0 || depth > e.maxDepth {
		return 0, fmt.Errorf("%w: %d not in [0, %d]", ErrDepthOutOfRange, depth, e.maxDepth)
	}
	n, err := e.cost(target, depth)
	if err != nil {
		return 0, err
	}
	e.log.Debug("cost evaluated",
		slog.String("target", target),
		slog.Int("depth", depth),
		slog.Int64("presses", n),
		slog.Int64("memo_hits", e.hits),
		slog.Int64("memo_misses", e.misses),
	)
	return n, nil
}

// cost is the memoized recursion behind Cost; depth is already validated.
func (e *Evaluator) cost(target string, depth int) (int64, error) {
	key := memoKey{target: target, depth: depth}
	if n, ok := e.memo[key]; ok {
		e.hits++
		e.metrics.hit()
		return n, nil
	}

	kind := kindAt(depth)
	cur := e.restAt(depth)
	var total int64
	for i := 0; i < len(target); i++ {
		sym := target[i]
		cands, err := e.table.Lookup(kind, cur, sym)
		if err != nil {
			return 0, fmt.Errorf("depth %d, target %q, offset %d: %w", depth, target, i, err)
		}
		step := int64(len(cands[0])) // all candidates share one length
		if depth < e.maxDepth {
			step = math.MaxInt64
			for _, c := range cands {
				n, err := e.cost(c, depth+1)
				if err != nil {
					return 0, err
				}
				step = min(step, n)
			}
		}
		if total, err = addPresses(total, step); err != nil {
			return 0, fmt.Errorf("depth %d, offset %d: %w", depth, i, err)
		}
		cur = sym
	}

	e.memo[key] = total
	e.misses++
	e.metrics.miss()
	return total, nil
}

// Stats returns memo counters since construction or the last Reset.
func (e *Evaluator) Stats() Stats {
	return Stats{Hits: e.hits, Misses: e.misses, Entries: len(e.memo)}
}

// Reset drops every memoized result and zeroes the counters.
func (e *Evaluator) Reset() {
	e.memo = make(map[memoKey]int64)
	e.hits, e.misses = 0, 0
}

// addPresses returns a+b for non-negative counts, or ErrOverflow.
func addPresses(a, b int64) (int64, error) {
	if b > math.MaxInt64-a {
		return 0, ErrOverflow
	}
	return a + b, nil
}

// kindAt returns the layout operated at depth: numeric at 0, directional above.
func kindAt(depth int) keypad.Kind {
	if depth == 0 {
		return keypad.Numeric
	}
	return keypad.Directional
}

// restAt returns the key the arm at depth starts on and returns to.
func (e *Evaluator) restAt(depth int) byte {
	if depth == 0 {
		return e.rest[0]
	}
	return e.rest[1]
}
