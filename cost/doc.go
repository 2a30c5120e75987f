// Package cost computes the minimum number of presses a human must make at the
// outermost keypad so that a given string is typed at some depth of a robot
// chain.
//
// Depth 0 is the numeric door keypad. Each depth above it is a directional
// keypad operated by a robot arm, up to MaxDepth; the human presses the
// directional keypad that steers the arm at MaxDepth.
//
// Algorithm:
//
//	Cost(target, d):
//	  cur := activate key of the pad at depth d
//	  for each symbol s in target:
//	    cands := table[cur → s]           // all minimal, gap-free moves
//	    if d == MaxDepth: total += len(cands[0])
//	    else:             total += min over c in cands of Cost(c, d+1)
//	    cur = s
//
// Candidates of equal length can cost differently one level further out, since
// repeated arrows are cheap and far-apart arrows are not, so every candidate
// is tried. Results are memoized per (target, depth).
//
// Every target is self-contained: the arm starts on the activate key and,
// because every move ends with an activate press, finishes there too. This is
// what makes memoizing by (target, depth) sound.
//
// Complexity:
//
//   - Time:   O(U·L·c) for U distinct (target, depth) pairs, L ≤ 6 symbols per
//     directional target and c ≤ 10 candidates per pair. U is bounded by the
//     fixed layouts, times MaxDepth.
//   - Memory: O(U).
//
// Options:
//
//   - WithMaxDepth(n)      chain length; default 2, at most MaxChainDepth.
//   - WithLogger(l)        structured debug logging; default discards.
//   - WithRegisterer(r)    registers memo hit/miss counters with prometheus.
//
// Errors:
//
//   - ErrOptionViolation   invalid option value.
//   - ErrNilTable          New received a nil table.
//   - ErrDepthOutOfRange   depth outside [0, MaxDepth].
//   - ErrSequenceTooLong   Expand result would exceed the caller's limit.
//   - ErrOverflow          a press count does not fit in int64.
//   - transition.ErrNoTransition (wrapped) for symbols the table cannot move to.
package cost
