// Package moves enumerates the length-optimal pointer paths between two keys of
// a keypad.Layout.
//
// A robot arm hovering over key S reaches key T by pressing exactly |Δx|
// horizontal and |Δy| vertical arrows. Every interleaving of that multiset is a
// shortest path, except those that sweep the arm across the layout's gap.
// Enumerate produces every distinct surviving interleaving; which one is best
// depends on what the arm one level further out has to press, so none is
// discarded here.
//
// Key features:
//   - Enumerate(l, from, to): distinct minimal arrow strings, gap-free, sorted.
//   - Between(l, a, b): the same at symbol level with the
//     directional activate key "a" appended.
//   - Walk(l, from, seq): replays arrows and reports where the arm ends.
//
// Complexity:
//
//   - Enumerate: O(C(n, k)·n) for n = Manhattan distance, k = |Δx|; n ≤ 5 on
//     the fixed layouts, so at most 10 candidates.
//   - Walk:      O(len(seq)).
//
// Errors:
//
//   - ErrUnknownSymbol  a symbol is not on the layout.
//   - ErrBadDirection   a non-arrow byte in a walked sequence.
//   - ErrOutOfBounds    a walk left the layout.
//   - ErrGapVisited     a walk crossed the gap.
package moves
