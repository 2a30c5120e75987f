// Package transition precomputes, for every ordered key pair on each keypad
// layout, the set of minimal activate-terminated move sequences between them.
//
// The Table is built once and is read-only afterward, so it can be shared by
// any number of cost evaluators running in parallel. Keys carry the layout
// Kind explicitly; no lookup depends on which characters happen to appear on
// which keypad.
//
// Complexity:
//
//   - Build:  O(Σ K²·c) for K keys per layout and c candidates per pair.
//   - Lookup: O(1).
//
// Errors:
//
//   - ErrNoCandidates  a key pair has no gap-free shortest path (layout defect).
//   - ErrNoTransition  a Lookup for a pair that was never built.
//   - ErrDuplicateKind Build received two layouts of the same Kind.
package transition
