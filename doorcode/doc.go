// Package doorcode drives the cost evaluator over a list of door codes and
// scores the results.
//
// A door code is one or more digits followed by the numeric activate key, e.g.
// "029A". Its score is the minimum number of human presses times the numeric
// value of its digits (029A → 29). A Report sums the scores of every code for
// one chain length; RunVariants evaluates several chain lengths concurrently,
// each with its own evaluator over the shared read-only transition table.
//
// Errors:
//
//   - ErrMalformedCode   a code is not digits followed by "A", or overflows.
//   - ErrNoCodes         Solve or RunVariants received an empty code list.
//   - ErrOverflow        a score or the report total does not fit in int64.
//   - context errors     when ctx is cancelled between codes.
//   - any cost or transition error, wrapped with the offending code.
package doorcode
