// Package keypad models the two fixed keypad geometries a door-code robot chain
// works with: the numeric door keypad and the directional keypad used to steer
// robot arms.
//
// What:
//
//   - Layout wraps a small rectangular grid of key symbols with exactly one gap
//     cell (a position with no physical key).
//   - Coord addresses a cell by (column, row); rows grow downward.
//   - Kind tags a layout as Numeric or Directional, so callers never infer the
//     layout from raw symbol characters.
//   - Direction is one of the four arrow symbols and knows its unit offset.
//
// Geometries:
//
//	Numeric (3×4)         Directional (3×2)
//	+---+---+---+         +---+---+---+
//	| 7 | 8 | 9 |         |   | ^ | a |
//	+---+---+---+         +---+---+---+
//	| 4 | 5 | 6 |         | < | v | > |
//	+---+---+---+         +---+---+---+
//	| 1 | 2 | 3 |
//	+---+---+---+
//	|   | 0 | A |
//	+---+---+---+
//
// The numeric activate key is "A" and the directional one is "a", which keeps
// the two symbol sets disjoint.
//
// Complexity:
//
//   - Coord, SymbolAt, IsGap, InBounds: O(1).
//   - New: O(W×H).
//
// Errors:
//
//   - ErrEmptyLayout: no rows or no columns.
//   - ErrNonRectangular: rows of differing widths.
//   - ErrGapCount: not exactly one gap cell.
//   - ErrDuplicateSymbol: a symbol appears twice.
//   - ErrMissingActivate: the activate symbol is not on the layout.
//   - ErrUnknownKind: ForKind received an unsupported Kind.
package keypad
