// Package keypad defines core types, directions, and sentinel errors
// for the keypad layouts.
package keypad

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout construction and lookup.
var (
	// ErrEmptyLayout indicates the row set has no rows or no columns.
	ErrEmptyLayout = errors.New("keypad: layout must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing widths.
	ErrNonRectangular = errors.New("keypad: all rows must have the same width")
	// ErrGapCount indicates the layout does not have exactly one gap cell.
	ErrGapCount = errors.New("keypad: layout must have exactly one gap")
	// ErrDuplicateSymbol indicates a symbol is placed on more than one cell.
	ErrDuplicateSymbol = errors.New("keypad: duplicate key symbol")
	// ErrMissingActivate indicates the activate symbol has no cell.
	ErrMissingActivate = errors.New("keypad: activate symbol not on layout")
	// ErrUnknownKind indicates an unsupported layout Kind.
	ErrUnknownKind = errors.New("keypad: unknown layout kind")
)

// Kind tags which of the fixed keypad geometries a Layout is.
type Kind int

const (
	// Numeric is the door keypad: digits 0-9 plus activate "A".
	Numeric Kind = iota
	// Directional is the arrow keypad: ^ v < > plus activate "a".
	Directional
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Directional:
		return "directional"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps "numeric" or "directional" back to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "numeric":
		return Numeric, nil
	case "directional":
		return Directional, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Coord is a (column, row) cell position. Rows grow downward.
type Coord struct {
	X, Y int
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Sub returns the displacement that takes c to o (o - c).
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: o.X - c.X, Y: o.Y - c.Y}
}

// Manhattan returns |Δx| + |Δy| between c and o.
func (c Coord) Manhattan(o Coord) int {
	d := c.Sub(o)
	return abs(d.X) + abs(d.Y)
}

// String renders the coordinate as "x,y".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Direction is one of the four arrow key symbols.
type Direction byte

const (
	// Up moves the arm one row toward the top of the keypad.
	Up Direction = '^'
	// Down moves the arm one row toward the bottom.
	Down Direction = 'v'
	// Left moves the arm one column left.
	Left Direction = '<'
	// Right moves the arm one column right.
	Right Direction = '>'
)

// Directions lists the arrows in the order N, E, S, W.
var Directions = [4]Direction{Up, Right, Down, Left}

// Delta returns the unit offset of d; the zero Coord for a non-arrow byte.
func (d Direction) Delta() Coord {
	switch d {
	case Up:
		return Coord{X: 0, Y: -1}
	case Down:
		return Coord{X: 0, Y: 1}
	case Left:
		return Coord{X: -1, Y: 0}
	case Right:
		return Coord{X: 1, Y: 0}
	default:
		return Coord{}
	}
}

// IsDirection reports whether b is one of ^ v < >.
func IsDirection(b byte) bool {
	switch Direction(b) {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
