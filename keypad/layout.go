package keypad

import "fmt"

// GapSymbol marks the gap cell in the row strings passed to New.
const GapSymbol = ' '

// Numeric and directional activate symbols.
const (
	NumericActivate     byte = 'A'
	DirectionalActivate byte = 'a'
)

// Layout is an immutable keypad geometry: every non-gap cell holds exactly one
// symbol and exactly one cell is the gap. All state is read through methods.
type Layout struct {
	kind          Kind
	width, height int

	keys     map[byte]Coord
	cells    [][]byte // cells[y][x]; GapSymbol at the gap
	gap      Coord
	activate byte
}

var (
	numericLayout     = mustNew(Numeric, []string{"789", "456", "123", " 0A"}, NumericActivate)
	directionalLayout = mustNew(Directional, []string{" ^a", "<v>"}, DirectionalActivate)
)

// NumericLayout returns the fixed door keypad layout.
func NumericLayout() *Layout { return numericLayout }

// DirectionalLayout returns the fixed arrow keypad layout.
func DirectionalLayout() *Layout { return directionalLayout }

// ForKind returns the fixed layout for k, or ErrUnknownKind.
func ForKind(k Kind) (*Layout, error) {
	switch k {
	case Numeric:
		return numericLayout, nil
	case Directional:
		return directionalLayout, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, k)
	}
}

// New builds a Layout from row strings, top row first. GapSymbol marks the
// single gap cell; activate must appear on the layout.
// Returns ErrEmptyLayout, ErrNonRectangular, ErrGapCount, ErrDuplicateSymbol or
// ErrMissingActivate for malformed input.
// Complexity: O(W×H).
func New(kind Kind, rows []string, activate byte) (*Layout, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyLayout
	}
	h, w := len(rows), len(rows[0])
	l := &Layout{
		kind:     kind,
		width:    w,
		height:   h,
		keys:     make(map[byte]Coord, w*h-1),
		cells:    make([][]byte, h),
		activate: activate,
	}
	gaps := 0
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		l.cells[y] = []byte(row)
		for x := 0; x < w; x++ {
			sym := row[x]
			if sym == GapSymbol {
				gaps++
				l.gap = Coord{X: x, Y: y}
				continue
			}
			if _, dup := l.keys[sym]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, sym)
			}
			l.keys[sym] = Coord{X: x, Y: y}
		}
	}
	if gaps != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrGapCount, gaps)
	}
	if _, ok := l.keys[activate]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingActivate, activate)
	}

	return l, nil
}

func mustNew(kind Kind, rows []string, activate byte) *Layout {
	l, err := New(kind, rows, activate)
	if err != nil {
		panic(err)
	}
	return l
}

// Kind returns which keypad the layout models.
func (l *Layout) Kind() Kind { return l.kind }

// Width returns the number of columns.
func (l *Layout) Width() int { return l.width }

// Height returns the number of rows.
func (l *Layout) Height() int { return l.height }

// Coord returns the cell of sym and whether sym is on the layout.
// Complexity: O(1).
func (l *Layout) Coord(sym byte) (Coord, bool) {
	c, ok := l.keys[sym]
	return c, ok
}

// Contains reports whether sym is a key on the layout.
func (l *Layout) Contains(sym byte) bool {
	_, ok := l.keys[sym]
	return ok
}

// SymbolAt returns the key at c. It reports false for the gap and for
// out-of-bounds cells.
// Complexity: O(1).
func (l *Layout) SymbolAt(c Coord) (byte, bool) {
	if !l.InBounds(c) || c == l.gap {
		return 0, false
	}
	return l.cells[c.Y][c.X], true
}

// Gap returns the coordinate of the cell without a key.
func (l *Layout) Gap() Coord { return l.gap }

// IsGap reports whether c is the gap cell.
func (l *Layout) IsGap(c Coord) bool { return c == l.gap }

// InBounds reports whether c lies within the layout boundaries.
// Complexity: O(1).
func (l *Layout) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < l.width && c.Y >= 0 && c.Y < l.height
}

// Activate returns the layout's activate symbol.
func (l *Layout) Activate() byte { return l.activate }

// Symbols lists every key in row-major order, skipping the gap.
func (l *Layout) Symbols() []byte {
	out := make([]byte, 0, len(l.keys))
	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			if sym := l.cells[y][x]; sym != GapSymbol {
				out = append(out, sym)
			}
		}
	}
	return out
}

// String draws the layout one row per line, gap rendered as a blank.
func (l *Layout) String() string {
	buf := make([]byte, 0, (l.width+1)*l.height)
	for y, row := range l.cells {
		if y > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, row...)
	}
	return string(buf)
}
