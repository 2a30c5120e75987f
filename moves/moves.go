package moves

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/keypadchain/keypad"
)

// Sentinel errors for move enumeration and replay.
var (
	// ErrUnknownSymbol indicates a symbol that has no key on the layout.
	ErrUnknownSymbol = errors.New("moves: symbol not on layout")
	// ErrBadDirection indicates a byte that is not one of ^ v < >.
	ErrBadDirection = errors.New("moves: not a direction")
	// ErrOutOfBounds indicates a walk that left the layout grid.
	ErrOutOfBounds = errors.New("moves: walk left the layout")
	// ErrGapVisited indicates a walk that entered the gap cell.
	ErrGapVisited = errors.New("moves: walk entered the gap")
)

// permWalker holds the backtracking state of one enumeration.
type permWalker struct {
	layout *keypad.Layout
	// remaining presses per arrow; only one horizontal and one vertical
	// arrow ever have a non-zero count.
	dirs   [2]keypad.Direction
	counts [2]int
	path   []byte
	out    []string
}

// Enumerate returns every distinct minimal arrow string that moves an arm from
// `from` to `to` on l without entering the gap. The activate key is not
// appended. The result is sorted; from == to yields [""].
//
// An empty result means no gap-free shortest path exists, which is a layout
// defect and must be treated as a hard error by the caller.
func Enumerate(l *keypad.Layout, from, to keypad.Coord) []string {
	d := from.Sub(to)
	w := &permWalker{layout: l}

	// Order the two arrow kinds by byte value so the DFS emits in sorted order.
	h, v := keypad.Right, keypad.Down
	if d.X < 0 {
		h = keypad.Left
	}
	if d.Y < 0 {
		v = keypad.Up
	}
	w.dirs = [2]keypad.Direction{h, v}
	w.counts = [2]int{absInt(d.X), absInt(d.Y)}
	if w.dirs[0] > w.dirs[1] {
		w.dirs[0], w.dirs[1] = w.dirs[1], w.dirs[0]
		w.counts[0], w.counts[1] = w.counts[1], w.counts[0]
	}
	w.path = make([]byte, 0, w.counts[0]+w.counts[1])

	w.traverse(from)
	return w.out
}

// traverse extends the current path one arrow at a time. Each arrow kind is
// tried once per position, so identical permutations are never produced.
func (w *permWalker) traverse(pos keypad.Coord) {
	if w.counts[0] == 0 && w.counts[1] == 0 {
		w.out = append(w.out, string(w.path))
		return
	}
	for i, dir := range w.dirs {
		if w.counts[i] == 0 {
			continue
		}
		next := pos.Add(dir.Delta())
		if w.layout.IsGap(next) {
			continue // prune: every completion of this prefix crosses the gap
		}
		w.counts[i]--
		w.path = append(w.path, byte(dir))
		w.traverse(next)
		w.path = w.path[:len(w.path)-1]
		w.counts[i]++
	}
}

// Between is Enumerate keyed by symbol, with an activate press appended to
// every candidate. The presses are made on the directional keypad steering the
// arm, so the appended key is always keypad.DirectionalActivate, whatever l is.
// Returns ErrUnknownSymbol for symbols not on l.
func Between(l *keypad.Layout, from, to byte) ([]string, error) {
	src, ok := l.Coord(from)
	if !ok {
		return nil, fmt.Errorf("%w: %q on %v pad", ErrUnknownSymbol, from, l.Kind())
	}
	dst, ok := l.Coord(to)
	if !ok {
		return nil, fmt.Errorf("%w: %q on %v pad", ErrUnknownSymbol, to, l.Kind())
	}
	seqs := Enumerate(l, src, dst)
	act := string(keypad.DirectionalActivate)
	for i := range seqs {
		seqs[i] += act
	}
	return seqs, nil
}

// Walk replays the arrows of seq starting at from and returns the final cell.
// It fails on the first byte that is not an arrow, leaves the grid, or lands
// on the gap.
func Walk(l *keypad.Layout, from keypad.Coord, seq string) (keypad.Coord, error) {
	pos := from
	for i := 0; i < len(seq); i++ {
		if !keypad.IsDirection(seq[i]) {
			return pos, fmt.Errorf("%w: %q at offset %d", ErrBadDirection, seq[i], i)
		}
		pos = pos.Add(keypad.Direction(seq[i]).Delta())
		if !l.InBounds(pos) {
			return pos, fmt.Errorf("%w: %v at offset %d", ErrOutOfBounds, pos, i)
		}
		if l.IsGap(pos) {
			return pos, fmt.Errorf("%w: %v at offset %d", ErrGapVisited, pos, i)
		}
	}
	return pos, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
