package transition

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/moves"
)

// Sentinel errors for table construction and lookup.
var (
	// ErrNoCandidates indicates a key pair without any gap-free minimal path.
	ErrNoCandidates = errors.New("transition: no minimal path between keys")
	// ErrNoTransition indicates a lookup for a key pair absent from the table.
	ErrNoTransition = errors.New("transition: no entry for key pair")
	// ErrDuplicateKind indicates two layouts of the same Kind passed to Build.
	ErrDuplicateKind = errors.New("transition: duplicate layout kind")
)

// Key identifies one ordered key pair on one layout.
type Key struct {
	Kind     keypad.Kind
	From, To byte
}

// String renders the key as "kind:F->T".
func (k Key) String() string {
	return fmt.Sprintf("%v:%c->%c", k.Kind, k.From, k.To)
}

// Table maps every Key to its activate-terminated candidate sequences.
// It is immutable after Build.
type Table struct {
	layouts map[keypad.Kind]*keypad.Layout
	entries map[Key][]string
}

// Build precomputes the table for the given layouts, or for both fixed
// layouts when none are passed. Every sequence ends with the directional
// activate key; same-key pairs map to that lone press.
// Returns ErrNoCandidates if any pair has no valid path.
func Build(layouts ...*keypad.Layout) (*Table, error) {
	if len(layouts) == 0 {
		layouts = []*keypad.Layout{keypad.NumericLayout(), keypad.DirectionalLayout()}
	}
	t := &Table{
		layouts: make(map[keypad.Kind]*keypad.Layout, len(layouts)),
		entries: make(map[Key][]string),
	}
	for _, l := range layouts {
		if _, dup := t.layouts[l.Kind()]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKind, l.Kind())
		}
		t.layouts[l.Kind()] = l

		syms := l.Symbols()
		for _, from := range syms {
			for _, to := range syms {
				seqs, err := moves.Between(l, from, to)
				if err != nil {
					return nil, err
				}
				k := Key{Kind: l.Kind(), From: from, To: to}
				if len(seqs) == 0 {
					return nil, fmt.Errorf("%w: %v", ErrNoCandidates, k)
				}
				t.entries[k] = seqs
			}
		}
	}

	return t, nil
}

// MustBuild is Build for the fixed layouts; it panics on error.
func MustBuild() *Table {
	t, err := Build()
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the candidate sequences for moving from one key to another
// on the layout of kind k, each ending with the directional activate press.
// The returned slice is shared; callers must not modify it.
// Returns ErrNoTransition for pairs the table does not hold.
// Complexity: O(1).
func (t *Table) Lookup(k keypad.Kind, from, to byte) ([]string, error) {
	seqs, ok := t.entries[Key{Kind: k, From: from, To: to}]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoTransition, Key{Kind: k, From: from, To: to})
	}
	return seqs, nil
}

// Layout returns the layout the table was built with for kind k.
func (t *Table) Layout(k keypad.Kind) (*keypad.Layout, error) {
	l, ok := t.layouts[k]
	if !ok {
		return nil, fmt.Errorf("%w: %v", keypad.ErrUnknownKind, k)
	}
	return l, nil
}

// Len returns the number of key pairs in the table.
func (t *Table) Len() int { return len(t.entries) }

// Keys lists every key pair, ordered by kind, then source, then target.
func (t *Table) Keys() []Key {
	keys := make([]Key, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})
	return keys
}
