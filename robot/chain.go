// Package robot simulates a chain of robot arms, each hovering over a keypad
// and steered by the directional keypad one level further out.
//
// The human presses a directional keypad that steers the arm at depth
// MaxDepth; an "a" press makes an arm push the key under it, which in turn
// steers the arm one level closer to the door, down to the numeric keypad at
// depth 0. Every arm starts on its keypad's activate key.
//
// Run replays a press string through the whole chain and returns the symbols
// typed on the door keypad, failing the moment any arm is aimed at a gap or
// off its keypad.
package robot

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/keypadchain/keypad"
)

// Sentinel errors for chain simulation.
var (
	// ErrBadDepth indicates a negative chain length.
	ErrBadDepth = errors.New("robot: chain length cannot be negative")
	// ErrBadPress indicates a press that is neither an arrow nor "a".
	ErrBadPress = errors.New("robot: not a directional keypad symbol")
	// ErrGapPanic indicates an arm was aimed at a keypad gap.
	ErrGapPanic = errors.New("robot: arm aimed at a gap")
	// ErrOffPad indicates an arm was steered off its keypad.
	ErrOffPad = errors.New("robot: arm left the keypad")
)

// Chain is a door keypad plus MaxDepth directional keypads, each with one arm.
// It is not safe for concurrent use.
type Chain struct {
	pads []*keypad.Layout // pads[0] numeric, pads[1:] directional
	arms []keypad.Coord
	out  []byte
}

// NewChain builds a chain with maxDepth robot-operated directional keypads.
func NewChain(maxDepth int) (*Chain, error) {
	if maxDepth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadDepth, maxDepth)
	}
	c := &Chain{
		pads: make([]*keypad.Layout, maxDepth+1),
		arms: make([]keypad.Coord, maxDepth+1),
	}
	c.pads[0] = keypad.NumericLayout()
	for d := 1; d <= maxDepth; d++ {
		c.pads[d] = keypad.DirectionalLayout()
	}
	c.Reset()
	return c, nil
}

// MaxDepth returns the number of directional keypads operated by robots.
func (c *Chain) MaxDepth() int { return len(c.pads) - 1 }

// Reset parks every arm on its activate key.
func (c *Chain) Reset() {
	for d, pad := range c.pads {
		c.arms[d], _ = pad.Coord(pad.Activate())
	}
	c.out = c.out[:0]
}

// Run resets the chain, replays presses made by the human and returns what was
// typed on the door keypad.
func (c *Chain) Run(presses string) (string, error) {
	c.Reset()
	for i := 0; i < len(presses); i++ {
		if err := c.feed(c.MaxDepth(), presses[i]); err != nil {
			return string(c.out), fmt.Errorf("press %d (%q): %w", i, presses[i], err)
		}
	}
	return string(c.out), nil
}

// feed delivers one directional symbol to the arm at depth d.
func (c *Chain) feed(d int, sym byte) error {
	pad := c.pads[d]
	switch {
	case sym == keypad.DirectionalActivate:
		key, ok := pad.SymbolAt(c.arms[d])
		if !ok {
			return fmt.Errorf("%w: depth %d at %v", ErrGapPanic, d, c.arms[d])
		}
		if d == 0 {
			c.out = append(c.out, key)
			return nil
		}
		return c.feed(d-1, key)
	case keypad.IsDirection(sym):
		next := c.arms[d].Add(keypad.Direction(sym).Delta())
		if !pad.InBounds(next) {
			return fmt.Errorf("%w: depth %d at %v", ErrOffPad, d, next)
		}
		if pad.IsGap(next) {
			return fmt.Errorf("%w: depth %d at %v", ErrGapPanic, d, next)
		}
		c.arms[d] = next
		return nil
	default:
		return fmt.Errorf("%w: depth %d", ErrBadPress, d)
	}
}
