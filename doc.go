// Package keypadchain counts the button presses a human needs to type a door
// code through a chain of robot arms, each arm steering the next one over a
// keypad.
//
// What is the chain?
//
//	The door has a numeric keypad. A robot arm presses it, steered from a
//	directional keypad. That keypad is pressed by another arm, steered by
//	another directional keypad, and so on. The human presses the last
//	directional keypad in the chain.
//
//	+---+---+---+
//	| 7 | 8 | 9 |           +---+---+
//	+---+---+---+           | ^ | a |
//	| 4 | 5 | 6 |       +---+---+---+
//	+---+---+---+       | < | v | > |
//	| 1 | 2 | 3 |       +---+---+---+
//	+---+---+---+
//	    | 0 | A |
//	    +---+---+
//
// Arms start on the activate key of their pad and must never hover over a
// gap.
//
// Under the hood the work is split into small packages:
//
//	keypad/     — layouts, coordinates and directions
//	moves/      — gap-free shortest move sequences between two keys
//	transition/ — precomputed candidate sequences per (layout, from, to)
//	cost/       — memoized minimal press count for a target at a given depth
//	robot/      — simulator replaying presses through the whole chain
//	doorcode/   — code parsing, complexity score and the batch solver
//
// The keypadchain command wires it together:
//
//	keypadchain solve 029A 980A 179A 456A 379A
//	keypadchain solve -d 25 -i codes.txt
//	keypadchain sequence -d 0 029A
//	keypadchain table --kind directional
//
//	go install github.com/katalvlaran/keypadchain/cmd/keypadchain@latest
package keypadchain
