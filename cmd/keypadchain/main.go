// Command keypadchain computes the fewest human button presses needed to type
// door codes through a chain of robot-operated keypads.
//
// Usage:
//
//	keypadchain solve 029A 980A --depth 2
//	keypadchain solve --input codes.txt --depth 25
//	keypadchain run --config keypadchain.yaml
//	keypadchain sequence 029A --depth 2
//	keypadchain table --kind directional
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
