package cost

import (
	"fmt"
	"strings"
)

// DefaultExpandLimit caps Expand output when the caller passes limit ≤ 0.
const DefaultExpandLimit int64 = 1 << 20

// Expand returns one press string the human can type so that target appears
// at depth; its length is exactly Cost(target, depth). Ties between equally
// cheap candidates go to the first in table order.
//
// Press counts grow roughly 2.5× per level, so Expand is only practical for
// short chains. It returns ErrSequenceTooLong when the result would exceed
// limit (DefaultExpandLimit when limit ≤ 0).
func (e *Evaluator) Expand(target string, depth int, limit int64) (string, error) {
	if limit <= 0 {
		limit = DefaultExpandLimit
	}
	n, err := e.Cost(target, depth)
	if err != nil {
		return "", err
	}
	if n > limit {
		return "", fmt.Errorf("%w: %d presses > %d", ErrSequenceTooLong, n, limit)
	}

	var b strings.Builder
	b.Grow(int(n))
	if err := e.expand(&b, target, depth); err != nil {
		return "", err
	}
	return b.String(), nil
}

// expand writes the cheapest press string for target at depth into b,
// following the same choices the memoized costs encode.
func (e *Evaluator) expand(b *strings.Builder, target string, depth int) error {
	kind := kindAt(depth)
	cur := e.restAt(depth)
	for i := 0; i < len(target); i++ {
		sym := target[i]
		cands, err := e.table.Lookup(kind, cur, sym)
		if err != nil {
			return fmt.Errorf("depth %d, target %q, offset %d: %w", depth, target, i, err)
		}
		if depth == e.maxDepth {
			b.WriteString(cands[0])
		} else {
			best, bestN := "", int64(-1)
			for _, c := range cands {
				n, err := e.cost(c, depth+1)
				if err != nil {
					return err
				}
				if bestN < 0 || n < bestN {
					best, bestN = c, n
				}
			}
			if err := e.expand(b, best, depth+1); err != nil {
				return err
			}
		}
		cur = sym
	}
	return nil
}
