package doorcode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/keypadchain/keypad"
)

// Sentinel errors for code parsing and solving.
var (
	// ErrMalformedCode indicates a code that is not digits followed by "A".
	ErrMalformedCode = errors.New("doorcode: malformed door code")
	// ErrNoCodes indicates an empty code list.
	ErrNoCodes = errors.New("doorcode: no door codes")
	// ErrOverflow indicates a score or total that does not fit in int64.
	ErrOverflow = errors.New("doorcode: score overflows int64")
)

// Code is a validated door code such as "029A".
type Code string

// Parse validates s as one or more digits followed by the numeric activate key.
func Parse(s string) (Code, error) {
	n := len(s)
	if n < 2 || s[n-1] != keypad.NumericActivate {
		return "", fmt.Errorf("%w: %q", ErrMalformedCode, s)
	}
	for i := 0; i < n-1; i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", fmt.Errorf("%w: %q has %q at offset %d", ErrMalformedCode, s, s[i], i)
		}
	}
	if _, err := strconv.ParseInt(s[:n-1], 10, 64); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrMalformedCode, s, err)
	}
	return Code(s), nil
}

// ParseAll parses every string, stopping at the first malformed one.
func ParseAll(ss []string) ([]Code, error) {
	out := make([]Code, 0, len(ss))
	for _, s := range ss {
		c, err := Parse(strings.TrimSpace(s))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Value returns the numeric value of the digits, ignoring leading zeros.
func (c Code) Value() int64 {
	v, _ := strconv.ParseInt(string(c[:len(c)-1]), 10, 64)
	return v
}

// ReadCodes reads one code per line from r, skipping blank lines.
// Errors name the offending line.
func ReadCodes(r io.Reader) ([]Code, error) {
	var out []Code
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		c, err := Parse(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("doorcode: read codes: %w", err)
	}
	return out, nil
}

// Score returns presses × the numeric value of code, or ErrOverflow when the
// product does not fit in int64.
func Score(presses int64, code Code) (int64, error) {
	v := code.Value()
	if v != 0 && presses > math.MaxInt64/v {
		return 0, fmt.Errorf("%w: %d × %d", ErrOverflow, presses, v)
	}
	return presses * v, nil
}
