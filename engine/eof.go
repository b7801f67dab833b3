package engine

import (
	"errors"
	"fmt"
)

var ErrInputExhausted = errors.New("input exhausted")

// EOFPolicy decides what ',' does when no input byte remains.
type EOFPolicy string

const (
	// EOFError aborts the run with ErrInputExhausted.
	EOFError EOFPolicy = "error"
	// EOFZero stores 0 in the current cell.
	EOFZero EOFPolicy = "zero"
	// EOFMax stores 255 in the current cell.
	EOFMax EOFPolicy = "max"
	// EOFKeep leaves the current cell unchanged.
	EOFKeep EOFPolicy = "keep"
)

var EOFPolicies = []EOFPolicy{EOFError, EOFZero, EOFMax, EOFKeep}

func ParseEOFPolicy(str string) (EOFPolicy, error) {
	for _, policy := range EOFPolicies {
		if string(policy) == str {
			return policy, nil
		}
	}
	return "", fmt.Errorf("unknown eof policy: %q", str)
}

// Exhausted returns the value the current cell takes when input runs out.
func (p EOFPolicy) Exhausted(cell byte) (byte, error) {
	switch p {
	case EOFZero:
		return 0, nil
	case EOFMax:
		return 255, nil
	case EOFKeep:
		return cell, nil
	}
	return cell, ErrInputExhausted
}
